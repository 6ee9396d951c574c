package portfolio

import "binx-portfolio/pkg/models"

// UntitledSession collects photos without a session name
const UntitledSession = "Untitled Session"

// Groups maps session names to their photos, keeping first-occurrence order
type Groups struct {
	names  []string
	photos map[string][]models.PhotoRecord
}

// GroupBySession partitions photos by session name
func GroupBySession(photos []models.PhotoRecord) Groups {
	g := Groups{photos: make(map[string][]models.PhotoRecord)}
	for _, p := range photos {
		name := p.Session
		if name == "" {
			name = UntitledSession
		}
		if _, exists := g.photos[name]; !exists {
			g.names = append(g.names, name)
		}
		g.photos[name] = append(g.photos[name], p)
	}
	return g
}

// Names returns the session names in order
func (g Groups) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Get returns the photos of a session
func (g Groups) Get(name string) ([]models.PhotoRecord, bool) {
	photos, ok := g.photos[name]
	return photos, ok
}

// Len returns the number of sessions
func (g Groups) Len() int {
	return len(g.names)
}

// Sessions returns the groups as ordered sessions
func (g Groups) Sessions() []models.Session {
	sessions := make([]models.Session, 0, len(g.names))
	for _, name := range g.names {
		sessions = append(sessions, models.Session{Name: name, Photos: g.photos[name]})
	}
	return sessions
}

// Browse filters photos and groups the result
func Browse(photos []models.PhotoRecord, f Filter) Groups {
	return GroupBySession(Apply(photos, f))
}
