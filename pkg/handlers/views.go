package handlers

import (
	"fmt"
	"maps"
	"net/url"
	"slices"

	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/navigation"
	"binx-portfolio/pkg/portfolio"
	"binx-portfolio/pkg/registry"
	"binx-portfolio/pkg/site"
)

const defaultSessionDescription = "A curated selection of images capturing the essence of the moment."

// Link is an anchor rendered by the templates
type Link struct {
	Label  string
	URL    string
	Sub    string
	Active bool
}

// Tile is a photo in a grid
type Tile struct {
	URL          string
	Title        string
	Category     string
	Photographer string
	Session      string
	Wide         bool
	OpenURL      string
}

// SessionCard is a session on the portfolio index
type SessionCard struct {
	Name         string
	Count        int
	CoverURL     string
	CoverTitle   string
	Photographer string
	Category     string
	URL          string
}

// SessionDetail is the drilled-down session
type SessionDetail struct {
	Name         string
	Category     string
	Photographer string
	Description  string
	Count        int
	Hero         Tile
	Photos       []Tile
}

// LightboxView is the full-screen photo overlay
type LightboxView struct {
	URL      string
	Title    string
	Caption  string
	NextURL  string
	PrevURL  string
	CloseURL string
}

// HomePage is the data of index.pug
type HomePage struct {
	Title      string
	NavLinks   []Link
	EnterURL   string
	Categories []Link
	Featured   []Tile
	Services   []site.Service
	Roster     []string
	DiscordURL string
}

// PortfolioPage is the data of portfolio.pug
type PortfolioPage struct {
	Title    string
	NavLinks []Link
	Mode     string

	IsIndex    bool
	IsSession  bool
	IsLightbox bool
	NoResults  bool

	Photographers []Link
	Categories    []Link
	Query         string
	// Form carries the current state through the search form.
	Form     []FormField
	ResetURL string
	BackURL  string

	Sessions []SessionCard
	Session  SessionDetail
	Lightbox LightboxView
}

// FormField is a hidden input
type FormField struct {
	Name  string
	Value string
}

// linkTo returns the URL of the state reached from s by a, or an empty
// string when a is not valid in s
func linkTo(photos []models.PhotoRecord, s navigation.State, a navigation.Action) string {
	next, anchor, err := apply(photos, s, a)
	if err != nil {
		return ""
	}
	return next.URL(anchor)
}

func navLinks(photos []models.PhotoRecord, s navigation.State) []Link {
	var links []Link
	for _, n := range site.NavLinks() {
		var a navigation.Action = navigation.Navigate{Section: n.Section}
		if n.Portfolio {
			a = navigation.ShowPortfolio{}
			if s.View == navigation.ViewPortfolio {
				a = navigation.ResetFilters{}
			}
		}
		link := Link{Label: n.Label, Sub: n.Sub, URL: linkTo(photos, s, a)}
		if link.URL == "" {
			link.URL = navigation.PortfolioPath
		}
		if s.View == navigation.ViewPortfolio {
			link.Active = n.Portfolio
		} else {
			link.Active = n.Section == site.SectionHome
		}
		links = append(links, link)
	}
	return links
}

func buildHomePage(photos []models.PhotoRecord, category string) HomePage {
	s := navigation.NewState()
	if category == "" {
		category = registry.All
	}

	page := HomePage{
		Title:      "Binx Productions",
		NavLinks:   navLinks(photos, s),
		EnterURL:   linkTo(photos, s, navigation.EnterGallery{}),
		Services:   site.Services(),
		Roster:     site.Roster(),
		DiscordURL: site.DiscordURL,
	}

	for _, c := range portfolio.FeaturedCategories(photos) {
		u := url.URL{Path: navigation.HomePath, Fragment: site.SectionGallery}
		if c != registry.All {
			u.RawQuery = url.Values{navigation.ParamCategory: {c}}.Encode()
		}
		page.Categories = append(page.Categories, Link{Label: c, URL: u.String(), Active: c == category})
	}

	for _, p := range portfolio.FilterFeatured(photos, category) {
		page.Featured = append(page.Featured, Tile{
			URL:          p.URL,
			Title:        p.Title,
			Category:     p.Category,
			Photographer: p.Photographer,
			Session:      p.Session,
			Wide:         portfolio.Wide(p),
		})
	}
	return page
}

func buildPortfolioPage(photos []models.PhotoRecord, s navigation.State) PortfolioPage {
	mode := s.Mode()
	page := PortfolioPage{
		Title:      "Portfolio | Binx Productions",
		NavLinks:   navLinks(photos, s),
		Mode:       mode.String(),
		IsIndex:    mode == navigation.ModeIndex,
		IsSession:  mode == navigation.ModeSession || mode == navigation.ModeLightbox,
		IsLightbox: mode == navigation.ModeLightbox,
		NoResults:  s.NoResults(photos),
		Query:      s.Filter.Query,
		ResetURL:   linkTo(photos, s, navigation.ResetFilters{}),
		BackURL:    linkTo(photos, s, navigation.Back{}),
	}

	query := s.Query()
	for _, key := range slices.Sorted(maps.Keys(query)) {
		if key == navigation.ParamQuery {
			continue
		}
		page.Form = append(page.Form, FormField{Name: key, Value: query.Get(key)})
	}

	if page.IsIndex {
		page.Photographers = facetLinks(photos, s, registry.Unique(photos, photographerOf), s.Filter.Photographer,
			func(v string) navigation.Action { return navigation.SelectPhotographer{Name: v} })
		page.Categories = facetLinks(photos, s, registry.Unique(photos, categoryOf), s.Filter.Category,
			func(v string) navigation.Action { return navigation.SelectCategory{Name: v} })

		for _, session := range s.Groups(photos).Sessions() {
			cover := session.Cover()
			page.Sessions = append(page.Sessions, SessionCard{
				Name:         session.Name,
				Count:        session.Count(),
				CoverURL:     cover.URL,
				CoverTitle:   cover.Title,
				Photographer: cover.Photographer,
				Category:     cover.Category,
				URL:          linkTo(photos, s, navigation.SelectSession{Name: session.Name}),
			})
		}
	}

	if page.IsSession {
		page.Session = buildSessionDetail(photos, s)
	}
	if page.IsLightbox {
		page.Lightbox = buildLightbox(photos, s)
	}
	return page
}

func facetLinks(photos []models.PhotoRecord, s navigation.State, values []string, current string, action func(string) navigation.Action) []Link {
	if current == "" {
		current = registry.All
	}
	links := make([]Link, 0, len(values))
	for _, v := range values {
		links = append(links, Link{Label: v, URL: linkTo(photos, s, action(v)), Active: v == current})
	}
	return links
}

func buildSessionDetail(photos []models.PhotoRecord, s navigation.State) SessionDetail {
	session := models.Session{Name: s.Session, Photos: s.SessionPhotos(photos)}
	cover := session.Cover()

	detail := SessionDetail{
		Name:         session.Name,
		Category:     cover.Category,
		Photographer: cover.Photographer,
		Description:  cover.Description,
		Count:        session.Count(),
	}
	if detail.Description == "" {
		detail.Description = defaultSessionDescription
	}

	// Tiles open the lightbox from the session view, even when it is showing.
	base := s
	base.LightboxOpen = false
	base.Lightbox = 0

	for i, p := range session.Photos {
		tile := Tile{
			URL:          p.URL,
			Title:        p.Title,
			Category:     p.Category,
			Photographer: p.Photographer,
			Session:      p.Session,
			Wide:         i%3 == 0,
			OpenURL:      linkTo(photos, base, navigation.OpenLightbox{Index: i}),
		}
		if i == 0 {
			detail.Hero = tile
		}
		detail.Photos = append(detail.Photos, tile)
	}
	return detail
}

func buildLightbox(photos []models.PhotoRecord, s navigation.State) LightboxView {
	session := s.SessionPhotos(photos)
	p := session[s.Lightbox]
	return LightboxView{
		URL:      p.URL,
		Title:    p.Title,
		Caption:  fmt.Sprintf("%d / %d", s.Lightbox+1, len(session)),
		NextURL:  linkTo(photos, s, navigation.NextPhoto{}),
		PrevURL:  linkTo(photos, s, navigation.PrevPhoto{}),
		CloseURL: linkTo(photos, s, navigation.CloseLightbox{}),
	}
}

func photographerOf(p models.PhotoRecord) string { return p.Photographer }

func categoryOf(p models.PhotoRecord) string { return p.Category }
