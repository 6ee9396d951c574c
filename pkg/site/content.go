// Package site holds the fixed marketing content of the home page and the
// deployment helpers.
package site

// NavLink is an entry of the site menu
type NavLink struct {
	Label     string
	Portfolio bool
	Section   string
	Sub       string
}

// Service is an offering listed on the home page
type Service struct {
	Title       string
	Description string
	Price       string
	Accent      string
}

// Home page section anchors
const (
	SectionHome     = "home"
	SectionGallery  = "gallery"
	SectionServices = "services"
	SectionAbout    = "about"
	SectionContact  = "contact"
)

// DiscordURL is the community invite on the contact section
const DiscordURL = "https://discord.gg/GWpKVW3u6t"

// Sections lists the home page anchors in page order
func Sections() []string {
	return []string{SectionHome, SectionGallery, SectionServices, SectionAbout, SectionContact}
}

// IsSection reports whether anchor is a home page section
func IsSection(anchor string) bool {
	for _, s := range Sections() {
		if s == anchor {
			return true
		}
	}
	return false
}

// NavLinks returns the site menu
func NavLinks() []NavLink {
	return []NavLink{
		{Label: "Home", Section: SectionHome, Sub: "01"},
		{Label: "Portfolio", Portfolio: true, Sub: "02"},
		{Label: "Services", Section: SectionServices, Sub: "03"},
		{Label: "Studio", Section: SectionAbout, Sub: "04"},
		{Label: "Contact", Section: SectionContact, Sub: "05"},
	}
}

// Services returns the offerings shown on the home page
func Services() []Service {
	return []Service{
		{
			Title:       "Automotive Editorial",
			Description: "Static and rolling shots that highlight the lines, modifications, and spirit of your machine.",
			Price:       "Starting at $250",
			Accent:      "cyan",
		},
		{
			Title:       "Portrait Sessions",
			Description: "High-end portraiture for models, artists, and professionals. Studio or urban location.",
			Price:       "Starting at $150",
			Accent:      "yellow",
		},
		{
			Title:       "Event Coverage",
			Description: "Complete documentation of car meets, parties, weddings, and corporate gatherings.",
			Price:       "Hourly Rates Available",
			Accent:      "purple",
		},
		{
			Title:       "Commercial Branding",
			Description: "Visual assets to elevate your brand's presence in the city. Product and lifestyle shots.",
			Price:       "Custom Quote",
			Accent:      "cyan",
		},
	}
}

// Roster returns the photographers listed on the contact section
func Roster() []string {
	return []string{"Damon", "Callum", "Marianna", "Amy"}
}
