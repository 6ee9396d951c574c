package registry

import (
	"encoding/base64"
	"fmt"
	"strings"

	"binx-portfolio/pkg/models"
)

const placeholderSVG = `<svg width="1200" height="800" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="grad-%[1]s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%[3]s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%[4]s;stop-opacity:1" />
    </linearGradient>
    <pattern id="pat" width="4" height="4" patternUnits="userSpaceOnUse" patternTransform="rotate(45)">
      <path d="M0 4L4 0" stroke="white" stroke-width="1" stroke-opacity="0.08"/>
    </pattern>
  </defs>
  <rect width="100%%" height="100%%" fill="url(#grad-%[1]s)" />
  <rect width="100%%" height="100%%" fill="url(#pat)" />
  <rect width="100%%" height="100%%" fill="black" fill-opacity="0.2" />
  <rect x="40" y="40" width="1120" height="720" fill="none" stroke="white" stroke-width="2" stroke-opacity="0.1" />
  <text x="50%%" y="50%%" font-family="Oswald, sans-serif" font-size="64" font-weight="700" fill="white" dy=".3em" text-anchor="middle" letter-spacing="0.2em">%[2]s</text>
</svg>`

// Placeholder renders a gradient SVG card with a caption as a data URI
func Placeholder(text, colorStart, colorEnd string) string {
	id := strings.Join(strings.Fields(text), "")
	svg := fmt.Sprintf(placeholderSVG, id, strings.ToUpper(text), colorStart, colorEnd)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// Samples returns the fallback photo set shown alongside local files
func Samples() []models.PhotoRecord {
	return []models.PhotoRecord{
		{
			ID:           "sample-1",
			URL:          Placeholder("Mustang Red", "#7f1d1d", "#ef4444"),
			Filename:     "sample-1.jpg",
			Title:        "Mustang Red",
			Category:     "Automotive",
			Photographer: "Amy",
			Session:      "Muscle Cars",
			Size:         models.SizeLarge,
			Featured:     true,
			Description:  "Raw horsepower meets the golden hour. A study in American muscle.",
		},
		{
			ID:           "sample-2",
			URL:          Placeholder("Chrome Detail", "#0f172a", "#0ea5e9"),
			Filename:     "sample-2.jpg",
			Title:        "Chrome Detail",
			Category:     "Automotive",
			Photographer: "Amy",
			Session:      "Muscle Cars",
			Size:         models.SizeMedium,
			Featured:     false,
		},
		{
			ID:           "sample-3",
			URL:          Placeholder("SWAT Breach", "#172554", "#3b82f6"),
			Filename:     "sample-3.jpg",
			Title:        "Breach",
			Category:     "Tactical",
			Photographer: "Damon",
			Session:      "Bank Heist",
			Size:         models.SizeMedium,
			Featured:     true,
			Description:  "LSPD SWAT team securing the perimeter during the Fleeca Bank incident.",
		},
		{
			ID:           "sample-4",
			URL:          Placeholder("Bahama Mamas", "#4c1d95", "#d946ef"),
			Filename:     "sample-4.jpg",
			Title:        "VIP Lounge",
			Category:     "Lifestyle",
			Photographer: "Callum",
			Session:      "Friday Night",
			Size:         models.SizeMedium,
			Featured:     true,
			Description:  "Candid moments from the city's most exclusive club.",
		},
		{
			ID:           "sample-5",
			URL:          Placeholder("Golden Hour", "#451a03", "#fbbf24"),
			Filename:     "sample-5.jpg",
			Title:        "Golden Hour",
			Category:     "Portraits",
			Photographer: "Marianna",
			Session:      "Urban Soul",
			Size:         models.SizeMedium,
			Featured:     true,
			Description:  "Street portraiture that explores the human condition.",
		},
		{
			ID:           "sample-6",
			URL:          Placeholder("City Hall", "#18181b", "#71717a"),
			Filename:     "sample-6.jpg",
			Title:        "The Vote",
			Category:     "Events",
			Photographer: "Binx",
			Session:      "Mayoral Debate",
			Size:         models.SizeMedium,
			Featured:     true,
			Description:  "Coverage of the pivotal debate at the City Hall steps.",
		},
	}
}
