package models

// Size is the grid layout weight of a photo
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// PhotoRecord is one entry of the photo registry
type PhotoRecord struct {
	ID           string `json:"id" yaml:"id"`
	URL          string `json:"url" yaml:"url"`
	Filename     string `json:"filename" yaml:"filename"`
	Photographer string `json:"photographer" yaml:"photographer"`
	Category     string `json:"category" yaml:"category"`
	Session      string `json:"session" yaml:"session"`
	Title        string `json:"title" yaml:"title"`
	Featured     bool   `json:"featured" yaml:"featured"`
	Size         Size   `json:"size" yaml:"size"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Session is a named group of photos from the same shoot
type Session struct {
	Name   string        `json:"name"`
	Photos []PhotoRecord `json:"photos"`
}

// Cover returns the first photo of the session
func (s Session) Cover() PhotoRecord {
	if len(s.Photos) == 0 {
		return PhotoRecord{}
	}
	return s.Photos[0]
}

// Count returns the number of photos in the session
func (s Session) Count() int {
	return len(s.Photos)
}

// GalleryFile is an image file known to a registry source
type GalleryFile struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}
