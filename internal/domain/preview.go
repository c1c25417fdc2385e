package domain

// OGMetadata is the raw open graph data scraped from a page. Dimension
// values are kept as found in the markup and may be empty or non-numeric.
type OGMetadata struct {
	Title       string
	Type        string
	URL         string
	Image       string
	Description string
	SiteName    string
	ImageWidth  string
	ImageHeight string
}

// IsValid reports whether the metadata carries the properties required
// to render a preview.
func (m *OGMetadata) IsValid() bool {
	return m != nil && m.Title != "" && m.Type != "" && m.Image != "" && m.URL != ""
}

// OGPreview is normalized metadata ready for rendering.
type OGPreview struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
	ImageWidth  int    `json:"image_width"`
	ImageHeight int    `json:"image_height"`
}
