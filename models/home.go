package models

// HomeSection is one block of the storefront landing feed.
type HomeSection struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
	Position int    `json:"position,omitempty"`
}
