package models

// SiteSettings is the storefront's server-owned configuration.
type SiteSettings struct {
	SiteName        string `json:"site_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	Currency        string `json:"currency"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}
