package models

import "time"

// Category is a catalog category. Categories nest through ParentID.
type Category struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Description  string      `json:"description,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	ParentID     *int        `json:"parent_id,omitempty"`
	Children     []*Category `json:"children,omitempty"`
	ProductCount int         `json:"product_count,omitempty"`
	CreatedAt    time.Time   `json:"created_at,omitempty"`
}

// CategoryTree is a category with its resolved children, built client side
// from the flat list the backend returns.
type CategoryTree struct {
	*Category
	Nodes []*CategoryTree `json:"nodes,omitempty"`
}
