package models

import (
	"time"

	"sitara.io/store/models/enum"
)

// Product is a catalog product as served by the backend. Prices are
// decimal-as-string in the backend's currency notation.
type Product struct {
	ID               int                `json:"id"`
	Name             string             `json:"name"`
	Slug             string             `json:"slug,omitempty"`
	CategoryID       int                `json:"category_id"`
	Category         *Category          `json:"category,omitempty"`
	Price            string             `json:"price"`
	SalePrice        string             `json:"sale_price,omitempty"`
	Stock            int                `json:"stock"`
	Status           enum.ProductStatus `json:"status"`
	Description      string             `json:"description,omitempty"`
	ShortDescription string             `json:"short_description,omitempty"`
	ImageURL         string             `json:"image_url,omitempty"`
	Gallery          []string           `json:"gallery,omitempty"`
	Colors           []ProductColor     `json:"colors,omitempty"`
	SKU              string             `json:"sku,omitempty"`
	Weight           float64            `json:"weight,omitempty"`
	Dimensions       string             `json:"dimensions,omitempty"`
	CreatedAt        time.Time          `json:"created_at,omitempty"`
	UpdatedAt        time.Time          `json:"updated_at,omitempty"`
}
