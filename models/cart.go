package models

// ProductColor is a named swatch attached to a product or a cart line.
type ProductColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// DefaultColor is the placeholder used when a product defines no color variants.
func DefaultColor() ProductColor {
	return ProductColor{Name: "افتراضي", Hex: "#d9c8a9"}
}

// CartLine is one product variant selection in the cart. The same product may
// appear on several lines; color and dimensions differ per line.
type CartLine struct {
	ProductID    int          `json:"product_id"`
	ProductName  string       `json:"product_name"`
	ProductImage string       `json:"product_image,omitempty"`
	Price        string       `json:"price"`
	Quantity     int          `json:"quantity"`
	Color        ProductColor `json:"color"`
	Width        float64      `json:"width,omitempty"`
	Height       float64      `json:"height,omitempty"`
}
