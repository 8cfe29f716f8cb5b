package admin

import (
	"strings"

	"sitara.io/store/gateway"
	"sitara.io/store/models/enum"
)

// The admin forms mirror the backend's validation rules so bad input is
// caught before a request goes out; the backend remains the authority and
// may still answer 422.

// ProductForm is the create/edit input for a product.
type ProductForm struct {
	Name             string             `json:"name"`
	CategoryID       int                `json:"category_id"`
	Price            string             `json:"price"`
	SalePrice        string             `json:"sale_price,omitempty"`
	Stock            int                `json:"stock"`
	Status           enum.ProductStatus `json:"status"`
	Description      string             `json:"description,omitempty"`
	ShortDescription string             `json:"short_description,omitempty"`
	ImageURL         string             `json:"image_url,omitempty"`
	SKU              string             `json:"sku,omitempty"`
}

func (f *ProductForm) Validate() *gateway.ValidationError {
	fields := map[string][]string{}
	if len(strings.TrimSpace(f.Name)) < 2 {
		fields["name"] = append(fields["name"], "name must be at least 2 characters")
	}
	if f.CategoryID <= 0 {
		fields["category_id"] = append(fields["category_id"], "category is required")
	}
	if strings.TrimSpace(f.Price) == "" {
		fields["price"] = append(fields["price"], "price is required")
	}
	if f.Stock < 0 {
		fields["stock"] = append(fields["stock"], "stock cannot be negative")
	}
	if f.Status == "" {
		fields["status"] = append(fields["status"], "status is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return &gateway.ValidationError{Fields: fields}
}

// CategoryForm is the create/edit input for a category.
type CategoryForm struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	ParentID    *int   `json:"parent_id,omitempty"`
}

func (f *CategoryForm) Validate() *gateway.ValidationError {
	if len(strings.TrimSpace(f.Name)) < 2 {
		return &gateway.ValidationError{Fields: map[string][]string{
			"name": {"name must be at least 2 characters"},
		}}
	}
	return nil
}

// SettingsForm is the site-settings update input.
type SettingsForm struct {
	SiteName        string `json:"site_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	Currency        string `json:"currency,omitempty"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}

func (f *SettingsForm) Validate() *gateway.ValidationError {
	fields := map[string][]string{}
	if strings.TrimSpace(f.SiteName) == "" {
		fields["site_name"] = append(fields["site_name"], "site name is required")
	}
	if !strings.Contains(f.Email, "@") {
		fields["email"] = append(fields["email"], "a valid email is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return &gateway.ValidationError{Fields: fields}
}
