package models

import (
	"time"

	"sitara.io/store/models/enum"
)

// Order is a server-owned order record read back from the backend.
type Order struct {
	ID              int                `json:"id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email,omitempty"`
	CustomerPhone   string             `json:"customer_phone,omitempty"`
	CustomerAddress string             `json:"customer_address,omitempty"`
	TotalPrice      string             `json:"total_price"`
	Subtotal        string             `json:"subtotal,omitempty"`
	ShippingCost    string             `json:"shipping_cost,omitempty"`
	Discount        string             `json:"discount,omitempty"`
	Status          enum.OrderStatus   `json:"status"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method,omitempty"`
	PaymentStatus   string             `json:"payment_status,omitempty"`
	ShippingMethod  string             `json:"shipping_method,omitempty"`
	TrackingNumber  string             `json:"tracking_number,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Items           []OrderItem        `json:"items"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at,omitempty"`
}

// OrderItem is a single line of a server-owned order.
type OrderItem struct {
	ID           int    `json:"id"`
	OrderID      int    `json:"order_id"`
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image,omitempty"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
	Total        string `json:"total"`
}

// OrderDraftItem is one cart line translated for submission.
type OrderDraftItem struct {
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Price     string `json:"price"`
}

// OrderDraft is the one-shot order-creation payload built at checkout time.
// It is never persisted locally.
type OrderDraft struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email,omitempty"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method"`
	Notes           string             `json:"notes,omitempty"`
	Items           []OrderDraftItem   `json:"items"`
}
