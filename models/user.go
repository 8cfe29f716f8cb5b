package models

import "time"

// User is an authenticated account.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// AuthSession is the login response: the user plus the bearer token every
// subsequent request carries.
type AuthSession struct {
	User      User   `json:"user"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in,omitempty"`
}

// Customer is a user enriched with purchase history aggregates.
type Customer struct {
	User
	OrdersCount int    `json:"orders_count,omitempty"`
	TotalSpent  string `json:"total_spent,omitempty"`
	LastOrderAt string `json:"last_order_at,omitempty"`
}
