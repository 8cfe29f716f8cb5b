package models

import (
	"time"

	"sitara.io/store/models/enum"
)

// ContactMessage is a message submitted through the storefront contact form.
type ContactMessage struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone,omitempty"`
	Subject   string             `json:"subject,omitempty"`
	Message   string             `json:"message"`
	Status    enum.MessageStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// ContactForm is the outbound contact-form submission.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}
