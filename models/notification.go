package models

import (
	"encoding/json"
	"time"

	"sitara.io/store/models/enum"
)

// Notification is a back-office notification. ReadAt is nil while unread.
type Notification struct {
	ID        int                   `json:"id"`
	Title     string                `json:"title"`
	Message   string                `json:"message"`
	Type      enum.NotificationType `json:"type,omitempty"`
	ReadAt    *time.Time            `json:"read_at"`
	CreatedAt time.Time             `json:"created_at"`
	Data      json.RawMessage       `json:"data,omitempty"`
}
