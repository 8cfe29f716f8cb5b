package models

import "time"

// BackendEvent is a change notification published by the backend whenever a
// server-owned entity is created, updated or deleted. The client uses it to
// drop stale cached queries.
type BackendEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	EntityID   int       `json:"entity_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
