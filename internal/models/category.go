package models

import "github.com/google/uuid"

// Category groups posts. Read-only from this service's perspective.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
