package models

import "github.com/google/uuid"

// Tag is a label attached to posts through the post_tags table. Tags are
// created lazily the first time a post references the name and are never
// deleted, even when no association remains.
type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
