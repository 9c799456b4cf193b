// Package models defines the entities stored in the database and the
// request/response shapes built from them.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog post row. Posts are never physically deleted; Draft is a
// plain flag with no lifecycle rules attached.
type Post struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Summary        string     `json:"summary"`
	Slug           string     `json:"slug"`
	Category       uuid.UUID  `json:"category"`
	Author         uuid.UUID  `json:"author"`
	CoverImage     string     `json:"cover_image"`
	Draft          *bool      `json:"draft"`
	ReadTimeMillis int64      `json:"read_time_millis"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// PostInput carries the mutable post fields accepted on create and update.
// Tags are names, not ids; Category is the category id as a string.
type PostInput struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Summary        string   `json:"summary"`
	Tags           []string `json:"tags"`
	Category       string   `json:"category"`
	Slug           string   `json:"slug"`
	ReadTimeMillis int64    `json:"read_time_millis"`
	CoverImage     string   `json:"cover_image"`
}

// PostSummary is the public listing view of a post: display columns plus
// the associated tag names.
type PostSummary struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Summary        string     `json:"summary"`
	UpdatedAt      *time.Time `json:"updated_at"`
	Tags           []string   `json:"tags"`
	CoverImage     string     `json:"cover_image"`
	ReadTimeMillis int64      `json:"read_time_millis"`
}

// PostWithTags is the full admin view of a post plus its tag names.
type PostWithTags struct {
	Post
	Tags []string `json:"tags"`
}
