package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"inkpost/internal/storage"
)

// Media groups the media upload handlers.
type Media struct {
	storage *storage.Client
}

// NewMedia creates a new Media handler group.
func NewMedia(storageClient *storage.Client) *Media {
	return &Media{storage: storageClient}
}

type presignedURLResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// PresignedURL issues a short-lived upload URL for a fresh media path.
// The client PUTs the file to the returned URL and stores the path as the
// post's cover image.
func (m *Media) PresignedURL(w http.ResponseWriter, r *http.Request) {
	path := "/media/" + uuid.NewString()

	url, err := m.storage.PresignUpload(r.Context(), path[1:])
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, presignedURLResponse{URL: url, Path: path})
}
