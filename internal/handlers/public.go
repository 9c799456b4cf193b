package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkpost/internal/apperr"
	"inkpost/internal/cache"
	"inkpost/internal/models"
	"inkpost/internal/store"
)

// Public groups the unauthenticated read handlers.
type Public struct {
	posts *store.PostStore
	cache *cache.PostCache
}

// NewPublic creates a new Public handler group. cache may be nil.
func NewPublic(posts *store.PostStore, postCache *cache.PostCache) *Public {
	return &Public{posts: posts, cache: postCache}
}

// PostsList returns every post with display columns and tag names.
func (p *Public) PostsList(w http.ResponseWriter, r *http.Request) {
	if body, ok := p.cache.GetList(r.Context()); ok {
		respondRaw(w, http.StatusOK, body)
		return
	}

	posts, err := p.posts.List()
	if err != nil {
		respondError(w, err)
		return
	}
	if posts == nil {
		posts = []models.PostSummary{}
	}

	body, err := json.Marshal(posts)
	if err != nil {
		respondError(w, err)
		return
	}
	p.cache.SetList(r.Context(), body)
	respondRaw(w, http.StatusOK, body)
}

// PostByID returns one post, or a JSON null body when the id is unknown.
// The missing case is a 200 here — only the admin variant maps it to 404.
func (p *Public) PostByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperr.Validation("Invalid post id"))
		return
	}

	if body, ok := p.cache.GetPost(r.Context(), id); ok {
		respondRaw(w, http.StatusOK, body)
		return
	}

	post, err := p.posts.Find(id)
	if err != nil {
		respondError(w, err)
		return
	}
	if post == nil {
		respondRaw(w, http.StatusOK, []byte("null"))
		return
	}

	tags, err := p.posts.TagsFor(post.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	body, err := json.Marshal(models.PostSummary{
		ID:             post.ID,
		Title:          post.Title,
		Content:        post.Content,
		Summary:        post.Summary,
		UpdatedAt:      post.UpdatedAt,
		Tags:           tags,
		CoverImage:     post.CoverImage,
		ReadTimeMillis: post.ReadTimeMillis,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	p.cache.SetPost(r.Context(), id, body)
	respondRaw(w, http.StatusOK, body)
}
