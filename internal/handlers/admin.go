package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkpost/internal/apperr"
	"inkpost/internal/cache"
	"inkpost/internal/middleware"
	"inkpost/internal/models"
	"inkpost/internal/store"
)

const postNotFoundMsg = "Post not found"

// Admin groups the authenticated content-management handlers. Every route
// here sits behind the session middleware.
type Admin struct {
	posts      *store.PostStore
	categories *store.CategoryStore
	users      *store.UserStore
	cache      *cache.PostCache
}

// NewAdmin creates a new Admin handler group. cache may be nil.
func NewAdmin(posts *store.PostStore, categories *store.CategoryStore, users *store.UserStore, postCache *cache.PostCache) *Admin {
	return &Admin{posts: posts, categories: categories, users: users, cache: postCache}
}

// PostGet returns a post with its full column set and tags, or 404.
func (a *Admin) PostGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperr.Validation("Invalid post id"))
		return
	}

	post, err := a.posts.Find(id)
	if err != nil {
		respondError(w, err)
		return
	}
	if post == nil {
		respondError(w, apperr.NotFound(postNotFoundMsg))
		return
	}

	tags, err := a.posts.TagsFor(post.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.PostWithTags{Post: *post, Tags: tags})
}

// PostCreate inserts a post authored by the session user and synchronizes
// its tag associations. The response carries the post row without resolved
// tag names; read paths are the ones that join tags back in.
func (a *Admin) PostCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		respondError(w, apperr.Unauthorized("Unauthorized"))
		return
	}

	var payload models.PostInput
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, err)
		return
	}

	category, err := uuid.Parse(payload.Category)
	if err != nil {
		respondError(w, apperr.Validation("Invalid category id"))
		return
	}

	post, err := a.posts.Create(userID, category, payload)
	if err != nil {
		respondError(w, err)
		return
	}

	a.cache.Invalidate(r.Context(), post.ID)
	respondJSON(w, http.StatusOK, post)
}

// PostUpdate overwrites a post's mutable fields and synchronizes its tag
// associations. 404 when the id is unknown.
func (a *Admin) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperr.Validation("Invalid post id"))
		return
	}

	var payload models.PostInput
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, err)
		return
	}

	category, err := uuid.Parse(payload.Category)
	if err != nil {
		respondError(w, apperr.Validation("Invalid category id"))
		return
	}

	post, err := a.posts.Update(id, category, payload)
	if err != nil {
		respondError(w, err)
		return
	}
	if post == nil {
		respondError(w, apperr.NotFound(postNotFoundMsg))
		return
	}

	a.cache.Invalidate(r.Context(), post.ID)
	respondJSON(w, http.StatusOK, post)
}

// CategoriesList returns all categories.
func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categories.List()
	if err != nil {
		respondError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	respondJSON(w, http.StatusOK, categories)
}

// Me returns the profile of the authenticated user.
func (a *Admin) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		respondError(w, apperr.Unauthorized("Unauthorized"))
		return
	}

	user, err := a.users.FindByID(userID)
	if err != nil {
		respondError(w, err)
		return
	}
	if user == nil {
		respondError(w, apperr.NotFound("User not found"))
		return
	}

	respondJSON(w, http.StatusOK, user.Profile())
}
