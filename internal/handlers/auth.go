package handlers

import (
	"net/http"
	"time"

	"inkpost/internal/apperr"
	"inkpost/internal/middleware"
	"inkpost/internal/store"
	"inkpost/internal/token"
)

// invalidCredentialsMsg is returned for an unknown email and a wrong
// password alike, so responses cannot be used to enumerate accounts.
const invalidCredentialsMsg = "Invalid email or password"

// Auth groups the authentication handlers.
type Auth struct {
	users  *store.UserStore
	signer *token.Signer
}

// NewAuth creates a new Auth handler group.
func NewAuth(users *store.UserStore, signer *token.Signer) *Auth {
	return &Auth{users: users, signer: signer}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies email/password credentials, issues a session token, and
// sets it as an HTTP-only strict-same-site cookie valid for one hour.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, err)
		return
	}

	if payload.Email == "" || payload.Password == "" {
		respondError(w, apperr.Validation("Email and password are required"))
		return
	}

	user, err := a.users.FindByEmail(payload.Email)
	if err != nil {
		respondError(w, err)
		return
	}
	if user == nil || !a.users.CheckPassword(user, payload.Password) {
		respondError(w, apperr.Unauthorized(invalidCredentialsMsg))
		return
	}

	signed, err := a.signer.Sign(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(token.TTL),
	})

	respondJSON(w, http.StatusOK, user.Profile())
}
