package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"inkpost/internal/token"
)

// CookieName is the name of the session token cookie sent to the browser.
const CookieName = "token"

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// userIDKey is the context key for the authenticated user's id.
const userIDKey contextKey = "user_id"

// Authenticate is the single authorization gate for protected routes. It
// reads the session token cookie, verifies it, and puts the subject user id
// into the request context. A missing, malformed, or expired token stops the
// request with a generic 401 — the verification detail is never sent to the
// client.
func Authenticate(signer *token.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			userID, err := signer.Verify(cookie.Value)
			if err != nil {
				slog.Debug("session token rejected", "error", err)
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromCtx extracts the authenticated user id from the request context.
// Returns uuid.Nil and false outside an authenticated request.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// WithUserID returns a context carrying the given user id, as Authenticate
// would set it. Exported for handler tests.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

func unauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "Unauthorized")
}
