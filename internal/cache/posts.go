// posts.go provides a Valkey-backed cache of marshaled public post
// responses. Read handlers consult it before hitting the database; admin
// writes invalidate the touched keys. A nil *PostCache is a valid no-op
// cache, so the service runs unchanged when Valkey is not configured.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// postKeyPrefix namespaces post cache keys in Valkey.
	postKeyPrefix = "posts:"

	// listKey is the cache key for the full public listing.
	listKey = postKeyPrefix + "all"

	// DefaultPostTTL is how long a cached response stays valid.
	DefaultPostTTL = 5 * time.Minute
)

// PostCache caches public post JSON responses in Valkey.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostCache creates a post cache backed by the given Valkey client.
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	if ttl == 0 {
		ttl = DefaultPostTTL
	}
	return &PostCache{client: client, ttl: ttl}
}

// GetList retrieves the cached listing response. Returns nil, false on miss.
func (pc *PostCache) GetList(ctx context.Context) ([]byte, bool) {
	return pc.get(ctx, listKey)
}

// SetList stores the marshaled listing response.
func (pc *PostCache) SetList(ctx context.Context, body []byte) {
	pc.set(ctx, listKey, body)
}

// GetPost retrieves a cached single-post response. Returns nil, false on miss.
func (pc *PostCache) GetPost(ctx context.Context, id uuid.UUID) ([]byte, bool) {
	return pc.get(ctx, postKeyPrefix+id.String())
}

// SetPost stores a marshaled single-post response.
func (pc *PostCache) SetPost(ctx context.Context, id uuid.UUID, body []byte) {
	pc.set(ctx, postKeyPrefix+id.String(), body)
}

// Invalidate drops the listing key and the key for one post. Called after
// any admin write that touches the post.
func (pc *PostCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if pc == nil {
		return
	}
	if err := pc.client.Del(ctx, listKey, postKeyPrefix+id.String()).Err(); err != nil {
		slog.Warn("post cache invalidate error", "id", id, "error", err)
	}
}

func (pc *PostCache) get(ctx context.Context, key string) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("post cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

func (pc *PostCache) set(ctx context.Context, key string, body []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, key, body, pc.ttl).Err(); err != nil {
		slog.Warn("post cache set error", "key", key, "error", err)
	}
}
