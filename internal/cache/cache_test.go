package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// testCache connects to a local Valkey, skipping the test if unreachable.
func testCache(t *testing.T) *PostCache {
	t.Helper()

	addr := os.Getenv("VALKEY_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client, err := ConnectValkey(addr, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: valkey not reachable: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return NewPostCache(client, time.Minute)
}

func TestNilCacheIsNoOp(t *testing.T) {
	ctx := context.Background()
	var pc *PostCache

	// Every method must be safe on a nil cache — the service runs without
	// Valkey configured.
	if _, ok := pc.GetList(ctx); ok {
		t.Error("nil cache reported a hit")
	}
	pc.SetList(ctx, []byte("[]"))

	id := uuid.New()
	if _, ok := pc.GetPost(ctx, id); ok {
		t.Error("nil cache reported a hit")
	}
	pc.SetPost(ctx, id, []byte("{}"))
	pc.Invalidate(ctx, id)
}

func TestPostCacheRoundTrip(t *testing.T) {
	pc := testCache(t)
	ctx := context.Background()
	id := uuid.New()

	if _, ok := pc.GetPost(ctx, id); ok {
		t.Fatal("unexpected hit before set")
	}

	body := []byte(`{"id":"` + id.String() + `"}`)
	pc.SetPost(ctx, id, body)

	got, ok := pc.GetPost(ctx, id)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != string(body) {
		t.Errorf("body: got %q, want %q", got, body)
	}

	pc.Invalidate(ctx, id)
	if _, ok := pc.GetPost(ctx, id); ok {
		t.Error("expected miss after invalidate")
	}
}

func TestPostCacheInvalidateDropsListing(t *testing.T) {
	pc := testCache(t)
	ctx := context.Background()

	pc.SetList(ctx, []byte("[]"))
	if _, ok := pc.GetList(ctx); !ok {
		t.Fatal("expected listing hit after set")
	}

	// Any write invalidates the listing along with the post key.
	pc.Invalidate(ctx, uuid.New())
	if _, ok := pc.GetList(ctx); ok {
		t.Error("expected listing miss after invalidate")
	}
}
