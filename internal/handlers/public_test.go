package handlers_test

import (
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"inkpost/internal/models"
)

func TestPublicPostsList(t *testing.T) {
	ts := newTestServer(t)
	tag := "p-" + uuid.NewString()[:8]
	t.Cleanup(func() { ts.db.Exec(`DELETE FROM tags WHERE name = $1`, tag) })

	rr := ts.do(t, http.MethodPost, "/admin/posts", testPayload(ts, []string{tag}), true)
	if rr.Code != http.StatusOK {
		t.Fatalf("create status: got %d", rr.Code)
	}
	var created models.Post
	decodeBody(t, rr, &created)

	rr = ts.do(t, http.MethodGet, "/posts", nil, false)
	if rr.Code != http.StatusOK {
		t.Fatalf("list status: got %d, want 200", rr.Code)
	}

	var items []models.PostSummary
	decodeBody(t, rr, &items)

	var found *models.PostSummary
	for i := range items {
		if items[i].ID == created.ID {
			found = &items[i]
			break
		}
	}
	if found == nil {
		t.Fatal("created post missing from public listing")
	}
	if !reflect.DeepEqual(found.Tags, []string{tag}) {
		t.Errorf("tags: got %v, want %v", found.Tags, []string{tag})
	}
}

func TestPublicPostByID(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/admin/posts", testPayload(ts, nil), true)
	if rr.Code != http.StatusOK {
		t.Fatalf("create status: got %d", rr.Code)
	}
	var created models.Post
	decodeBody(t, rr, &created)

	rr = ts.do(t, http.MethodGet, "/posts/"+created.ID.String(), nil, false)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	var got models.PostSummary
	decodeBody(t, rr, &got)
	if got.ID != created.ID {
		t.Errorf("id: got %s, want %s", got.ID, created.ID)
	}
	if got.Title != created.Title {
		t.Errorf("title: got %q, want %q", got.Title, created.Title)
	}
}

func TestPublicPostByIDMissingReturnsNull(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodGet, "/posts/"+uuid.NewString(), nil, false)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 — the public variant does not 404", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "null" {
		t.Errorf("body: got %q, want null", rr.Body.String())
	}
}

func TestPublicPostByIDMalformed(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodGet, "/posts/not-a-uuid", nil, false)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodGet, "/nope", nil, false)
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}

	// The fallback speaks the same JSON error shape as the rest of the API.
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rr, &body)
	if body.Message != "404 Not Found" {
		t.Errorf("message: got %q, want %q", body.Message, "404 Not Found")
	}
}
