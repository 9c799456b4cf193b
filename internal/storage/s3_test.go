package storage

import (
	"context"
	"strings"
	"testing"
)

func TestNewRequiresCredentials(t *testing.T) {
	cases := []struct {
		name     string
		endpoint string
		key      string
		secret   string
	}{
		{"no endpoint", "", "key", "secret"},
		{"no key", "https://s3.example.com", "", "secret"},
		{"no secret", "https://s3.example.com", "key", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.endpoint, "eu-central-1", tc.key, tc.secret, "media"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPresignUpload(t *testing.T) {
	// Presigning computes a signature locally; no bucket is contacted.
	c, err := New("https://s3.example.com", "eu-central-1", "test-key", "test-secret", "media")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	url, err := c.PresignUpload(context.Background(), "media/some-object")
	if err != nil {
		t.Fatalf("PresignUpload: %v", err)
	}

	if !strings.HasPrefix(url, "https://s3.example.com/media/media/some-object") {
		t.Errorf("url should be path-style against the bucket: %q", url)
	}
	if !strings.Contains(url, "X-Amz-Expires=60") {
		t.Errorf("url should expire in 60 seconds: %q", url)
	}
	if !strings.Contains(url, "X-Amz-Signature=") {
		t.Errorf("url is not signed: %q", url)
	}
}
