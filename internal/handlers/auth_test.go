package handlers_test

import (
	"net/http"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/login", map[string]string{
		"email":    ts.adminEmail,
		"password": testPassword,
	}, false)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %q)", rr.Code, rr.Body.String())
	}

	var profile struct {
		Email string `json:"email"`
	}
	decodeBody(t, rr, &profile)
	if profile.Email != ts.adminEmail {
		t.Errorf("email: got %q, want %q", profile.Email, ts.adminEmail)
	}

	cookies := rr.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name != "token" {
			continue
		}
		found = true
		if c.Value == "" {
			t.Error("token cookie is empty")
		}
		if !c.HttpOnly {
			t.Error("token cookie must be HttpOnly")
		}
		if !c.Secure {
			t.Error("token cookie must be Secure")
		}
		if c.SameSite != http.SameSiteStrictMode {
			t.Errorf("token cookie SameSite: got %v, want Strict", c.SameSite)
		}
		if c.Expires.IsZero() {
			t.Error("token cookie should carry an expiry")
		}
	}
	if !found {
		t.Fatal("no token cookie set on successful login")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/login", map[string]string{
		"email":    ts.adminEmail,
		"password": "wrong",
	}, false)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rr.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rr, &body)
	if body.Message != "Invalid email or password" {
		t.Errorf("message: got %q, want %q", body.Message, "Invalid email or password")
	}
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	ts := newTestServer(t)

	wrongPassword := ts.do(t, http.MethodPost, "/login", map[string]string{
		"email":    ts.adminEmail,
		"password": "wrong",
	}, false)
	unknownEmail := ts.do(t, http.MethodPost, "/login", map[string]string{
		"email":    "nobody@inkpost.test",
		"password": "whatever",
	}, false)

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("statuses: got %d and %d, want 401 for both", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("credential failures must be indistinguishable: %q vs %q",
			wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestLoginEmptyFields(t *testing.T) {
	ts := newTestServer(t)

	for _, payload := range []map[string]string{
		{"email": "", "password": "x"},
		{"email": "a@x.com", "password": ""},
		{"email": "", "password": ""},
	} {
		rr := ts.do(t, http.MethodPost, "/login", payload, false)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("payload %v: status got %d, want 400", payload, rr.Code)
		}
	}
}

func TestLoginMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodPost, "/login", "not-an-object", false)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
}
