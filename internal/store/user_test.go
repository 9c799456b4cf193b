package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestUserStoreFindByEmail(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	userID, _ := seedAuthorAndCategory(t, db, "")

	seeded, err := s.FindByID(userID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if seeded == nil {
		t.Fatal("seeded user not found by id")
	}

	found, err := s.FindByEmail(seeded.Email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found == nil {
		t.Fatal("seeded user not found by email")
	}
	if found.ID != userID {
		t.Errorf("id: got %s, want %s", found.ID, userID)
	}
}

func TestUserStoreFindByEmailMissing(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	found, err := s.FindByEmail("nobody-" + uuid.NewString()[:8] + "@inkpost.test")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for unknown email, got %+v", found)
	}
}

func TestUserStoreCheckPassword(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	userID, _ := seedAuthorAndCategory(t, db, "")

	user, err := s.FindByID(userID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user == nil {
		t.Fatal("seeded user not found")
	}

	if !s.CheckPassword(user, testPassword) {
		t.Error("correct password rejected")
	}
	if s.CheckPassword(user, "wrong password") {
		t.Error("wrong password accepted")
	}
}
