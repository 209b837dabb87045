package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCreateUserUUIDRequiresExistingUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserUUIDService(db)

	if _, err := svc.Create(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	user := seedUser(t, db, "a@b.com")
	record, err := svc.Create(user.ID)
	if err != nil {
		t.Fatalf("creation failed: %v", err)
	}
	if record.UserID != user.ID {
		t.Errorf("expected user id %d, got %d", user.ID, record.UserID)
	}
	if record.Value == uuid.Nil {
		t.Errorf("expected a generated uuid value")
	}
}

func TestGetUserUUID(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserUUIDService(db)
	user := seedUser(t, db, "a@b.com")

	created, err := svc.Create(user.ID)
	if err != nil {
		t.Fatalf("creation failed: %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Value != created.Value {
		t.Errorf("expected value %s, got %s", created.Value, got.Value)
	}

	if _, err := svc.Get(999); !errors.Is(err, ErrUserUUIDNotFound) {
		t.Fatalf("expected ErrUserUUIDNotFound, got %v", err)
	}
}

func TestListUserUUIDs(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserUUIDService(db)
	user := seedUser(t, db, "a@b.com")

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(user.ID); err != nil {
			t.Fatalf("creation failed: %v", err)
		}
	}

	records, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}
