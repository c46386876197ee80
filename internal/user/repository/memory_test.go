package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomo-auth/backend/internal/user/domain"
)

func testUser(id, email string) domain.User {
	return domain.User{
		ID:           domain.ID(id),
		Email:        email,
		PasswordHash: "hashed",
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := testUser("id-1", "alice@example.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user by email, got %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("expected id %q, got %q", user.ID, byEmail.ID)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("expected user by id, got %v", err)
	}
	if byID.Email != user.Email {
		t.Errorf("expected email %q, got %q", user.Email, byID.Email)
	}
}

func TestMemoryRepository_DuplicateEmailRejected(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("id-1", "alice@example.com")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := repo.Create(ctx, testUser("id-2", "alice@example.com"))
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	if count := repo.Count(); count != 1 {
		t.Errorf("expected 1 stored user, got %d", count)
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound by email, got %v", err)
	}
	if _, err := repo.FindByID(ctx, domain.ID("missing")); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound by id, got %v", err)
	}
}

func TestMemoryRepository_Exists(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if exists {
		t.Error("expected email to be absent before create")
	}

	if err := repo.Create(ctx, testUser("id-1", "alice@example.com")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	exists, err = repo.Exists(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !exists {
		t.Error("expected email to be present after create")
	}
}
