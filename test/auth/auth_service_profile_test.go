package auth

import (
	"context"
	"errors"
	"testing"

	commonerrors "github.com/tomo-auth/backend/internal/common/errors"
	userdomain "github.com/tomo-auth/backend/internal/user/domain"
	userrepo "github.com/tomo-auth/backend/internal/user/repository"
)

func TestAuthService_Profile_Success(t *testing.T) {
	svc, repo, _, _, mockClock := setupAuthService(t)

	repo.findByIDFunc = func(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
		if id != "user-123" {
			t.Errorf("expected lookup for user-123, got %q", id)
		}
		return userdomain.User{
			ID:           "user-123",
			Email:        "a@b.com",
			PasswordHash: "secret-hash",
			CreatedAt:    mockClock.Now(),
		}, nil
	}

	user, err := svc.Profile(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if user.ID != "user-123" {
		t.Errorf("expected id user-123, got %q", user.ID)
	}
	if user.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %q", user.Email)
	}
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.findByIDFunc = func(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
		return userdomain.User{}, userrepo.ErrUserNotFound
	}

	_, err := svc.Profile(context.Background(), "gone")
	if !errors.Is(err, commonerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Profile_StoreFailure(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.findByIDFunc = func(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
		return userdomain.User{}, errors.New("connection refused")
	}

	_, err := svc.Profile(context.Background(), "user-123")
	if !errors.Is(err, commonerrors.ErrDatabaseError) {
		t.Fatalf("expected database error, got %v", err)
	}
}
