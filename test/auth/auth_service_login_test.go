package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tomo-auth/backend/internal/auth/service"
	commonerrors "github.com/tomo-auth/backend/internal/common/errors"
	userdomain "github.com/tomo-auth/backend/internal/user/domain"
	userrepo "github.com/tomo-auth/backend/internal/user/repository"
)

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, hasher, _, mockClock := setupAuthService(t)

	email := "a@b.com"
	password := "TestPass123!"
	storedHash := "stored-hash"

	repo.findByEmailFunc = func(ctx context.Context, e string) (userdomain.User, error) {
		if e != email {
			t.Errorf("expected lookup for %q, got %q", email, e)
		}
		return userdomain.User{
			ID:           "user-123",
			Email:        email,
			PasswordHash: storedHash,
			CreatedAt:    mockClock.Now(),
		}, nil
	}

	hasher.compareFunc = func(hash string, p string) error {
		if hash != storedHash {
			t.Errorf("expected stored hash %q, got %q", storedHash, hash)
		}
		if p != password {
			t.Errorf("expected plaintext %q, got %q", password, p)
		}
		return nil
	}

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Token == "" {
		t.Error("expected token to be set")
	}
	if segments := strings.Split(result.Token, "."); len(segments) != 3 {
		t.Errorf("expected JWT with 3 dot-separated segments, got %d", len(segments))
	}
	if result.User.ID != "user-123" {
		t.Errorf("expected user id user-123, got %q", result.User.ID)
	}
	if result.User.Email != email {
		t.Errorf("expected email %q, got %q", email, result.User.Email)
	}
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	email := "a@b.com"

	svcUnknown, _, _, _, _ := setupAuthService(t)

	_, errUnknown := svcUnknown.Login(context.Background(), service.LoginInput{
		Email:    "absent@b.com",
		Password: "TestPass123!",
	})

	svcWrongPass, repo, hasher, _, _ := setupAuthService(t)
	repo.findByEmailFunc = func(ctx context.Context, e string) (userdomain.User, error) {
		return userdomain.User{ID: "user-123", Email: email, PasswordHash: "h"}, nil
	}
	hasher.compareFunc = func(hash string, p string) error {
		return errors.New("mismatch")
	}

	_, errWrongPass := svcWrongPass.Login(context.Background(), service.LoginInput{
		Email:    email,
		Password: "WrongPass123!",
	})

	if !errors.Is(errUnknown, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Errorf("error messages must not differ: %q vs %q", errUnknown.Error(), errWrongPass.Error())
	}
}

func TestAuthService_Login_MalformedEmail(t *testing.T) {
	svc, _, _, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "not-an-email",
		Password: "TestPass123!",
	})

	if _, ok := service.AsValidationError(err); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.findByEmailFunc = func(ctx context.Context, e string) (userdomain.User, error) {
		return userdomain.User{}, errors.New("connection refused")
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "a@b.com",
		Password: "TestPass123!",
	})
	if !errors.Is(err, commonerrors.ErrDatabaseError) {
		t.Fatalf("expected database error, got %v", err)
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		t.Error("infrastructure failures must not masquerade as invalid credentials")
	}
}

func TestAuthService_Login_NotFoundMapsToInvalidCredentials(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.findByEmailFunc = func(ctx context.Context, e string) (userdomain.User, error) {
		return userdomain.User{}, userrepo.ErrUserNotFound
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "a@b.com",
		Password: "TestPass123!",
	})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
