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

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, hasher, idGen, mockClock := setupAuthService(t)

	userID := "user-123"
	email := "a@b.com"
	password := "TestPass123!"
	hashedPassword := "hashed_TestPass123!"

	idGen.newIDFunc = func() (string, error) {
		return userID, nil
	}

	hasher.hashFunc = func(p string) (string, error) {
		if p != password {
			t.Errorf("expected plaintext %q to reach hasher, got %q", password, p)
		}
		return hashedPassword, nil
	}

	var saved userdomain.User
	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		saved = user
		return nil
	}

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if user.ID != userID {
		t.Errorf("expected id %q, got %q", userID, user.ID)
	}
	if user.Email != email {
		t.Errorf("expected email %q, got %q", email, user.Email)
	}
	if !user.CreatedAt.Equal(mockClock.Now()) {
		t.Errorf("expected createdAt %v, got %v", mockClock.Now(), user.CreatedAt)
	}

	if saved.PasswordHash != hashedPassword {
		t.Errorf("expected stored hash %q, got %q", hashedPassword, saved.PasswordHash)
	}
}

func TestAuthService_Register_TrimsEmail(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	var saved userdomain.User
	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		saved = user
		return nil
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "  a@b.com  ",
		Password: "TestPass123!",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if saved.Email != "a@b.com" {
		t.Errorf("expected trimmed email, got %q", saved.Email)
	}
}

func TestAuthService_Register_ValidationError(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		t.Error("create must not be called for invalid input")
		return nil
	}

	testCases := []struct {
		name           string
		email          string
		password       string
		wantViolations int
	}{
		{
			name:           "missing uppercase digit and special",
			email:          "a@b.com",
			password:       "testpass",
			wantViolations: 3,
		},
		{
			name:           "too short",
			email:          "a@b.com",
			password:       "Ab1!",
			wantViolations: 1,
		},
		{
			name:           "empty password",
			email:          "a@b.com",
			password:       "",
			wantViolations: 4,
		},
		{
			name:           "malformed email",
			email:          "not-an-email",
			password:       "TestPass123!",
			wantViolations: 1,
		},
		{
			name:           "empty email",
			email:          "",
			password:       "TestPass123!",
			wantViolations: 1,
		},
		{
			name:           "bad email and bad password together",
			email:          "not-an-email",
			password:       "testpass",
			wantViolations: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), service.RegisterInput{
				Email:    tc.email,
				Password: tc.password,
			})
			if err == nil {
				t.Fatal("expected validation error")
			}

			vErr, ok := service.AsValidationError(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if len(vErr.Violations) != tc.wantViolations {
				t.Errorf("expected %d violations, got %d: %v",
					tc.wantViolations, len(vErr.Violations), vErr.Violations)
			}
		})
	}
}

func TestAuthService_Register_ReportsAllPasswordViolationsAtOnce(t *testing.T) {
	svc, _, _, _, _ := setupAuthService(t)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "a@b.com",
		Password: "testpass",
	})

	vErr, ok := service.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	for _, want := range []string{"uppercase", "digit", "special"} {
		found := false
		for _, v := range vErr.Violations {
			if strings.Contains(v, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a violation mentioning %q, got %v", want, vErr.Violations)
		}
	}
}

func TestAuthService_Register_EmailExists(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.existsFunc = func(ctx context.Context, email string) (bool, error) {
		return true, nil
	}
	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		t.Error("create must not be called when the email is taken")
		return nil
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "a@b.com",
		Password: "TestPass123!",
	})
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_RaceLosesToConcurrentInsert(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	// Exists passes but the store rejects the insert: a concurrent
	// registration won between the pre-check and the write.
	repo.existsFunc = func(ctx context.Context, email string) (bool, error) {
		return false, nil
	}
	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		return userrepo.ErrEmailAlreadyExists
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "a@b.com",
		Password: "TestPass123!",
	})
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	svc, repo, hasher, _, _ := setupAuthService(t)

	hasher.hashFunc = func(p string) (string, error) {
		return "", errors.New("bcrypt failure")
	}
	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		t.Error("create must not be called when hashing fails")
		return nil
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "a@b.com",
		Password: "TestPass123!",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	domainErr, ok := commonerrors.AsDomainError(err)
	if !ok {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if domainErr.Category() != commonerrors.CategoryInternal {
		t.Errorf("expected internal category, got %s", domainErr.Category())
	}
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		return errors.New("connection refused")
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "a@b.com",
		Password: "TestPass123!",
	})
	if !errors.Is(err, commonerrors.ErrDatabaseError) {
		t.Fatalf("expected database error, got %v", err)
	}
}
