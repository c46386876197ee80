package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomo-auth/backend/internal/auth/service"
	"github.com/tomo-auth/backend/internal/common/clock"
	commoncrypto "github.com/tomo-auth/backend/internal/common/crypto"
	"github.com/tomo-auth/backend/internal/common/logger"
	userrepo "github.com/tomo-auth/backend/internal/user/repository"
)

const testJWTSecret = "test-secret-key-0123456789abcdefghij"

var testTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("", "test", "critical")
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return log
}

func setupAuthService(t *testing.T) (*service.AuthService, *mockUserRepo, *mockHasher, *mockIDGenerator, *clock.MockClock) {
	t.Helper()

	repo := &mockUserRepo{}
	hasher := &mockHasher{}
	idGen := &mockIDGenerator{}
	mockClock := clock.NewMockClock(testTime)

	svc := service.NewAuthService(service.AuthServiceDeps{
		Repo:        repo,
		Hasher:      hasher,
		IDGenerator: idGen,
		Clock:       mockClock,
		Tokens:      service.NewTokenIssuer(testJWTSecret, 0, mockClock),
		Policy:      service.DefaultPasswordPolicy(),
		Log:         newTestLogger(t),
	})

	return svc, repo, hasher, idGen, mockClock
}

// setupRealAuthService wires the service against the in-memory store and the
// real bcrypt hasher, for end-to-end and race tests.
func setupRealAuthService(t *testing.T) (*service.AuthService, *userrepo.MemoryRepository) {
	t.Helper()

	repo := userrepo.NewMemoryRepository()
	realClock := clock.NewRealClock()

	svc := service.NewAuthService(service.AuthServiceDeps{
		Repo:        repo,
		Hasher:      commoncrypto.NewBcryptHasher(bcrypt.MinCost),
		IDGenerator: commoncrypto.NewUUIDGenerator(),
		Clock:       realClock,
		Tokens:      service.NewTokenIssuer(testJWTSecret, 0, realClock),
		Policy:      service.DefaultPasswordPolicy(),
		Log:         newTestLogger(t),
	})

	return svc, repo
}
