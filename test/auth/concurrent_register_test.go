package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/tomo-auth/backend/internal/auth/service"
)

func TestRegister_ConcurrentSameEmail(t *testing.T) {
	svc, repo := setupRealAuthService(t)

	const workers = 8

	var wg sync.WaitGroup
	results := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Register(context.Background(), service.RegisterInput{
				Email:    "race@example.com",
				Password: "TestPass123!",
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	successes := 0
	for i, err := range results {
		if err == nil {
			successes++
			continue
		}
		if !errors.Is(err, service.ErrEmailTaken) {
			t.Errorf("worker %d: expected ErrEmailTaken, got %v", i, err)
		}
	}

	if successes != 1 {
		t.Errorf("expected exactly 1 successful registration, got %d", successes)
	}
	if count := repo.Count(); count != 1 {
		t.Errorf("expected exactly 1 stored user, got %d", count)
	}
}

func TestRegister_ConcurrentDistinctEmails(t *testing.T) {
	svc, repo := setupRealAuthService(t)

	emails := []string{
		"one@example.com",
		"two@example.com",
		"three@example.com",
		"four@example.com",
		"five@example.com",
	}

	var wg sync.WaitGroup
	errs := make([]error, len(emails))

	for i, email := range emails {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			_, err := svc.Register(context.Background(), service.RegisterInput{
				Email:    email,
				Password: "TestPass123!",
			})
			errs[i] = err
		}(i, email)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("registration of %s failed: %v", emails[i], err)
		}
	}
	if count := repo.Count(); count != len(emails) {
		t.Errorf("expected %d stored users, got %d", len(emails), count)
	}
}
