package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tomo-auth/backend/internal/common/constants"
)

// validate is safe for concurrent use; validator caches its struct/tag
// metadata internally.
var validate = validator.New()

// NormalizeEmail trims surrounding whitespace. No case folding is applied:
// lookup is exact-match on the stored form, consistent between the write
// and read paths.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func emailViolations(email string) []string {
	var violations []string

	if email == "" {
		return append(violations, "email is required")
	}
	if len(email) > constants.EmailMaxLength {
		violations = append(violations, "email is too long")
	}
	if err := validate.Var(email, "email"); err != nil {
		violations = append(violations, "email must be a valid address")
	}

	return violations
}
