package service

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/tomo-auth/backend/internal/common/config"
	"github.com/tomo-auth/backend/internal/common/constants"
)

// PasswordPolicy is the configurable composition rule set applied to
// plaintext passwords at registration. Whether lowercase letters are
// required varies between deployments, so it is a toggle rather than a
// hard-coded rule.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
	RequireSpecial   bool
}

func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        constants.PasswordMinLength,
		RequireUppercase: true,
		RequireLowercase: false,
		RequireDigit:     true,
		RequireSpecial:   true,
	}
}

func PasswordPolicyFromConfig(cfg config.PasswordPolicyConfig) PasswordPolicy {
	return PasswordPolicy{
		MinLength:        cfg.MinLength,
		RequireUppercase: cfg.RequireUppercase,
		RequireLowercase: cfg.RequireLowercase,
		RequireDigit:     cfg.RequireDigit,
		RequireSpecial:   cfg.RequireSpecial,
	}
}

// Validate is a pure function over the plaintext. It never short-circuits:
// the returned slice holds every violated rule, empty when the password
// passes.
func (p PasswordPolicy) Validate(password string) []string {
	var violations []string

	if utf8.RuneCountInString(password) < p.MinLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}

	if len(password) > constants.PasswordMaxLength {
		violations = append(violations, fmt.Sprintf("password must be at most %d bytes long", constants.PasswordMaxLength))
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if p.RequireUppercase && !hasUpper {
		violations = append(violations, "password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !hasLower {
		violations = append(violations, "password must contain at least one lowercase letter")
	}
	if p.RequireDigit && !hasDigit {
		violations = append(violations, "password must contain at least one digit")
	}
	if p.RequireSpecial && !hasSpecial {
		violations = append(violations, "password must contain at least one special character")
	}

	return violations
}
