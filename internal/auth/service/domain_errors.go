package service

import (
	"net/http"

	commonerrors "github.com/tomo-auth/backend/internal/common/errors"
)

var (
	// ErrInvalidCredentials is deliberately uninformative: an unknown email
	// and a wrong password are indistinguishable to the caller, which blocks
	// user enumeration through the login endpoint.
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"invalid email or password",
	)

	ErrEmailTaken = commonerrors.NewDomainError(
		"EMAIL_TAKEN",
		commonerrors.CategoryConflict,
		http.StatusConflict,
		"email already registered",
	)

	ErrValidation = commonerrors.NewDomainError(
		"VALIDATION_FAILED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"validation failed",
	)

	ErrUserNotFound = commonerrors.ErrUserNotFound
)
