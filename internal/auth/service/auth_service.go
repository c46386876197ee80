package service

import (
	"context"
	"errors"

	authdto "github.com/tomo-auth/backend/internal/auth/service/dto"
	"github.com/tomo-auth/backend/internal/auth/service/mapper"
	"github.com/tomo-auth/backend/internal/common/clock"
	commoncrypto "github.com/tomo-auth/backend/internal/common/crypto"
	commonerrors "github.com/tomo-auth/backend/internal/common/errors"
	"github.com/tomo-auth/backend/internal/common/logger"
	userdomain "github.com/tomo-auth/backend/internal/user/domain"
	userrepo "github.com/tomo-auth/backend/internal/user/repository"
)

// AuthService orchestrates the credential lifecycle: policy validation,
// uniqueness, hashing, persistence and token issuance. It holds no mutable
// state of its own; the user store's unique index is the only exclusion
// mechanism.
type AuthService struct {
	repo        userrepo.Repository
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	tokens      *TokenIssuer
	policy      PasswordPolicy
	log         *logger.Logger
}

type AuthServiceDeps struct {
	Repo        userrepo.Repository
	Hasher      commoncrypto.PasswordHasher
	IDGenerator commoncrypto.IDGenerator
	Clock       clock.Clock
	Tokens      *TokenIssuer
	Policy      PasswordPolicy
	Log         *logger.Logger
}

func NewAuthService(deps AuthServiceDeps) *AuthService {
	return &AuthService{
		repo:        deps.Repo,
		hasher:      deps.Hasher,
		idGenerator: deps.IDGenerator,
		clock:       deps.Clock,
		tokens:      deps.Tokens,
		policy:      deps.Policy,
		log:         deps.Log,
	}
}

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  authdto.PublicUser
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (authdto.PublicUser, error) {
	email := NormalizeEmail(input.Email)

	s.log.WithFields(ctx, logger.Fields{
		"email":  email,
		"action": "register_attempt",
	}).Info("register attempt")

	// All violations are collected before failing so the caller gets
	// complete feedback in one round trip.
	violations := emailViolations(email)
	violations = append(violations, s.policy.Validate(input.Password)...)
	if len(violations) > 0 {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "register_validation_failed",
		}).Warnf("register validation failed: %d violations", len(violations))
		return authdto.PublicUser{}, NewValidationError(violations)
	}

	exists, err := s.repo.Exists(ctx, email)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "register_exists_check_failed",
		}).Errorf("register failed: exists check error: %v", err)
		return authdto.PublicUser{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	if exists {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "register_email_exists",
		}).Warn("register failed: email already exists")
		incrementRegistrations("conflict")
		return authdto.PublicUser{}, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		return authdto.PublicUser{}, commonerrors.ErrInternalError.WithCause(err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "register_id_generation_failed",
		}).Errorf("register failed: id generation error: %v", err)
		return authdto.PublicUser{}, commonerrors.ErrInternalError.WithCause(err)
	}

	user := userdomain.User{
		ID:           userdomain.ID(id),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// A concurrent registration can win between the Exists pre-check
		// and this insert; the store's unique index reports it and the
		// outcome is the same conflict, not a crash.
		if errors.Is(err, userrepo.ErrEmailAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  email,
				"action": "register_email_exists",
			}).Warn("register failed: email already exists")
			incrementRegistrations("conflict")
			return authdto.PublicUser{}, ErrEmailTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "register_create_failed",
		}).Errorf("register failed: %v", err)
		return authdto.PublicUser{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"email":   email,
		"user_id": string(user.ID),
		"action":  "register_success",
	}).Info("register success")
	incrementRegistrations("success")

	return mapper.UserToPublic(user), nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	email := NormalizeEmail(input.Email)

	s.log.WithFields(ctx, logger.Fields{
		"email":  email,
		"action": "login_attempt",
	}).Info("login attempt")

	if violations := emailViolations(email); len(violations) > 0 {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "login_validation_failed",
		}).Warn("login validation failed: malformed email")
		return LoginResult{}, NewValidationError(violations)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  email,
				"action": "login_user_not_found",
			}).Warn("login failed: not found")
			incrementLogins("invalid_credentials")
			return LoginResult{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		return LoginResult{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "login_invalid_password",
		}).Warn("login failed: invalid password")
		incrementLogins("invalid_credentials")
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(string(user.ID))
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":   email,
			"user_id": string(user.ID),
			"action":  "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		return LoginResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"email":   email,
		"user_id": string(user.ID),
		"action":  "login_success",
	}).Info("login success")
	incrementLogins("success")

	return LoginResult{
		Token: token,
		User:  mapper.UserToPublic(user),
	}, nil
}

// Profile resolves the user id carried by an already-verified token. A
// valid token whose subject no longer resolves yields not-found, distinct
// from the unauthorized outcome of a bad token.
func (s *AuthService) Profile(ctx context.Context, userID string) (authdto.PublicUser, error) {
	user, err := s.repo.FindByID(ctx, userdomain.ID(userID))
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"user_id": userID,
				"action":  "profile_user_not_found",
			}).Warn("profile failed: not found")
			return authdto.PublicUser{}, ErrUserNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "profile_fetch_failed",
		}).Errorf("profile failed: %v", err)
		return authdto.PublicUser{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	return mapper.UserToPublic(user), nil
}
