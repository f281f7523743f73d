package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Yackxz2004/Estadia-Banquetes/internal/users"
	pkgauth "github.com/Yackxz2004/Estadia-Banquetes/pkg/auth"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/config"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/security"
)

// Service owns login and credential management for back-office accounts.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

// LoginResult carries the minted token together with the account it belongs to.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
}

type service struct {
	repo     users.Repository
	jwtCfg   config.JWTConfig
	passwCfg config.PasswordConfig
	now      func() time.Time
}

// NewService wires auth dependencies.
func NewService(repo users.Repository, jwtCfg config.JWTConfig, passwCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "user repository required")
	}
	if jwtCfg.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "jwt secret required")
	}
	return &service{repo: repo, jwtCfg: jwtCfg, passwCfg: passwCfg, now: time.Now}, nil
}

func errInvalidCredentials() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
}

// Login verifies the credentials and mints an access token. Lookup and
// verification failures collapse into the same error so the response never
// reveals whether the email exists.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, errInvalidCredentials()
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errInvalidCredentials()
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, errInvalidCredentials()
	}

	now := s.now()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(time.Duration(s.jwtCfg.ExpirationMinutes) * time.Minute),
		User:      *user,
	}, nil
}

func (s *service) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.repo.Get(ctx, userID)
}

// ChangePassword swaps the stored hash after verifying the current password.
func (s *service) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return pkgerrors.New(pkgerrors.CodeValidation, "new password must be at least 8 characters")
	}

	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := security.VerifyPassword(current, user.PasswordHash)
	if err != nil || !ok {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "current password does not match")
	}

	hash, err := security.HashPassword(next, s.passwCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	user.PasswordHash = hash
	return s.repo.Save(ctx, user)
}
