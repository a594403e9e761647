// internal/service/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sumon-service/internal/domain/admin"
	xerrors "sumon-service/internal/pkg/errors"
	"sumon-service/internal/pkg/jwt"
)

// AdminRepository is the persistence surface the auth flow needs.
type AdminRepository interface {
	Create(ctx context.Context, a *admin.Admin) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*admin.Admin, error)
	FindByID(ctx context.Context, id int64) (*admin.Admin, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

type AuthService struct {
	repo   AdminRepository
	tokens *jwt.Manager
}

func NewAuthService(repo AdminRepository, tokens *jwt.Manager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates the admin account and returns a signed token for it.
func (s *AuthService) Register(ctx context.Context, req admin.RegisterRequest) (*admin.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if taken {
		return nil, xerrors.Wrap(xerrors.ErrDuplicateEntry, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a := &admin.Admin{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return s.issue(a)
}

// Login verifies the credentials and returns a fresh token. Bad email, bad
// password and a deactivated account all come back as the same unauthorized
// error so the response does not reveal which part failed.
func (s *AuthService) Login(ctx context.Context, req admin.LoginRequest) (*admin.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.Wrap(xerrors.ErrUnauthorized, "invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, xerrors.Wrap(xerrors.ErrUnauthorized, "invalid email or password")
	}
	if !a.IsActive {
		return nil, xerrors.Wrap(xerrors.ErrUnauthorized, "account is deactivated")
	}

	if err := s.repo.UpdateLastLogin(ctx, a.ID); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	now := time.Now()
	a.LastLogin = &now

	return s.issue(a)
}

// VerifyToken resolves a bearer token to its admin. The admin must still
// exist and be active; deactivation acts as revocation.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*admin.Admin, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrUnauthorized, "invalid or expired token")
	}

	a, err := s.repo.FindByID(ctx, claims.AdminID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.Wrap(xerrors.ErrUnauthorized, "account no longer exists")
		}
		return nil, err
	}
	if !a.IsActive {
		return nil, xerrors.Wrap(xerrors.ErrUnauthorized, "account is deactivated")
	}
	return a, nil
}

func (s *AuthService) issue(a *admin.Admin) (*admin.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Generate(a.ID, a.Role)
	if err != nil {
		return nil, err
	}
	return &admin.AuthResponse{
		Admin:     a.Info(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
