// internal/service/auth/auth_test.go
package auth

import (
	"context"
	"testing"
	"time"

	"sumon-service/internal/domain/admin"
	xerrors "sumon-service/internal/pkg/errors"
	"sumon-service/internal/pkg/jwt"
)

type fakeAdminRepo struct {
	nextID     int64
	byEmail    map[string]*admin.Admin
	byID       map[int64]*admin.Admin
	lastLogins int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		byEmail: map[string]*admin.Admin{},
		byID:    map[int64]*admin.Admin{},
	}
}

func (r *fakeAdminRepo) Create(ctx context.Context, a *admin.Admin) error {
	if _, ok := r.byEmail[a.Email]; ok {
		return xerrors.ErrDuplicateEntry
	}
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	r.byEmail[a.Email] = &cp
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) FindByID(ctx context.Context, id int64) (*admin.Admin, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	r.lastLogins++
	return nil
}

func (r *fakeAdminRepo) deactivate(id int64) {
	a := r.byID[id]
	a.IsActive = false
	r.byEmail[a.Email].IsActive = false
}

func newTestService(t *testing.T) (*AuthService, *fakeAdminRepo) {
	t.Helper()
	tokens, err := jwt.NewManager(jwt.Config{Secret: "test-secret", Issuer: "test", TTL: time.Hour})
	if err != nil {
		t.Fatalf("jwt.NewManager: %v", err)
	}
	repo := newFakeAdminRepo()
	return NewAuthService(repo, tokens), repo
}

func registerReq() admin.RegisterRequest {
	return admin.RegisterRequest{
		Name:     "Site Admin",
		Email:    "Admin@Sumon.Example",
		Password: "correct horse battery",
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a token")
	}
	if res.Admin.Email != "admin@sumon.example" {
		t.Errorf("email not normalized: %q", res.Admin.Email)
	}
	if res.Admin.Role != "admin" {
		t.Errorf("role = %q", res.Admin.Role)
	}

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(context.Background(), registerReq())
		if !xerrors.Is(err, xerrors.ErrDuplicateEntry) {
			t.Errorf("got %v, want ErrDuplicateEntry", err)
		}
	})
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService(t)
	if _, err := svc.Register(context.Background(), registerReq()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(context.Background(), admin.LoginRequest{
			Email:    "admin@sumon.example",
			Password: "correct horse battery",
		})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if res.Token == "" {
			t.Error("expected a token")
		}
		if repo.lastLogins != 1 {
			t.Errorf("last login recorded %d times", repo.lastLogins)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), admin.LoginRequest{
			Email:    "admin@sumon.example",
			Password: "wrong",
		})
		if !xerrors.Is(err, xerrors.ErrUnauthorized) {
			t.Errorf("got %v, want ErrUnauthorized", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), admin.LoginRequest{
			Email:    "nobody@sumon.example",
			Password: "correct horse battery",
		})
		if !xerrors.Is(err, xerrors.ErrUnauthorized) {
			t.Errorf("got %v, want ErrUnauthorized", err)
		}
	})

	t.Run("deactivated account", func(t *testing.T) {
		repo.deactivate(1)
		_, err := svc.Login(context.Background(), admin.LoginRequest{
			Email:    "admin@sumon.example",
			Password: "correct horse battery",
		})
		if !xerrors.Is(err, xerrors.ErrUnauthorized) {
			t.Errorf("got %v, want ErrUnauthorized", err)
		}
	})
}

func TestVerifyToken(t *testing.T) {
	svc, repo := newTestService(t)
	res, err := svc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("valid token resolves the admin", func(t *testing.T) {
		a, err := svc.VerifyToken(context.Background(), res.Token)
		if err != nil {
			t.Fatalf("VerifyToken: %v", err)
		}
		if a.ID != res.Admin.ID {
			t.Errorf("resolved admin %d, want %d", a.ID, res.Admin.ID)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.VerifyToken(context.Background(), "not-a-token")
		if !xerrors.Is(err, xerrors.ErrUnauthorized) {
			t.Errorf("got %v, want ErrUnauthorized", err)
		}
	})

	t.Run("deactivation revokes", func(t *testing.T) {
		repo.deactivate(res.Admin.ID)
		_, err := svc.VerifyToken(context.Background(), res.Token)
		if !xerrors.Is(err, xerrors.ErrUnauthorized) {
			t.Errorf("got %v, want ErrUnauthorized", err)
		}
	})
}
