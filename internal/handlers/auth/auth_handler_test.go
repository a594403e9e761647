// internal/handlers/auth/auth_handler_test.go
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sumon-service/internal/domain/admin"
	"sumon-service/internal/middleware"
	xerrors "sumon-service/internal/pkg/errors"
	"sumon-service/internal/pkg/jwt"
	service "sumon-service/internal/service/auth"
)

type fakeAdminRepo struct {
	nextID  int64
	byEmail map[string]*admin.Admin
	byID    map[int64]*admin.Admin
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

func (r *fakeAdminRepo) UpdateLastLogin(ctx context.Context, id int64) error { return nil }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	} `json:"error"`
}

func setupRouter(t *testing.T, allowRegistration bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := jwt.NewManager(jwt.Config{Secret: "test-secret", Issuer: "test", TTL: time.Hour})
	if err != nil {
		t.Fatalf("jwt.NewManager: %v", err)
	}
	authService := service.NewAuthService(newFakeAdminRepo(), tokens)
	h := NewAuthHandler(authService, allowRegistration)
	authMW := middleware.NewAuthMiddleware(authService)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	protected := r.Group("/api/auth")
	protected.Use(authMW.Auth())
	{
		protected.GET("/me", h.Me)
		protected.POST("/logout", h.Logout)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return w, env
}

func registerBody() map[string]string {
	return map[string]string{
		"name":     "Site Admin",
		"email":    "admin@sumon.example",
		"password": "correct horse battery",
	}
}

func registerAndGetToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %s", w.Body.String())
	}
	var res admin.AuthResponse
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode auth response: %v", err)
	}
	return res.Token
}

func TestRegister(t *testing.T) {
	t.Run("creates account and returns token", func(t *testing.T) {
		r := setupRouter(t, true)
		if token := registerAndGetToken(t, r); token == "" {
			t.Error("expected a token")
		}
	})

	t.Run("disabled registration", func(t *testing.T) {
		r := setupRouter(t, false)
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerBody())
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		r := setupRouter(t, true)
		registerAndGetToken(t, r)
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", registerBody())
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r := setupRouter(t, true)
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"name": "x"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestLogin(t *testing.T) {
	r := setupRouter(t, true)
	registerAndGetToken(t, r)

	t.Run("valid credentials", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "admin@sumon.example",
			"password": "correct horse battery",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var res admin.AuthResponse
		if err := json.Unmarshal(env.Data, &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.Token == "" {
			t.Error("expected a token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "admin@sumon.example",
			"password": "wrong",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestMe(t *testing.T) {
	r := setupRouter(t, true)
	token := registerAndGetToken(t, r)

	t.Run("with token", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var info admin.AdminInfo
		if err := json.Unmarshal(env.Data, &info); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if info.Email != "admin@sumon.example" {
			t.Errorf("email = %q", info.Email)
		}
	})

	t.Run("without token", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/auth/me", "garbage", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestLogout(t *testing.T) {
	r := setupRouter(t, true)
	token := registerAndGetToken(t, r)

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Message != "Logged out successfully" {
		t.Errorf("message = %q", env.Message)
	}
}
