// internal/handlers/project/project_handler_test.go
package project

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sumon-service/internal/domain/project"
	xerrors "sumon-service/internal/pkg/errors"
	service "sumon-service/internal/service/project"
	"sumon-service/internal/storage"
)

type fakeRepo struct {
	nextID int64
	items  map[int64]*project.Project
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[int64]*project.Project{}}
}

func (r *fakeRepo) Create(ctx context.Context, p *project.Project) error {
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) FindBySlug(ctx context.Context, slug string) (*project.Project, error) {
	for _, p := range r.items {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (r *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range r.items {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) List(ctx context.Context, filters *project.ListFilters) ([]project.Project, int64, error) {
	out := []project.Project{}
	for _, p := range r.items {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeRepo) ListFeatured(ctx context.Context, limit int) ([]project.Project, error) {
	out := []project.Project{}
	for _, p := range r.items {
		if p.Featured {
			out = append(out, *p)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, p *project.Project) error {
	if _, ok := r.items[p.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeStore struct {
	nextKey int
	stored  map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{stored: map[string]bool{}}
}

func (s *fakeStore) Save(ctx context.Context, up storage.Upload) (*storage.StoredImage, error) {
	s.nextKey++
	key := fmt.Sprintf("img-%d", s.nextKey)
	s.stored[key] = true
	return &storage.StoredImage{URL: "/uploads/" + key, Key: key}, nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	delete(s.stored, key)
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
		Errors     []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"error"`
}

func setupRouter(repo *fakeRepo, store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProjectHandler(service.NewProjectService(repo, store, zap.NewNop()))

	r := gin.New()
	r.GET("/api/projects", h.ListProjects)
	r.GET("/api/projects/featured", h.FeaturedProjects)
	r.GET("/api/projects/slug/:slug", h.GetProjectBySlug)
	r.GET("/api/projects/:id", h.GetProject)
	r.POST("/api/projects", h.CreateProject)
	r.PUT("/api/projects/:id", h.UpdateProject)
	r.DELETE("/api/projects/:id", h.DeleteProject)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return env
}

func multipartBody(t *testing.T, fields map[string]string, imageNames []string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, name := range imageNames {
		fw, err := mw.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func dottedFields() map[string]string {
	return map[string]string{
		"projectName":          "Lake View Residence",
		"company":              "M/S SUMON ENTERPRISE",
		"description":          "A twelve storey residential tower by the lake.",
		"address.plot":         "12",
		"address.road":         "7",
		"address.area":         "Uttara",
		"address.city":         "Dhaka",
		"status":               "Ongoing",
		"startDate":            "2024-03-01",
		"specifications.floors": "12",
		"featured":             "true",
	}
}

func TestCreateProjectMultipart(t *testing.T) {
	t.Run("dotted field names", func(t *testing.T) {
		r := setupRouter(newFakeRepo(), newFakeStore())

		body, contentType := multipartBody(t, dottedFields(), []string{"a.jpg", "b.jpg"})
		req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		env := decode(t, w)

		var created project.Project
		if err := json.Unmarshal(env.Data, &created); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if created.Address.Plot != "12" || created.Address.City != "Dhaka" {
			t.Errorf("address = %+v", created.Address)
		}
		if created.Specifications.Floors != "12" {
			t.Errorf("specifications = %+v", created.Specifications)
		}
		if !created.Featured {
			t.Error("featured flag lost")
		}
		if len(created.Images) != 2 || !created.Images[0].IsPrimary {
			t.Errorf("images = %+v", created.Images)
		}
		if created.Slug != "lake-view-residence-m-s-sumon-enterprise" {
			t.Errorf("slug = %q", created.Slug)
		}
	})

	t.Run("flat field names work too", func(t *testing.T) {
		r := setupRouter(newFakeRepo(), newFakeStore())

		fields := map[string]string{
			"project_name": "Sky Garden Tower",
			"company":      "M/S SUMON ENTERPRISE",
			"description":  "A commercial complex in the heart of the city.",
			"area":         "Motijheel",
			"city":         "Dhaka",
			"status":       "Finished",
			"start_date":   "2020-01-15",
			"finish_date":  "2023-11-30",
			"longitude":    "90.4175",
			"latitude":     "23.7331",
		}
		body, contentType := multipartBody(t, fields, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		env := decode(t, w)

		var created project.Project
		if err := json.Unmarshal(env.Data, &created); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		coords := []float64(created.Location.Coordinates)
		if len(coords) != 2 || coords[0] != 90.4175 || coords[1] != 23.7331 {
			t.Errorf("coordinates = %v", coords)
		}
		if created.FinishDate == nil {
			t.Error("finish date lost")
		}
	})

	t.Run("missing required fields report per-field errors", func(t *testing.T) {
		r := setupRouter(newFakeRepo(), newFakeStore())

		body, contentType := multipartBody(t, map[string]string{"company": "X"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		env := decode(t, w)
		if env.Error == nil || len(env.Error.Errors) == 0 {
			t.Fatalf("expected field errors, got %+v", env.Error)
		}
	})

	t.Run("more than ten images rejected", func(t *testing.T) {
		store := newFakeStore()
		r := setupRouter(newFakeRepo(), store)

		names := make([]string, 11)
		for i := range names {
			names[i] = fmt.Sprintf("img-%d.jpg", i)
		}
		body, contentType := multipartBody(t, dottedFields(), names)
		req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		env := decode(t, w)
		if env.Error == nil || !strings.Contains(env.Error.Message, "Maximum 10 images") {
			t.Errorf("error = %+v", env.Error)
		}
		if len(store.stored) != 0 {
			t.Error("blobs stored for a rejected request")
		}
	})
}

func TestCreateProjectJSON(t *testing.T) {
	r := setupRouter(newFakeRepo(), newFakeStore())

	payload := map[string]interface{}{
		"project_name": "Lake View Residence",
		"company":      "M/S SUMON ENTERPRISE",
		"description":  "A twelve storey residential tower by the lake.",
		"area":         "Uttara",
		"city":         "Dhaka",
		"status":       "Ongoing",
		"start_date":   "2024-03-01",
		"coordinates":  []float64{90.39, 23.75},
	}
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestGetProject(t *testing.T) {
	repo := newFakeRepo()
	r := setupRouter(repo, newFakeStore())

	body, contentType := multipartBody(t, dottedFields(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed create failed: %s", w.Body.String())
	}

	t.Run("by id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/projects/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("by slug", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/projects/slug/lake-view-residence-m-s-sumon-enterprise", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/projects/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/projects/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestDeleteProject(t *testing.T) {
	repo := newFakeRepo()
	store := newFakeStore()
	r := setupRouter(repo, store)

	body, contentType := multipartBody(t, dottedFields(), []string{"a.jpg"})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed create failed: %s", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/projects/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(store.stored) != 0 {
		t.Errorf("%d blobs left behind", len(store.stored))
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/projects/999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}
