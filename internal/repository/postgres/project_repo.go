// internal/repository/postgres/project_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sumon-service/internal/domain/project"
	xerrors "sumon-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id, project_name, company, description, address, location_coordinates,
	status, start_date, finish_date, images, specifications, slug, featured,
	created_at, updated_at
`

// Create persists a new project
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	addressJSON, specsJSON, imagesJSON, err := marshalProjectDocs(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (
			project_name, company, description, address, location_coordinates,
			status, start_date, finish_date, images, specifications, slug, featured
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(
		ctx, query,
		p.ProjectName, p.Company, p.Description, addressJSON, p.Location.Coordinates,
		p.Status, p.StartDate, p.FinishDate, imagesJSON, specsJSON, p.Slug, p.Featured,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return xerrors.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// FindByID retrieves a project by ID
func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)
	return r.findOne(ctx, query, id)
}

// FindBySlug retrieves a project by its slug
func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE slug = $1`, projectColumns)
	return r.findOne(ctx, query, slug)
}

func (r *ProjectRepository) findOne(ctx context.Context, query string, arg interface{}) (*project.Project, error) {
	row := r.db.QueryRow(ctx, query, arg)
	p, err := scanProject(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return p, nil
}

// SlugExists checks whether a slug is already taken
func (r *ProjectRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM projects WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

// sortColumns whitelists client sort keys onto real columns.
var sortColumns = map[string]string{
	"startDate":   "start_date",
	"createdAt":   "created_at",
	"projectName": "project_name",
	"company":     "company",
}

// List retrieves projects matching the filters with offset pagination.
// Sort accepts a whitelisted field name, "-" prefix for descending;
// anything else falls back to the default, start_date descending.
func (r *ProjectRepository) List(ctx context.Context, filters *project.ListFilters) ([]project.Project, int64, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filters.Status)
		argPos++
	}

	if filters.Company != "" {
		conditions = append(conditions, fmt.Sprintf("company ILIKE $%d", argPos))
		args = append(args, "%"+filters.Company+"%")
		argPos++
	}

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(project_name ILIKE $%d OR description ILIKE $%d OR company ILIKE $%d)",
			argPos, argPos, argPos,
		))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM projects WHERE %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	// Sorting
	sortKey := filters.Sort
	direction := "ASC"
	if sortKey == "" {
		sortKey = "-startDate"
	}
	if strings.HasPrefix(sortKey, "-") {
		sortKey = strings.TrimPrefix(sortKey, "-")
		direction = "DESC"
	}
	column, ok := sortColumns[sortKey]
	if !ok {
		column, direction = "start_date", "DESC"
	}

	offset := (filters.Page - 1) * filters.Limit

	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, projectColumns, whereClause, column, direction, argPos, argPos+1)

	args = append(args, filters.Limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, total, nil
}

// ListFeatured retrieves the most recent featured projects
func (r *ProjectRepository) ListFeatured(ctx context.Context, limit int) ([]project.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE featured = TRUE
		ORDER BY start_date DESC
		LIMIT $1
	`, projectColumns)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// Update overwrites the full project row in a single atomic statement.
// Concurrent updates are last-write-wins.
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	addressJSON, specsJSON, imagesJSON, err := marshalProjectDocs(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE projects SET
			project_name = $2, company = $3, description = $4, address = $5,
			location_coordinates = $6, status = $7, start_date = $8, finish_date = $9,
			images = $10, specifications = $11, slug = $12, featured = $13,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err = r.db.QueryRow(
		ctx, query,
		p.ID, p.ProjectName, p.Company, p.Description, addressJSON,
		p.Location.Coordinates, p.Status, p.StartDate, p.FinishDate,
		imagesJSON, specsJSON, p.Slug, p.Featured,
	).Scan(&p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.ErrNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return xerrors.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// Delete removes a project row
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// --- row mapping ---

func marshalProjectDocs(p *project.Project) (address, specs, images []byte, err error) {
	if address, err = json.Marshal(p.Address); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal address: %w", err)
	}
	if specs, err = json.Marshal(p.Specifications); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal specifications: %w", err)
	}
	imgs := p.Images
	if imgs == nil {
		imgs = []project.Image{}
	}
	if images, err = json.Marshal(imgs); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal images: %w", err)
	}
	return address, specs, images, nil
}

func scanProject(scan func(dest ...interface{}) error) (*project.Project, error) {
	var (
		p           project.Project
		addressJSON []byte
		imagesJSON  []byte
		specsJSON   []byte
		coords      pq.Float64Array
	)

	err := scan(
		&p.ID, &p.ProjectName, &p.Company, &p.Description, &addressJSON, &coords,
		&p.Status, &p.StartDate, &p.FinishDate, &imagesJSON, &specsJSON,
		&p.Slug, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(addressJSON) > 0 {
		if err := json.Unmarshal(addressJSON, &p.Address); err != nil {
			return nil, fmt.Errorf("failed to unmarshal address: %w", err)
		}
	}
	if len(specsJSON) > 0 {
		if err := json.Unmarshal(specsJSON, &p.Specifications); err != nil {
			return nil, fmt.Errorf("failed to unmarshal specifications: %w", err)
		}
	}
	p.Images = []project.Image{}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal images: %w", err)
		}
	}
	p.Location = project.Location{Type: "Point", Coordinates: coords}

	return &p, nil
}
