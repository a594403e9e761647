// internal/repository/postgres/inquiry_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sumon-service/internal/domain/inquiry"
	xerrors "sumon-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db}
}

const inquiryColumns = `
	id, name, email, phone, subject, message, status,
	ip_address, user_agent, read_at, created_at, updated_at
`

// Create persists a new inquiry with status unread
func (r *InquiryRepository) Create(ctx context.Context, i *inquiry.Inquiry) error {
	query := `
		INSERT INTO inquiries (name, email, phone, subject, message, status, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		i.Name, i.Email, i.Phone, i.Subject, i.Message, i.Status,
		nullIfEmpty(i.IPAddress), nullIfEmpty(i.UserAgent),
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// FindByID retrieves an inquiry by ID
func (r *InquiryRepository) FindByID(ctx context.Context, id int64) (*inquiry.Inquiry, error) {
	query := fmt.Sprintf(`SELECT %s FROM inquiries WHERE id = $1`, inquiryColumns)

	i, err := scanInquiry(r.db.QueryRow(ctx, query, id).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}
	return i, nil
}

// List retrieves inquiries newest-first with offset pagination
func (r *InquiryRepository) List(ctx context.Context, filters *inquiry.ListFilters) ([]inquiry.Inquiry, int64, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filters.Status)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inquiries WHERE %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	offset := (filters.Page - 1) * filters.Limit

	query := fmt.Sprintf(`
		SELECT %s FROM inquiries
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, inquiryColumns, whereClause, argPos, argPos+1)

	args = append(args, filters.Limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []inquiry.Inquiry{}
	for rows.Next() {
		i, err := scanInquiry(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read inquiries: %w", err)
	}

	return inquiries, total, nil
}

// UpdateStatus atomically sets the status; read_at is stamped exactly once,
// the first time the status becomes "read".
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int64, status string) (*inquiry.Inquiry, error) {
	query := fmt.Sprintf(`
		UPDATE inquiries SET
			status = $2,
			read_at = CASE WHEN $2 = 'read' THEN COALESCE(read_at, now()) ELSE read_at END,
			updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, inquiryColumns)

	i, err := scanInquiry(r.db.QueryRow(ctx, query, id, status).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return i, nil
}

// Delete removes an inquiry row
func (r *InquiryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Stats aggregates counts per triage status in one query
func (r *InquiryRepository) Stats(ctx context.Context) (*inquiry.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'unread') AS unread,
			COUNT(*) FILTER (WHERE status = 'read') AS read,
			COUNT(*) FILTER (WHERE status = 'replied') AS replied
		FROM inquiries
	`

	var s inquiry.Stats
	err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Unread, &s.Read, &s.Replied)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate inquiry stats: %w", err)
	}
	return &s, nil
}

// --- row mapping ---

func scanInquiry(scan func(dest ...interface{}) error) (*inquiry.Inquiry, error) {
	var (
		i         inquiry.Inquiry
		ipAddress sql.NullString
		userAgent sql.NullString
	)

	err := scan(
		&i.ID, &i.Name, &i.Email, &i.Phone, &i.Subject, &i.Message, &i.Status,
		&ipAddress, &userAgent, &i.ReadAt, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	i.IPAddress = ipAddress.String
	i.UserAgent = userAgent.String
	return &i, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
