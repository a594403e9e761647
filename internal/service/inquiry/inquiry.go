// internal/service/inquiry/inquiry.go
package inquiry

import (
	"context"
	"math"

	"sumon-service/internal/domain/inquiry"
	xerrors "sumon-service/internal/pkg/errors"
	"sumon-service/internal/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// Repository is the persistence surface the inquiry flows need.
type Repository interface {
	Create(ctx context.Context, i *inquiry.Inquiry) error
	FindByID(ctx context.Context, id int64) (*inquiry.Inquiry, error)
	List(ctx context.Context, filters *inquiry.ListFilters) ([]inquiry.Inquiry, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*inquiry.Inquiry, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*inquiry.Stats, error)
}

// Notifier dispatches the inquiry emails off the request path.
type Notifier interface {
	Dispatch(inq *inquiry.Inquiry)
}

type InquiryService struct {
	repo     Repository
	notifier Notifier
}

func NewInquiryService(repo Repository, notifier Notifier) *InquiryService {
	return &InquiryService{repo: repo, notifier: notifier}
}

// Create validates and stores a contact-form submission, then hands it to
// the notifier. The submission succeeds even when email delivery fails.
func (s *InquiryService) Create(ctx context.Context, in inquiry.CreateInquiryInput, meta inquiry.RequestMeta) (*inquiry.Inquiry, error) {
	validation.NormalizeInquiry(&in)
	if errs := validation.InquiryCreate(&in); errs != nil {
		return nil, errs
	}

	inq := &inquiry.Inquiry{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    inquiry.StatusUnread,
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
	}
	if err := s.repo.Create(ctx, inq); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Dispatch(inq)
	}
	return inq, nil
}

// List returns a page of inquiries, newest first.
func (s *InquiryService) List(ctx context.Context, filters inquiry.ListFilters) (*inquiry.ListResponse, error) {
	if filters.Page < 1 {
		filters.Page = defaultPage
	}
	if filters.Limit < 1 {
		filters.Limit = defaultLimit
	}
	if filters.Limit > maxLimit {
		filters.Limit = maxLimit
	}
	if filters.Status != "" && !inquiry.ValidStatus(filters.Status) {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "Status must be unread, read, or replied")
	}

	items, total, err := s.repo.List(ctx, &filters)
	if err != nil {
		return nil, err
	}
	return &inquiry.ListResponse{
		Items: items,
		Total: total,
		Page:  filters.Page,
		Limit: filters.Limit,
		Pages: int(math.Ceil(float64(total) / float64(filters.Limit))),
	}, nil
}

func (s *InquiryService) GetByID(ctx context.Context, id int64) (*inquiry.Inquiry, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus moves an inquiry between triage states. The first move to
// "read" stamps read_at; later transitions leave the stamp untouched.
func (s *InquiryService) UpdateStatus(ctx context.Context, id int64, in inquiry.UpdateStatusInput) (*inquiry.Inquiry, error) {
	if errs := validation.InquiryStatus(&in); errs != nil {
		return nil, errs
	}
	return s.repo.UpdateStatus(ctx, id, in.Status)
}

func (s *InquiryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *InquiryService) Stats(ctx context.Context) (*inquiry.Stats, error) {
	return s.repo.Stats(ctx)
}
