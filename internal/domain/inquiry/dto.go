// internal/domain/inquiry/dto.go
package inquiry

// CreateInquiryInput is the public contact-form payload.
type CreateInquiryInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// RequestMeta carries per-request client details recorded with an inquiry.
type RequestMeta struct {
	IP        string
	UserAgent string
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=unread read replied"`
}

type ListFilters struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type ListResponse struct {
	Items []Inquiry `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Pages int       `json:"pages"`
}

// Stats holds the per-status aggregate counts.
type Stats struct {
	Total   int64 `json:"total"`
	Unread  int64 `json:"unread"`
	Read    int64 `json:"read"`
	Replied int64 `json:"replied"`
}
