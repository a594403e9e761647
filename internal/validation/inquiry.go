// internal/validation/inquiry.go
package validation

import (
	"strings"

	"sumon-service/internal/domain/inquiry"
)

// NormalizeInquiry trims every field and lower-cases the email, in place.
// Runs once, at the boundary, before validation.
func NormalizeInquiry(in *inquiry.CreateInquiryInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
}

// InquiryCreate validates a contact-form submission.
func InquiryCreate(in *inquiry.CreateInquiryInput) Errors {
	return Check(in)
}

// InquiryStatus validates a triage status change.
func InquiryStatus(in *inquiry.UpdateStatusInput) Errors {
	in.Status = strings.TrimSpace(in.Status)
	return Check(in)
}
