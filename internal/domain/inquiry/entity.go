// internal/domain/inquiry/entity.go
package inquiry

import "time"

const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

type Inquiry struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email" db:"email"`
	Phone     string     `json:"phone" db:"phone"`
	Subject   string     `json:"subject" db:"subject"`
	Message   string     `json:"message" db:"message"`
	Status    string     `json:"status" db:"status"`
	IPAddress string     `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent string     `json:"user_agent,omitempty" db:"user_agent"`
	ReadAt    *time.Time `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// ValidStatus reports whether s is one of the three triage states.
func ValidStatus(s string) bool {
	switch s {
	case StatusUnread, StatusRead, StatusReplied:
		return true
	}
	return false
}
