// internal/validation/validation.go
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors aggregates every failed rule for one payload. A request failing any
// rule is rejected entirely; nothing is persisted.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var phoneRe = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors against json field names, not Go struct fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	// Accepts a plain date or a full RFC 3339 timestamp.
	v.RegisterValidation("dateish", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// ParseDate parses the date formats the API accepts for start/finish dates.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Check runs struct validation and translates every failure into a FieldError.
// Returns nil when the payload is valid.
func Check(payload interface{}) Errors {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "", Message: err.Error()}}
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

var fieldLabels = map[string]string{
	"name":         "Name",
	"email":        "Email",
	"phone":        "Phone number",
	"subject":      "Subject",
	"message":      "Message",
	"project_name": "Project name",
	"company":      "Company name",
	"description":  "Description",
	"area":         "Area",
	"city":         "City",
	"status":       "Status",
	"start_date":   "Start date",
	"finish_date":  "Finish date",
	"password":     "Password",
}

func messageFor(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", label, fe.Param())
	case "email":
		return "Please provide a valid email address"
	case "phone":
		return "Please provide a valid phone number"
	case "oneof":
		if strings.Contains(fe.Param(), "unread") {
			return "Status must be unread, read, or replied"
		}
		return "Status must be either Ongoing or Finished"
	case "dateish":
		return fmt.Sprintf("Invalid %s format", strings.ToLower(label))
	}
	return label + " is invalid"
}
