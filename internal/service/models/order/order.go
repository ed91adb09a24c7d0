package order

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/corray333/order-capture/internal/service/models/orderitem"
	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// maxItemNameLen is the length item names are truncated to.
const maxItemNameLen = 200

// emailChars are the non-alphanumeric characters allowed to remain
// in an email address after sanitizing.
const emailChars = "!#$%&'*+-=?^_`{|}~@.[]"

var validate = validator.New()

// Submission is a captured order form as posted by the client.
type Submission struct {
	OrderCode string
	FullName  string
	Email     string
	Address   string
	Phone     string
	Items     []orderitem.OrderItem
}

// Normalize trims the submitted fields, sanitizes the email and
// truncates item names. Call before Validate.
func (s *Submission) Normalize() {
	s.OrderCode = strings.TrimSpace(s.OrderCode)
	s.FullName = strings.TrimSpace(s.FullName)
	s.Email = sanitizeEmail(strings.TrimSpace(s.Email))
	s.Address = strings.TrimSpace(s.Address)
	s.Phone = strings.TrimSpace(s.Phone)

	for i := range s.Items {
		name := strings.TrimSpace(s.Items[i].Name)
		if name == "" {
			name = "Unknown"
		}
		if utf8.RuneCountInString(name) > maxItemNameLen {
			name = string([]rune(name)[:maxItemNameLen])
		}
		s.Items[i].Name = name
	}
}

// Validate checks the required fields and the email syntax.
// Rejection precedence follows the submission pipeline: missing
// fields first, then a malformed email.
func (s *Submission) Validate() error {
	if s.OrderCode == "" || s.FullName == "" || s.Email == "" || len(s.Items) == 0 {
		return ErrMissingFields
	}

	if err := validate.Var(s.Email, "email"); err != nil {
		return ErrInvalidEmail
	}

	return nil
}

// sanitizeEmail drops every character that cannot appear in an email
// address, keeping letters, digits and the usual local-part symbols.
func sanitizeEmail(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune(emailChars, r):
			return r
		default:
			return -1
		}
	}, s)
}

// Order represents a persisted order row. Rows are append-only: the
// store assigns ID and CreatedAt at insert time and nothing mutates
// them afterwards.
type Order struct {
	ID           int64   `json:"id"`
	OrderCode    string  `json:"order_code"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	ItemsJSON    string  `json:"items_json"`
	Subtotal     float64 `json:"subtotal"`
	TotalWithVAT float64 `json:"total_with_vat"`
	VATRate      float64 `json:"vat_rate"`
	CreatedAt    string  `json:"created_at"`
}
