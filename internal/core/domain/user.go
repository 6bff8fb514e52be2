// internal/core/domain/user.go
package domain

import (
	"fmt"
	"strings"
	"time"
)

// User represents a seller principal. The password is only ever stored
// as a bcrypt hash; the clear form never leaves the accounts service.
type User struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	BusinessName  string    `json:"business_name,omitempty"`
	Forename      string    `json:"forename,omitempty"`
	Surname       string    `json:"surname,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks the fields required before a user can be persisted.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("email is malformed")
	}
	return nil
}
