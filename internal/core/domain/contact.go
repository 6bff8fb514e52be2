// internal/core/domain/contact.go
package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContactMessage is write-only through this core: it is inserted on
// submission and only ever read back by the mailbox, not by any
// inventory or catalog operation.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks that all fields are present.
func (m *ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(m.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(m.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
