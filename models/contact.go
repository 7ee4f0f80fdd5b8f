package models

import (
	"errors"
	"strings"
)

// ContactMessage is a contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is required")
	}
	if email := strings.TrimSpace(m.Email); email == "" || !strings.Contains(email, "@") {
		return errors.New("a valid email is required")
	}
	if strings.TrimSpace(m.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}
