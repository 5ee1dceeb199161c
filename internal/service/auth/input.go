package auth

import (
	"strings"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// RegisterInput holds the parameters for creating an account.
type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if len(email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "max 254 characters"})
	}

	username := strings.TrimSpace(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if len(username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 150 characters"})
	}

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if len(i.Password) > 128 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 128 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the credentials for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
