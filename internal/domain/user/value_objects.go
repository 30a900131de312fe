package user

import (
	"regexp"
	"strings"

	"service-broker/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Wrap(errs.ErrValidation, "invalid email format")
	ErrInvalidRole     = errs.Wrap(errs.ErrValidation, "invalid role")
	ErrPasswordTooWeak = errs.Wrap(errs.ErrValidation, "password must be at least 8 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lower-cases the address so logins are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Credentials is a login attempt.
type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
