package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"room-reservation/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.NewKind("invalid email format", errs.ErrValidation)
	ErrInvalidRole     = errs.NewKind("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak = errs.NewKind("password must be at least 8 characters long", errs.ErrValidation)
	ErrInvalidName     = errs.NewKind("name must be between 1 and 100 characters", errs.ErrValidation)
	ErrEmptyPassword   = errs.NewKind("password is required", errs.ErrValidation)
)

const MaxNameLength = 100

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail normalizes to lower case; uniqueness is case-insensitive.
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

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// Credentials is a login attempt. The password is not length-checked so that
// accounts created under older rules can still sign in.
type Credentials struct {
	email    Email
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{email: e, password: password}, nil
}

func (c Credentials) Email() Email     { return c.email }
func (c Credentials) Password() string { return c.password }
