package user

import (
	"net/mail"
	"strings"
)

const MinPasswordLength = 8

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	t := strings.TrimSpace(strings.ToLower(s))
	if _, err := mail.ParseAddress(t); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: t}, nil
}

func (e Email) Value() string { return e.value }

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }

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
