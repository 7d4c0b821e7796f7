package user

import (
	"fmt"
	"strings"
)

const (
	MinNameLen     = 2
	MaxNameLen     = 64
	MinPasswordLen = 8
)

// Validator - interfață pentru validarea datelor de utilizator.
type Validator interface {
	ValidateRegister(req RegisterRequest) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type RequestValidator struct{}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// ValidateRegister validează datele pentru înregistrare.
func (v *RequestValidator) ValidateRegister(req RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	if len(name) < MinNameLen {
		return fmt.Errorf("numele trebuie să aibă cel puțin %d caractere", MinNameLen)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("numele trebuie să aibă cel mult %d caractere", MaxNameLen)
	}

	if err := v.ValidateEmail(req.Email); err != nil {
		return err
	}

	return v.ValidatePassword(req.Password)
}

// ValidateEmail validează forma adresei de email.
func (v *RequestValidator) ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("adresa de email nu este validă")
	}
	if !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("adresa de email nu este validă")
	}
	return nil
}

// ValidatePassword validează parola.
func (v *RequestValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("parola trebuie să conțină minim %d caractere", MinPasswordLen)
	}
	return nil
}
