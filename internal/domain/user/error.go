package user

import "errors"

var (
	ErrNotFound     = errors.New("utilizatorul nu a fost găsit")
	ErrInvalidAuth  = errors.New("email sau parolă incorectă")
	ErrInvalidInput = errors.New("date invalide")
)
