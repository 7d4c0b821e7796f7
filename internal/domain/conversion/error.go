package conversion

import "errors"

var (
	ErrBusy             = errors.New("o conversie este deja în curs")
	ErrNoFile           = errors.New("niciun fișier selectat")
	ErrFormatNotAllowed = errors.New("format de conversie nepermis")
)
