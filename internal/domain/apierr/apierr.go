// Package apierr definește erorile normalizate ale API-ului. Orice răspuns
// HTTP eșuat este adus la aceeași formă: un mesaj pentru utilizator și,
// opțional, un cod mașină care identifică limita depășită.
package apierr

// Code - codul mașină al unei erori de API.
type Code string

const (
	CodeNone    Code = ""
	CodeUnknown Code = "UNKNOWN"

	CodeDailyLimitExceeded Code = "DAILY_LIMIT_EXCEEDED"
	CodeFileSizeExceeded   Code = "FILE_SIZE_EXCEEDED"
)

// GenericMessage - mesajul afișat când serverul nu oferă unul utilizabil.
const GenericMessage = "A apărut o eroare neașteptată."

// ParseCode interpretează codul brut primit de la server. Codurile
// nerecunoscute devin CodeUnknown, absența codului devine CodeNone.
func ParseCode(raw string) Code {
	switch Code(raw) {
	case CodeNone:
		return CodeNone
	case CodeDailyLimitExceeded:
		return CodeDailyLimitExceeded
	case CodeFileSizeExceeded:
		return CodeFileSizeExceeded
	default:
		return CodeUnknown
	}
}

// IsLimit spune dacă eroarea reprezintă o limită a planului. Aceste erori
// declanșează propunerea de upgrade, nu ecranul generic de eșec.
func (c Code) IsLimit() bool {
	return c == CodeDailyLimitExceeded || c == CodeFileSizeExceeded
}

// Error - eroare de API cu mesaj, cod și statusul HTTP original.
type Error struct {
	Message string
	Code    Code
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}
