package usage

import "convertor/internal/domain/conversion"

type submitInput struct {
	Body conversion.UsageLog
}

type submitOutput struct {
	Status int
	Body   SubmitResponse
}

// SubmitResponse - răspunsul la înregistrarea unei conversii. La refuz,
// errorCode identifică limita depășită.
type SubmitResponse struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
}

type infoInput struct {
	UserID int `path:"userid" example:"1" doc:"ID-ul utilizatorului"`
}

type infoOutput struct {
	Status int
	Body   InfoResponse
}

type InfoResponse struct {
	RemainingConversions int     `json:"remainingConversions"`
	DailyUsage           int     `json:"dailyUsage"`
	MaxConversions       int     `json:"maxConversions"`
	MaxFileSize          float64 `json:"maxFileSize"`
	Error                string  `json:"error,omitempty"`
}
