package conversion

// Status - starea raportată pentru o înregistrare de utilizare.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPending Status = "pending"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
)

// UsageLog - o conversie trimisă backend-ului pentru contorizare. Creată
// tranzitoriu per încercare; nu este persistată pe client după trimitere.
type UsageLog struct {
	UserID         int    `json:"userid"`
	ConversionType string `json:"conversiontype"`
	Status         Status `json:"status"`
	FileSize       int64  `json:"filesize"` // octeți
}

// Info - cota de conversii calculată de server. Clientul nu derivă niciodată
// local aceste valori; le afișează așa cum vin.
type Info struct {
	RemainingConversions int     `json:"remainingConversions"`
	DailyUsage           int     `json:"dailyUsage"`
	MaxConversions       int     `json:"maxConversions"`
	MaxFileSize          float64 `json:"maxFileSize"` // MB
}
