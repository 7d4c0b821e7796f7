// Package plan - planurile de abonament ale produsului.
package plan

// Plan descrie un plan de abonament așa cum îl servește API-ul.
// MaxFileSize este exprimat în megaocteți, Price în RON pe lună.
type Plan struct {
	PlanID               int     `json:"planid"`
	PlanName             string  `json:"planname"`
	MaxConversionsPerDay int     `json:"maxconversionsperday"`
	MaxFileSize          float64 `json:"maxfilesize"`
	Price                float64 `json:"price"`
}
