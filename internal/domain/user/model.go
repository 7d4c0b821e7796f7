package user

import "convertor/internal/domain/plan"

// User - înregistrarea utilizatorului autentificat. Forma JSON urmează exact
// contractul backend-ului (chei lowercase, fără separatoare).
type User struct {
	UserID int    `json:"userid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	PlanID int    `json:"planid"`

	// Plans este populat doar de GET /users/{userid}: planul activ, inclus
	// în răspuns de backend.
	Plans *plan.Plan `json:"plans,omitempty"`
}

// LoginRequest - corpul pentru POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest - corpul pentru POST /users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
