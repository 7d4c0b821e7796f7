package user

import (
	"convertor/internal/domain/plan"
	"convertor/internal/domain/user"
)

type loginInput struct {
	Body user.LoginRequest
}

type loginOutput struct {
	Status int
	Body   UserResponse
}

type registerInput struct {
	Body user.RegisterRequest
}

type registerOutput struct {
	Status int
	Body   UserResponse
}

type getInput struct {
	UserID int `path:"userid" example:"1" doc:"ID-ul utilizatorului"`
}

type getOutput struct {
	Status int
	Body   UserResponse
}

type updatePlanInput struct {
	UserID int `path:"userid" example:"1" doc:"ID-ul utilizatorului"`
	Body   updatePlanRequest
}

type updatePlanRequest struct {
	PlanID int `json:"planid" example:"2" doc:"ID-ul noului plan"`
}

type updatePlanOutput struct {
	Status int
	Body   UserResponse
}

// UserResponse - forma de răspuns a tuturor operațiilor pe utilizatori.
// La eroare doar câmpul error este completat.
type UserResponse struct {
	UserID int        `json:"userid,omitempty"`
	Name   string     `json:"name,omitempty"`
	Email  string     `json:"email,omitempty"`
	PlanID int        `json:"planid,omitempty"`
	Plans  *plan.Plan `json:"plans,omitempty"`
	Error  string     `json:"error,omitempty"`
}

func toResponse(u *user.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		PlanID: u.PlanID,
		Plans:  u.Plans,
	}
}
