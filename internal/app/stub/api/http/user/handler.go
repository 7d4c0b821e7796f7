// Package user - operațiile HTTP pe utilizatori ale serverului de dezvoltare.
package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"convertor/internal/app/stub/store"
	"convertor/internal/domain/user"
)

type Handler struct {
	store      *store.Store
	validator  user.Validator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(st *store.Store, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      st,
		validator:  user.NewRequestValidator(),
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updatePlanOp(), h.updatePlan)
}

func (h *Handler) login(_ context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.store.Authenticate(input.Body.Email, input.Body.Password)
	if err != nil {
		return &loginOutput{
			Status: http.StatusUnauthorized,
			Body:   UserResponse{Error: "Email sau parolă incorectă."},
		}, nil
	}

	return &loginOutput{Status: http.StatusOK, Body: toResponse(u)}, nil
}

func (h *Handler) register(_ context.Context, input *registerInput) (*registerOutput, error) {
	if err := h.validator.ValidateRegister(input.Body); err != nil {
		return &registerOutput{
			Status: http.StatusBadRequest,
			Body:   UserResponse{Error: err.Error()},
		}, nil
	}

	u, err := h.store.CreateUser(input.Body.Name, input.Body.Email, input.Body.Password)
	if errors.Is(err, store.ErrEmailTaken) {
		return &registerOutput{
			Status: http.StatusConflict,
			Body:   UserResponse{Error: "Există deja un cont cu acest email."},
		}, nil
	}
	if err != nil {
		h.log.Error("înregistrare eșuată", slog.String("error", err.Error()))
		return &registerOutput{
			Status: http.StatusInternalServerError,
			Body:   UserResponse{Error: "Eroare internă."},
		}, nil
	}

	return &registerOutput{Status: http.StatusCreated, Body: toResponse(u)}, nil
}

func (h *Handler) get(_ context.Context, input *getInput) (*getOutput, error) {
	u, err := h.store.GetUser(input.UserID)
	if err != nil {
		return &getOutput{
			Status: http.StatusNotFound,
			Body:   UserResponse{Error: "Utilizatorul nu a fost găsit."},
		}, nil
	}

	return &getOutput{Status: http.StatusOK, Body: toResponse(u)}, nil
}

func (h *Handler) updatePlan(_ context.Context, input *updatePlanInput) (*updatePlanOutput, error) {
	u, err := h.store.UpdateUserPlan(input.UserID, input.Body.PlanID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return &updatePlanOutput{
			Status: http.StatusNotFound,
			Body:   UserResponse{Error: "Utilizatorul nu a fost găsit."},
		}, nil
	case errors.Is(err, store.ErrPlanNotFound):
		return &updatePlanOutput{
			Status: http.StatusNotFound,
			Body:   UserResponse{Error: "Planul nu a fost găsit."},
		}, nil
	case err != nil:
		h.log.Error("actualizarea planului a eșuat", slog.String("error", err.Error()))
		return &updatePlanOutput{
			Status: http.StatusInternalServerError,
			Body:   UserResponse{Error: "Eroare internă."},
		}, nil
	}

	return &updatePlanOutput{Status: http.StatusOK, Body: toResponse(u)}, nil
}
