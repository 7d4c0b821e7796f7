package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/api/v1/users/login",
		Summary:     "Autentificarea utilizatorului",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-register",
		Method:      http.MethodPost,
		Path:        "/api/v1/users",
		Summary:     "Înregistrarea unui cont nou",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{userid}",
		Summary:     "Detaliile utilizatorului",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updatePlanOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-update-plan",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/{userid}",
		Summary:     "Schimbarea planului utilizatorului",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}
