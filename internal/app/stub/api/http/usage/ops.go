package usage

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) submitOp() huma.Operation {
	return huma.Operation{
		OperationID: "usage-submit",
		Method:      http.MethodPost,
		Path:        "/api/v1/usage",
		Summary:     "Înregistrarea unei conversii",
		Tags:        []string{"usage"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) infoOp() huma.Operation {
	return huma.Operation{
		OperationID: "usage-info",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{userid}/conversions",
		Summary:     "Utilizarea zilnică și limitele planului",
		Tags:        []string{"usage"},
		Middlewares: h.middleware,
	}
}
