package plan

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "plan-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/plans",
		Summary:     "Planurile de abonament disponibile",
		Tags:        []string{"plans"},
		Middlewares: h.middleware,
	}
}
