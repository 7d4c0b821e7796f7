// Package plan - operațiile HTTP pe planuri ale serverului de dezvoltare.
package plan

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"convertor/internal/app/stub/store"
)

type Handler struct {
	store      *store.Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(st *store.Store, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      st,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(_ context.Context, _ *listInput) (*listOutput, error) {
	return &listOutput{Body: h.store.Plans()}, nil
}
