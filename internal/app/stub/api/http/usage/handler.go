// Package usage - contorizarea conversiilor în serverul de dezvoltare.
// Limitele planului se aplică aici; clientul doar afișează verdictul.
package usage

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"convertor/internal/app/stub/store"
	"convertor/internal/domain/apierr"
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
	huma.Register(api, h.submitOp(), h.submit)
	huma.Register(api, h.infoOp(), h.info)
}

func (h *Handler) submit(_ context.Context, input *submitInput) (*submitOutput, error) {
	err := h.store.RecordUsage(input.Body)
	switch {
	case errors.Is(err, store.ErrDailyLimit):
		return &submitOutput{
			Status: http.StatusTooManyRequests,
			Body: SubmitResponse{
				Error:     "Limita zilnică a fost atinsă",
				ErrorCode: string(apierr.CodeDailyLimitExceeded),
			},
		}, nil
	case errors.Is(err, store.ErrFileSize):
		return &submitOutput{
			Status: http.StatusRequestEntityTooLarge,
			Body: SubmitResponse{
				Error:     "Fișierul depășește dimensiunea maximă permisă de planul tău",
				ErrorCode: string(apierr.CodeFileSizeExceeded),
			},
		}, nil
	case errors.Is(err, store.ErrUserNotFound):
		return &submitOutput{
			Status: http.StatusNotFound,
			Body:   SubmitResponse{Error: "Utilizatorul nu a fost găsit."},
		}, nil
	case err != nil:
		h.log.Error("contorizarea conversiei a eșuat", slog.String("error", err.Error()))
		return &submitOutput{
			Status: http.StatusInternalServerError,
			Body:   SubmitResponse{Error: "Eroare internă."},
		}, nil
	}

	return &submitOutput{
		Status: http.StatusCreated,
		Body:   SubmitResponse{Message: "Conversia a fost înregistrată."},
	}, nil
}

func (h *Handler) info(_ context.Context, input *infoInput) (*infoOutput, error) {
	info, err := h.store.ConversionInfo(input.UserID)
	if err != nil {
		return &infoOutput{
			Status: http.StatusNotFound,
			Body:   InfoResponse{Error: "Utilizatorul nu a fost găsit."},
		}, nil
	}

	return &infoOutput{
		Status: http.StatusOK,
		Body: InfoResponse{
			RemainingConversions: info.RemainingConversions,
			DailyUsage:           info.DailyUsage,
			MaxConversions:       info.MaxConversions,
			MaxFileSize:          info.MaxFileSize,
		},
	}, nil
}
