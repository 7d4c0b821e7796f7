// Package api - suprafața HTTP a serverului de dezvoltare.
//
// POST /api/v1/users/login               # Autentificare (public)
// POST /api/v1/users                     # Înregistrare (public)
// GET  /api/v1/users/{userid}            # Detalii utilizator
// PUT  /api/v1/users/{userid}            # Schimbarea planului
// GET  /api/v1/plans                     # Lista planurilor
// POST /api/v1/usage                     # Contorizarea unei conversii
// GET  /api/v1/users/{userid}/conversions # Cota zilnică
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"convertor/internal/app/stub/api/http/middleware"
	"convertor/internal/app/stub/api/http/middleware/logger"
	planAPI "convertor/internal/app/stub/api/http/plan"
	usageAPI "convertor/internal/app/stub/api/http/usage"
	userAPI "convertor/internal/app/stub/api/http/user"
	"convertor/internal/app/stub/store"
)

type Handlers struct {
	User  *userAPI.Handler
	Plan  *planAPI.Handler
	Usage *usageAPI.Handler
}

// New creează *chi.Mux cu toate operațiile înregistrate prin huma.Register.
func New(st *store.Store, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Convertor Imagini API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(st, log)
	h.User.SetupRoutes(API)
	h.Plan.SetupRoutes(API)
	h.Usage.SetupRoutes(API)

	return mux
}

func handlers(st *store.Store, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(st, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	planHandler := planAPI.NewHandler(st, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	usageHandler := usageAPI.NewHandler(st, log, middlewares.GetAllAndClear())

	return &Handlers{
		User:  userHandler,
		Plan:  planHandler,
		Usage: usageHandler,
	}
}
