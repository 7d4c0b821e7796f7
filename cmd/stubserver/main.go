// Serverul de dezvoltare: o implementare în memorie a API-ului backend,
// suficientă pentru a rula clientul și testele fără backend-ul real.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"convertor/internal/app/stub/api"
	"convertor/internal/app/stub/store"
	"convertor/internal/utils/logger"
)

func main() {
	_ = godotenv.Load()
	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("STUB_PORT", "3000")

	log := logger.New(viper.GetString("APP_ENV"))

	mux := api.New(store.New(), log)

	srv := &http.Server{
		Addr:         ":" + viper.GetString("STUB_PORT"),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("serverul de dezvoltare pornește", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("serverul s-a oprit", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("semnal de oprire primit")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("oprirea forțată a serverului", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("serverul s-a oprit curat")
}
