// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"convertor/cmd/client/cmd/types"
	"convertor/internal/app/client"
	"convertor/internal/app/client/config"
	"convertor/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "convertor",
	Short: "Convertor Imagini - client pentru serviciul de conversie a imaginilor",
	Long: `Convertor Imagini este clientul serviciului de conversie a imaginilor:
autentificare, alegerea unui plan de abonament, conversia imaginilor în alt
format și statistici de utilizare a contului.

Conversia propriu-zisă are loc pe server; clientul trimite cererea și
contorizează utilizarea conform planului activ.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Eroare: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	// Flagurile din linia de comandă au prioritate.
	if serverURL != "" {
		cfg.APIURL = serverURL
	}
	if debug {
		cfg.LogLevel = "debug"
		cfg.Env = config.EnvLocal
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("eroare la inițializarea aplicației: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "activează modul de depanare")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL-ul de bază al API-ului")

	// Comenzile sunt adăugate în init() din cmd/client/cmd/init.go.
}
