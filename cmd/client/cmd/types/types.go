// Package types leagă comenzile de aplicația construită la pornire.
package types

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"convertor/internal/app/client"
)

type ctxKey string

// ClientAppKey - cheia sub care rootCmd pune *client.App în context.
const ClientAppKey ctxKey = "app"

// App extrage aplicația din contextul comenzii.
func App(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("aplicația nu este inițializată")
	}
	return app, nil
}

// RequireAuth - garda de rută a comenzilor protejate: verifică sincron
// prezența sesiunii la fiecare invocare, fără memorarea deciziei.
func RequireAuth(cmd *cobra.Command, _ []string) error {
	app, err := App(cmd.Context())
	if err != nil {
		return err
	}

	if !app.IsAuthenticated() {
		return fmt.Errorf("trebuie să fii autentificat. Execută: convertor auth login")
	}

	return nil
}
