package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"convertor/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Deconectează-te",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Logout(); err != nil {
			return fmt.Errorf("eroare la deconectare: %w", err)
		}

		fmt.Println("Ai fost deconectat.")
		return nil
	},
}
