package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"convertor/cmd/client/cmd/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Starea sesiunii curente",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Server: %s\n", cfg.APIURL)

		u, err := app.CurrentUser()
		if err != nil {
			fmt.Println("Neautentificat. Execută: convertor auth login")
			return nil
		}

		color.Green("Autentificat ca %s (%s)", u.Name, u.Email)
		fmt.Printf("Plan activ: %d\n", u.PlanID)

		return nil
	},
}
