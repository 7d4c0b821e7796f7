// cmd/client/cmd/profile/profile.go
package profile

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"convertor/cmd/client/cmd/types"
	"convertor/internal/app/client"
)

var ProfileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Detaliile contului și utilizarea zilnică",
	PreRunE: types.RequireAuth,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		u, info, err := app.Profile(cmd.Context())
		if errors.Is(err, client.ErrProfileNotFound) {
			// Stare de afișare, nu avarie.
			fmt.Println("Nu s-a găsit utilizatorul sau datele de conversie.")
			return nil
		}
		if err != nil {
			return err
		}

		color.New(color.Bold).Printf("%s\n", u.Name)
		fmt.Println(u.Email)
		if u.Plans != nil {
			fmt.Printf("Plan %s\n", u.Plans.PlanName)
		}
		fmt.Println()

		fmt.Println("DETALII CONT")
		fmt.Printf("  Conversii efectuate azi:    %d\n", info.DailyUsage)
		fmt.Printf("  Conversii rămase azi:       %d\n", info.RemainingConversions)
		fmt.Printf("  Limită conversii / zi:      %d\n", info.MaxConversions)
		fmt.Printf("  Dimensiune maximă imagine:  %.0f MB\n", info.MaxFileSize)

		return nil
	},
}
