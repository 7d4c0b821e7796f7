// cmd/client/cmd/plans/plans.go
package plans

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"convertor/cmd/client/cmd/types"
	"convertor/internal/domain/plan"
)

var PlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Planurile de abonament",
	Long: `Afișează planurile disponibile și planul activ al contului.

Schimbă planul cu: convertor plans select <planid>`,
	PreRunE: types.RequireAuth,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		list, err := app.Plans(cmd.Context())
		if err != nil {
			return err
		}

		current := 0
		if u, err := app.CurrentUser(); err == nil {
			current = u.PlanID
		}

		fmt.Println("=== Alege un Plan ===")
		fmt.Println("Crește-ți limitele de conversie")
		fmt.Println()
		Render(os.Stdout, list, current)
		fmt.Println("Alege un plan cu: convertor plans select <planid>")

		return nil
	},
}

// Render afișează lista planurilor, marcând planul activ.
func Render(w io.Writer, list []plan.Plan, currentPlanID int) {
	for _, p := range list {
		marker := ""
		if p.PlanID == currentPlanID {
			marker = "  " + color.GreenString("[Activ]")
		}

		fmt.Fprintf(w, "[%d] %s - %.2f RON / lună%s\n", p.PlanID, p.PlanName, p.Price, marker)
		fmt.Fprintf(w, "    %d conversii / zi, imagini până la %.0f MB\n", p.MaxConversionsPerDay, p.MaxFileSize)
		fmt.Fprintln(w)
	}
}
