// cmd/client/cmd/plans/select.go
package plans

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"convertor/cmd/client/cmd/types"
)

var SelectCmd = &cobra.Command{
	Use:     "select <planid>",
	Short:   "Schimbă planul de abonament",
	Args:    cobra.ExactArgs(1),
	PreRunE: types.RequireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		planID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("planid nevalid: %s", args[0])
		}

		changed, err := app.ChangePlan(cmd.Context(), planID)
		if err != nil {
			return err
		}

		if !changed {
			fmt.Println("Acesta este deja planul tău curent.")
			return nil
		}

		color.Green("Planul a fost actualizat cu succes.")
		return nil
	},
}
