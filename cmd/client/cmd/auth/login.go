// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"convertor/cmd/client/cmd/types"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Autentifică-te în Convertor Imagini",
	Long: `Autentificare pe serverul Convertor Imagini.

După autentificare, sesiunea este salvată local pentru comenzile următoare.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Autentificare ===")
		fmt.Println()

		fmt.Print("Adresă de email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Parolă: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("eroare la citirea parolei: %w", err)
		}
		fmt.Println()

		fmt.Println("Autentificare...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		u, err := app.Login(ctx, email, string(password))
		if err != nil {
			return fmt.Errorf("autentificare eșuată: %w", err)
		}

		fmt.Println()
		color.Green("✅ Autentificare reușită! Bun venit, %s.", u.Name)
		fmt.Println("Convertește o imagine: convertor convert <fișier>")

		return nil
	},
}
