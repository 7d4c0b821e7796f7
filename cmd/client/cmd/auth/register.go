// cmd/client/cmd/auth/register.go
package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"convertor/cmd/client/cmd/types"
	"convertor/internal/domain/user"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Creează un cont nou",
	Long: `Înregistrarea unui cont nou pe serverul Convertor Imagini.

Contul nou primește planul gratuit; planul poate fi schimbat oricând cu
"convertor plans select".`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Creează cont ===")
		fmt.Println()

		var name string
		fmt.Print("Nume: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			name = scanner.Text()
		}

		fmt.Print("Adresă de email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Parolă: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("eroare la citirea parolei: %w", err)
		}
		fmt.Println()

		fmt.Print("Repetă parola: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("eroare la citirea parolei: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("parolele nu coincid")
		}

		fmt.Println("Înregistrare...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		u, err := app.Register(ctx, user.RegisterRequest{
			Name:     name,
			Email:    email,
			Password: string(password),
		})
		if err != nil {
			return fmt.Errorf("înregistrare eșuată: %w", err)
		}

		fmt.Println()
		color.Green("✅ Contul a fost creat! Bun venit, %s.", u.Name)
		fmt.Println("Convertește prima imagine: convertor convert <fișier>")

		return nil
	},
}
