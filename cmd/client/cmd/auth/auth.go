package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - comanda părinte pentru operațiile cu contul.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Gestionarea contului",
	Long:  `Autentificare, înregistrare și deconectare.`,
}
