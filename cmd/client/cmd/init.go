// cmd/client/cmd/init.go
package cmd

import (
	"convertor/cmd/client/cmd/auth"
	"convertor/cmd/client/cmd/convert"
	"convertor/cmd/client/cmd/plans"
	"convertor/cmd/client/cmd/profile"
)

func init() {
	// Comenzile de autentificare.
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	// Comenzile protejate.
	rootCmd.AddCommand(convert.ConvertCmd)
	rootCmd.AddCommand(plans.PlansCmd)
	plans.PlansCmd.AddCommand(plans.SelectCmd)
	rootCmd.AddCommand(profile.ProfileCmd)

	rootCmd.AddCommand(statusCmd)
}
