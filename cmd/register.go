package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerName string

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		user, err := svcs.auth.Register(cmd.Context(), args[0], password, registerName)
		if err != nil {
			return err
		}
		fmt.Printf("Welcome, %s! You are signed in.\n", user.Name)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name for the new account")
}
