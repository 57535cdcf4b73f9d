package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in student",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		user, err := svcs.auth.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if id, ok, _ := svcs.store.ClassroomID(); ok {
			fmt.Println("Classroom:", id)
		}
		return nil
	},
}
