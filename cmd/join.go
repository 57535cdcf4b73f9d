package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var joinCmd = &cobra.Command{
	Use:   "join <class-code>",
	Short: "Join a classroom by class code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		code := strings.ToUpper(args[0])
		res := svcs.classrooms.Join(cmd.Context(), code)
		if res.Err != nil {
			return res.Err
		}
		fmt.Println("Joined classroom", res.Data)
		return nil
	},
}
