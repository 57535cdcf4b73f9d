package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anuvat/anuvat/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svcs, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svcs.store.Close()

	return app.Run(app.Deps{
		Auth:       svcs.auth,
		Classrooms: svcs.classrooms,
		Store:      svcs.store,
	})
}
