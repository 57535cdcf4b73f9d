package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anuvat/anuvat/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var checkLatest bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("anuvat", version)
		if !checkLatest {
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker()
		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Development build; skipping release check.")
			return nil
		}
		if err != nil {
			return err
		}

		if result.UpdateAvailable {
			fmt.Printf("A newer release is available: %s\n%s\n", result.LatestVersion, result.ReleaseURL)
		} else {
			fmt.Println("You are on the latest release.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&checkLatest, "check", false, "Check for a newer release")
}
