package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent API requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		events, err := svcs.store.RecentAPIEvents(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No requests recorded yet.")
			return nil
		}
		for _, ev := range events {
			outcome := fmt.Sprintf("%d", ev.Status)
			if !ev.Success && ev.Status == 0 {
				outcome = "err"
			}
			fmt.Printf("%s  %-4s %-40s %4s  %4dms", ev.CreatedAt.Format("2006-01-02 15:04:05"), ev.Method, ev.Path, outcome, ev.LatencyMs)
			if ev.Error != "" {
				fmt.Printf("  %s", ev.Error)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of requests to show")
}
