package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anuvat/anuvat/internal/api"
	"github.com/anuvat/anuvat/internal/auth"
	"github.com/anuvat/anuvat/internal/classroom"
	"github.com/anuvat/anuvat/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "anuvat",
	Short: "Student terminal client for the Anuvat learning platform",
	Long:  "Anuvat — terminal app for students: sign in, join classrooms, browse materials and assignments, and take timed quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ANUVAT_DB env var)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(classroomCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ANUVAT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// maxLoggedRequests caps the api_events table.
const maxLoggedRequests = 500

// services bundles everything a command needs against one open store.
type services struct {
	store      *store.Store
	auth       *auth.Service
	classrooms *classroom.Service
}

// openServices opens the store and builds the API client and services
// over it. The caller owns the store and must Close it.
func openServices(cmd *cobra.Command) (*services, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// Keep the request log bounded; losing old entries is fine.
	if err := st.PruneAPIEvents(cmd.Context(), maxLoggedRequests); err != nil {
		fmt.Fprintln(os.Stderr, "warning: prune request log:", err)
	}

	client := api.New(api.ConfigFromEnv(), st, api.WithEventLog(st))
	return &services{
		store:      st,
		auth:       auth.NewService(client, st),
		classrooms: classroom.NewService(client, st),
	}, nil
}
