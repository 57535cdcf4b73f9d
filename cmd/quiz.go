package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anuvat/anuvat/internal/app"
	"github.com/anuvat/anuvat/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a timed practice quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		return app.RunQuiz(app.Deps{
			Auth:       svcs.auth,
			Classrooms: svcs.classrooms,
			Store:      svcs.store,
		}, quiz.SampleQuiz(), quiz.DefaultDuration)
	},
}
