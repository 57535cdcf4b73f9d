package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anuvat/anuvat/internal/classroom"
)

var classroomCmd = &cobra.Command{
	Use:   "classroom",
	Short: "Inspect the joined classroom",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClassroom(cmd, func(ctx context.Context, svcs *services, id string) error {
			res := svcs.classrooms.Details(ctx, id)
			if res.Err != nil {
				return res.Err
			}
			c := res.Data
			fmt.Println(c.Name)
			fmt.Println("Teacher: ", c.TeacherName)
			fmt.Println("Code:    ", c.ClassCode)
			fmt.Println("Students:", c.StudentCount)
			return nil
		})
	},
}

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the classroom's study materials",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClassroom(cmd, func(ctx context.Context, svcs *services, id string) error {
			res := svcs.classrooms.Materials(ctx, id)
			if res.Err != nil {
				return res.Err
			}
			if len(res.Data) == 0 {
				fmt.Println("No materials published yet.")
				return nil
			}
			for _, m := range res.Data {
				fmt.Printf("%-10s %s\n           %s\n", m.Type, m.Title, m.URL)
			}
			return nil
		})
	},
}

var assignmentType string

var assignmentsCmd = &cobra.Command{
	Use:   "assignments",
	Short: "List the classroom's assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		typ := classroom.AssignmentType(assignmentType)
		if typ != classroom.TypePractice && typ != classroom.TypeSubmission {
			return fmt.Errorf("invalid --type %q (want practice or submission)", assignmentType)
		}
		return withClassroom(cmd, func(ctx context.Context, svcs *services, id string) error {
			res := svcs.classrooms.Assignments(ctx, id, typ)
			if res.Err != nil {
				return res.Err
			}
			if len(res.Data) == 0 {
				fmt.Println("No", assignmentType, "assignments.")
				return nil
			}
			for _, a := range res.Data {
				line := a.Title
				if a.DueDate != "" {
					line += "  due " + a.DueDate
				}
				if a.Points > 0 {
					line += fmt.Sprintf("  (%d pts)", a.Points)
				}
				fmt.Println(line)
			}
			return nil
		})
	},
}

func init() {
	assignmentsCmd.Flags().StringVar(&assignmentType, "type", "practice", "Assignment type: practice or submission")
	classroomCmd.AddCommand(materialsCmd)
	classroomCmd.AddCommand(assignmentsCmd)
}

// withClassroom opens services, resolves the joined classroom id and
// runs fn against it.
func withClassroom(cmd *cobra.Command, fn func(context.Context, *services, string) error) error {
	svcs, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svcs.store.Close()

	id, ok, err := svcs.store.ClassroomID()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no classroom joined yet; run: anuvat join <class-code>")
	}
	return fn(cmd.Context(), svcs, id)
}
