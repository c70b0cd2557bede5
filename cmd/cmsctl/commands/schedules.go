package commands

import (
	"fmt"
	"io"

	"github.com/WizzAIWig/dcg-websites/pkg/content"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSchedulesCommand creates the schedules command group
func NewSchedulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "Read course schedules",
	}

	cmd.AddCommand(newSchedulesUpcomingCommand())
	cmd.AddCommand(newSchedulesListCommand())

	return cmd
}

func newSchedulesUpcomingCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming course dates of the brand",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			schedules, err := client.UpcomingSchedules(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list upcoming schedules: %w", err)
			}

			return outputSchedules(cmd.OutOrStdout(), schedules)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of schedules (default 10)")

	return cmd
}

func newSchedulesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list COURSE-ID",
		Short: "List the upcoming dates of one course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			schedules, err := client.Schedules(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list schedules: %w", err)
			}

			return outputSchedules(cmd.OutOrStdout(), schedules)
		},
	}
}

func outputSchedules(w io.Writer, schedules []content.CourseSchedule) error {
	if len(schedules) == 0 {
		_, err := io.WriteString(w, "No schedules found\n")
		return err
	}

	return render(w, schedules, func(t *tablewriter.Table) {
		t.Header("Start", "End", "Course", "Location", "Status", "Seats")
		for _, s := range schedules {
			course := s.CourseID
			if s.Course != nil {
				course = s.Course.Title
			}
			_ = t.Append(formatDate(s.Starts()), formatDate(s.Ends()), course, s.Location.Name, string(s.Status), s.SeatsDisplay)
		}
	})
}
