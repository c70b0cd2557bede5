package commands

import (
	"fmt"
	"io"

	"github.com/WizzAIWig/dcg-websites/pkg/content"
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/query"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewEventsCommand creates the events command group
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Read events",
	}

	cmd.AddCommand(newEventsListCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		eventType string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming events, soonest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if eventType != "" && !content.IsEventType(eventType) {
				return fmt.Errorf("unknown event type %q", eventType)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := query.New(query.Limit(limit))
			if eventType != "" {
				params.SetFilter("field_event_type", query.Eq(eventType))
			}

			events, err := client.Events(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			return outputEvents(cmd.OutOrStdout(), events)
		},
	}

	cmd.Flags().StringVar(&eventType, "type", "", "filter by event type (webinar, workshop, conference, meetup)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events")

	return cmd
}

func outputEvents(w io.Writer, events []content.Event) error {
	if len(events) == 0 {
		_, err := io.WriteString(w, "No events found\n")
		return err
	}

	return render(w, events, func(t *tablewriter.Table) {
		t.Header("Date", "Title", "Type", "Location", "Registration")
		for _, e := range events {
			_ = t.Append(formatDate(e.Starts()), e.Title, string(e.Type), e.Location, optional(e.RegistrationURL))
		}
	})
}
