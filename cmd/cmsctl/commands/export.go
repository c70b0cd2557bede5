package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/WizzAIWig/dcg-websites/pkg/content"
	"github.com/WizzAIWig/dcg-websites/pkg/drupal"
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/query"
	"github.com/spf13/cobra"
)

const defaultExportPageSize = drupal.MaxPageLimit

// NewExportCommand creates the export command group
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export content as JSON lines",
	}

	cmd.AddCommand(newExportCoursesCommand())

	return cmd
}

func newExportCoursesCommand() *cobra.Command {
	var (
		pageSize int
		file     string
	)

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Export every course of the brand, one JSON document per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if file != "" {
				f, err := os.Create(file)
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			count, err := exportCourses(cmd.Context(), client, pageSize, w)
			if err != nil {
				return fmt.Errorf("export stopped after %d courses: %w", count, err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d courses\n", count)

			return nil
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", defaultExportPageSize, "courses per CMS request, at most 50")
	cmd.Flags().StringVarP(&file, "file", "f", "", "write to file instead of stdout")

	return cmd
}

func exportCourses(ctx context.Context, client drupal.Client, pageSize int, w io.Writer) (int, error) {
	encoder := json.NewEncoder(w)

	var encodeErr error

	fetch := func(ctx context.Context, page query.Page) ([]content.Course, error) {
		if encodeErr != nil {
			return nil, encodeErr
		}

		return client.Courses(ctx, query.New(
			query.SortBy("drupal_internal__nid"),
			query.Limit(page.Limit),
			query.Offset(page.Offset),
		))
	}

	count, err := drupal.Pages(ctx, pageSize, fetch, func(c content.Course) {
		if encodeErr == nil {
			encodeErr = encoder.Encode(c)
		}
	})
	if err == nil {
		err = encodeErr
	}

	return count, err
}
