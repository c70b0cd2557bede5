package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/WizzAIWig/dcg-websites/pkg/content"
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/query"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	jsonapierrors "github.com/WizzAIWig/dcg-websites/pkg/jsonapi/errors"
)

// NewCoursesCommand creates the courses command group
func NewCoursesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"course"},
		Short:   "Read courses",
		Long:    "List, search and inspect the courses of a brand",
	}

	cmd.AddCommand(newCoursesListCommand())
	cmd.AddCommand(newCoursesGetCommand())
	cmd.AddCommand(newCoursesSearchCommand())

	return cmd
}

func newCoursesListCommand() *cobra.Command {
	var (
		category string
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Long:  "List the courses of a brand, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var courses []content.Course

			if category != "" && limit == 0 && offset == 0 {
				courses, err = client.CoursesByCategory(cmd.Context(), category)
			} else {
				params := query.New(query.Limit(limit), query.Offset(offset))
				if category != "" {
					params.SetFilter("field_category.field_slug", query.Eq(category))
				}
				courses, err = client.Courses(cmd.Context(), params)
			}

			if err != nil {
				return fmt.Errorf("failed to list courses: %w", err)
			}

			return outputCourses(cmd.OutOrStdout(), courses)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category slug")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of courses")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of courses to skip")

	return cmd
}

func newCoursesSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search TEXT",
		Short: "Search courses by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			courses, err := client.SearchCourses(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return fmt.Errorf("failed to search courses: %w", err)
			}

			return outputCourses(cmd.OutOrStdout(), courses)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of courses (default 10)")

	return cmd
}

func newCoursesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SLUG",
		Short: "Show a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			course, err := client.Course(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get course: %w", err)
			}

			if course == nil {
				return jsonapierrors.NewNotFoundError(fmt.Sprintf("course %s not found", args[0]))
			}

			return render(cmd.OutOrStdout(), course, func(t *tablewriter.Table) {
				t.Header("Property", "Value")
				_ = t.Append("ID", course.ID)
				_ = t.Append("Title", course.Title)
				_ = t.Append("Slug", course.Slug)
				_ = t.Append("Level", string(course.Level))
				_ = t.Append("Duration", formatDuration(*course))
				_ = t.Append("Price", course.PriceDisplay)
				_ = t.Append("Categories", categoryNames(course.Categories))
				_ = t.Append("Trainers", trainerNames(course.Trainers))
				_ = t.Append("Image", optional(course.ImageURL))
				_ = t.Append("Related", fmt.Sprintf("%d courses", len(course.RelatedCourses)))
				_ = t.Append("SEO title", course.SEO.Title)
			})
		},
	}
}

func outputCourses(w io.Writer, courses []content.Course) error {
	if len(courses) == 0 {
		_, err := io.WriteString(w, "No courses found\n")
		return err
	}

	return render(w, courses, func(t *tablewriter.Table) {
		t.Header("Slug", "Title", "Level", "Duration", "Categories")
		for _, c := range courses {
			_ = t.Append(c.Slug, c.Title, string(c.Level), formatDuration(c), categoryNames(c.Categories))
		}
	})
}
