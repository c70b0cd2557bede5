package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "List course categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			categories, err := client.Categories(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			return render(cmd.OutOrStdout(), categories, func(t *tablewriter.Table) {
				t.Header("Slug", "Name", "Parent")
				for _, c := range categories {
					_ = t.Append(c.Slug, c.Name, optional(c.ParentID))
				}
			})
		},
	}

	return cmd
}
