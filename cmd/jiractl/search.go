package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Kargones/jira-client/internal/adapter/jira"
	entity "github.com/Kargones/jira-client/internal/entity/jira"
)

func (c *cli) newSearchCmd() *cobra.Command {
	var opts jira.SearchOptions

	searchCmd := &cobra.Command{
		Use:   "search <jql>",
		Short: "Search issues with JQL",
		Example: `  jiractl search 'assignee = currentUser() AND resolution = Unresolved'
  jiractl search project PROJ --max 10 --fields summary,status`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, "search", func(ctx context.Context, client jira.Client) (any, error) {
				return client.Search(ctx, args[0], opts)
			})
		},
	}

	searchCmd.PersistentFlags().StringSliceVar(&opts.Fields, "fields", nil, "comma-separated list of fields to return")
	searchCmd.PersistentFlags().IntVar(&opts.StartAt, "start", 0, "index of the first issue to return")
	searchCmd.PersistentFlags().IntVar(&opts.MaxResults, "max", entity.DefaultMaxResults, "maximum number of issues to return")

	searchCmd.AddCommand(&cobra.Command{
		Use:   "project <project-key>",
		Short: "List issues of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, "search project", func(ctx context.Context, client jira.Client) (any, error) {
				return client.SearchByProject(ctx, args[0], opts)
			})
		},
	})

	return searchCmd
}
