package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Kargones/jira-client/internal/adapter/jira"
)

func (c *cli) newPrioritiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priorities",
		Short: "List issue priorities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.execute(cmd, "priorities", func(ctx context.Context, client jira.Client) (any, error) {
				return client.ListPriorities(ctx)
			})
		},
	}
}

func (c *cli) newStatusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List workflow statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.execute(cmd, "statuses", func(ctx context.Context, client jira.Client) (any, error) {
				return client.ListStatuses(ctx)
			})
		},
	}
}

func (c *cli) newProjectCmd() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Project metadata",
	}

	projectCmd.AddCommand(&cobra.Command{
		Use:   "meta <project-key>",
		Short: "Show issue types and fields available when creating issues in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, "project meta", func(ctx context.Context, client jira.Client) (any, error) {
				return client.GetProjectMeta(ctx, args[0])
			})
		},
	})

	return projectCmd
}

func (c *cli) newPropertyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "property <key>",
		Short:   "Show a server application property",
		Example: `  jiractl property jira.title`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, "property", func(ctx context.Context, client jira.Client) (any, error) {
				return client.GetApplicationProperty(ctx, args[0])
			})
		},
	}
}

func (c *cli) newMyselfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "myself",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.execute(cmd, "myself", func(ctx context.Context, client jira.Client) (any, error) {
				return client.GetMyself(ctx)
			})
		},
	}
}
