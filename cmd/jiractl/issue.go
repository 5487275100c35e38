package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Kargones/jira-client/internal/adapter/jira"
)

func (c *cli) newIssueCmd() *cobra.Command {
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Read, create and modify issues",
	}

	issueCmd.AddCommand(
		c.newIssueGetCmd(),
		c.newIssueCreateCmd(),
		c.newIssueUpdateCmd(),
		c.newIssueCommentCmd(),
		c.newIssueOpenCmd(),
	)
	return issueCmd
}

func (c *cli) newIssueGetCmd() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get <issue-key>",
		Short: "Show an issue",
		Example: `  jiractl issue get PROJ-123
  jiractl issue get PROJ-123 --fields summary,status`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, "issue get", func(ctx context.Context, client jira.Client) (any, error) {
				return client.GetIssue(ctx, args[0], fields)
			})
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "comma-separated list of fields to return (default: all)")
	return cmd
}

func (c *cli) newIssueCreateCmd() *cobra.Command {
	var req jira.CreateIssueRequest

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create an issue",
		Example: `  jiractl issue create --project PROJ --summary "Login fails" --type 1 --priority 3 --label backend`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.execute(cmd, "issue create", func(ctx context.Context, client jira.Client) (any, error) {
				return client.CreateIssue(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.ProjectKey, "project", "", "project key")
	cmd.Flags().StringVar(&req.Summary, "summary", "", "issue summary")
	cmd.Flags().StringVar(&req.Description, "description", "", "issue description")
	cmd.Flags().StringVar(&req.IssueTypeID, "type", "", "issue type id (see 'jiractl project meta')")
	cmd.Flags().StringVar(&req.PriorityID, "priority", "", "priority id (see 'jiractl priorities')")
	cmd.Flags().StringArrayVar(&req.Labels, "label", nil, "label, may be repeated")
	for _, name := range []string{"project", "summary", "type", "priority"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (c *cli) newIssueUpdateCmd() *cobra.Command {
	var req jira.UpdateIssueRequest

	cmd := &cobra.Command{
		Use:   "update <issue-key>",
		Short: "Change summary, description, priority or labels of an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, "issue update", func(ctx context.Context, client jira.Client) (any, error) {
				if err := client.UpdateIssue(ctx, args[0], req); err != nil {
					return nil, err
				}
				return map[string]string{"key": args[0]}, nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Summary, "summary", "", "new summary")
	cmd.Flags().StringVar(&req.Description, "description", "", "new description")
	cmd.Flags().StringVar(&req.PriorityID, "priority", "", "new priority id")
	cmd.Flags().StringArrayVar(&req.Labels, "label", nil, "replace labels, may be repeated")
	cmd.MarkFlagsOneRequired("summary", "description", "priority", "label")
	return cmd
}

func (c *cli) newIssueCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <issue-key> <text>",
		Short: "Add a comment to an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, "issue comment", func(ctx context.Context, client jira.Client) (any, error) {
				return client.AddComment(ctx, args[0], args[1])
			})
		},
	}
}

func (c *cli) newIssueOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <issue-key>",
		Short: "Open an issue in the web browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd, "issue open", func(_ context.Context, client jira.Client) (any, error) {
				url := client.BrowseURL(args[0])
				if err := c.openBrowser(url); err != nil {
					return nil, err
				}
				return map[string]string{"key": args[0], "url": url}, nil
			})
		},
	}
}
