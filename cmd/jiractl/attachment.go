package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Kargones/jira-client/internal/adapter/jira"
)

func (c *cli) newAttachmentCmd() *cobra.Command {
	attachmentCmd := &cobra.Command{
		Use:   "attachment",
		Short: "Inspect and delete issue attachments",
	}

	attachmentCmd.AddCommand(
		&cobra.Command{
			Use:   "get <attachment-id>",
			Short: "Show attachment metadata",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.execute(cmd, "attachment get", func(ctx context.Context, client jira.Client) (any, error) {
					return client.GetAttachment(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "delete <attachment-id>",
			Short: "Delete an attachment",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.execute(cmd, "attachment delete", func(ctx context.Context, client jira.Client) (any, error) {
					if err := client.DeleteAttachment(ctx, args[0]); err != nil {
						return nil, err
					}
					return map[string]string{"id": args[0]}, nil
				})
			},
		},
	)

	return attachmentCmd
}
