package main

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kargones/jira-client/internal/config"
	"github.com/Kargones/jira-client/internal/constants"
	"github.com/Kargones/jira-client/internal/pkg/apperrors"
	"github.com/Kargones/jira-client/internal/pkg/output"
)

// loginResult — результат `jiractl login`. Секрет не выводится.
type loginResult struct {
	ConfigPath     string `json:"config_path"`
	URL            string `json:"url"`
	User           string `json:"user"`
	KeyringService string `json:"keyring_service"`
}

func (c *cli) newLoginCmd() *cobra.Command {
	var (
		jiraURL string
		user    string
		service string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Jira credentials in the system keyring",
		Long: `Store the Jira password or API token in the system keyring and write
the server URL and user name to the config file.

The secret is taken from JIRA_TOKEN or read as the first line of stdin.
It is never written to the config file.`,
		Example:     `  echo "$TOKEN" | jiractl login --url https://jira.example.com --user jdoe`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoApp: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			token := os.Getenv("JIRA_TOKEN")
			if token == "" {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if scanner.Scan() {
					token = strings.TrimSpace(scanner.Text())
				}
			}

			jiraConfig := config.JiraConfig{
				URL:            strings.TrimRight(jiraURL, "/"),
				User:           user,
				Token:          token,
				Timeout:        timeout,
				KeyringService: service,
			}
			if err := jiraConfig.Validate(); err != nil {
				return apperrors.NewAppError(apperrors.ErrCommandUsage, "некорректные параметры login", err)
			}

			path, _ := config.ResolveConfigPath(c.configPath)
			appConfig, err := c.readConfig(path)
			if err != nil {
				return err
			}

			if err = c.storeSecret(service, user, token); err != nil {
				return apperrors.NewAppError(apperrors.ErrCommandExec, "не удалось сохранить секрет в keyring", err)
			}

			jiraConfig.Token = ""
			appConfig.Jira = jiraConfig
			if err = c.saveConfig(path, appConfig); err != nil {
				return err
			}

			return c.write(cmd, output.NewSuccess("login", loginResult{
				ConfigPath:     path,
				URL:            jiraConfig.URL,
				User:           user,
				KeyringService: service,
			}))
		},
	}

	cmd.Flags().StringVar(&jiraURL, "url", "", "Jira server URL, e.g. https://jira.example.com")
	cmd.Flags().StringVar(&user, "user", "", "Jira user name")
	cmd.Flags().StringVar(&service, "keyring-service", constants.AppName, "keyring service name")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP request timeout")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
