package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/toqueteos/webbrowser"
	"go.opentelemetry.io/otel/codes"

	"github.com/Kargones/jira-client/internal/adapter/jira"
	"github.com/Kargones/jira-client/internal/config"
	"github.com/Kargones/jira-client/internal/constants"
	"github.com/Kargones/jira-client/internal/di"
	"github.com/Kargones/jira-client/internal/pkg/apperrors"
	"github.com/Kargones/jira-client/internal/pkg/output"
	"github.com/Kargones/jira-client/internal/pkg/tracing"
)

// EnvOutputFormat задаёт формат вывода по умолчанию.
const EnvOutputFormat = "JC_OUTPUT_FORMAT"

// annotationNoApp помечает команды, которым не нужен сконфигурированный клиент Jira.
const annotationNoApp = "jiractl/no-app"

// shutdownTimeout ограничивает push метрик и flush трейсов при выходе.
const shutdownTimeout = 10 * time.Second

// cli хранит глобальные флаги и зависимости команд.
// Функциональные поля подменяются в тестах.
type cli struct {
	configPath   string
	outputFormat string

	loadConfig  func(path string) (*config.Config, error)
	newApp      func(cfg *config.Config) (*di.App, error)
	openBrowser func(url string) error
	storeSecret func(service, user, secret string) error
	readConfig  func(path string) (*config.AppConfig, error)
	saveConfig  func(path string, appConfig *config.AppConfig) error

	app *di.App
}

func newCLI() *cli {
	return &cli{
		loadConfig:  config.Load,
		newApp:      di.InitializeApp,
		openBrowser: webbrowser.Open,
		storeSecret: config.StoreKeyringSecret,
		readConfig:  config.ReadAppConfig,
		saveConfig:  config.SaveAppConfig,
	}
}

// reportedError — ошибка команды, уже выведенная в stdout как Result.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// run выполняет jiractl с аргументами args и возвращает exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, c *cli) int {
	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	c.shutdown()

	if err == nil {
		return constants.ExitOK
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		_ = output.NewWriter(c.outputFormat).Write(stdout,
			output.NewError(constants.AppName, err, apperrors.ErrCommandUsage))
	}
	return constants.ExitError
}

func (c *cli) newRootCmd() *cobra.Command {
	defaultFormat := os.Getenv(EnvOutputFormat)
	if defaultFormat == "" {
		defaultFormat = output.FormatJSON
	}

	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Command-line client for the Jira REST API",
		Version:       constants.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !output.IsValidFormat(c.outputFormat) {
				return apperrors.NewAppError(apperrors.ErrCommandUsage,
					"неизвестный формат вывода "+c.outputFormat+" (json, text)", nil)
			}
			if cmd.Annotations[annotationNoApp] == "true" {
				return nil
			}
			return c.initApp()
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"path to config file (default $JC_CONFIG or "+config.DefaultConfigPath()+")")
	root.PersistentFlags().StringVarP(&c.outputFormat, "output", "o", defaultFormat, "output format: json or text")

	root.AddCommand(
		c.newIssueCmd(),
		c.newSearchCmd(),
		c.newPrioritiesCmd(),
		c.newStatusesCmd(),
		c.newProjectCmd(),
		c.newPropertyCmd(),
		c.newAttachmentCmd(),
		c.newMyselfCmd(),
		c.newLoginCmd(),
	)

	return root
}

// initApp загружает конфигурацию и собирает зависимости.
func (c *cli) initApp() error {
	cfg, err := c.loadConfig(c.configPath)
	if err != nil {
		return err
	}
	app, err := c.newApp(cfg)
	if err != nil {
		return err
	}
	c.app = app
	return nil
}

// shutdown отправляет метрики и завершает TracerProvider.
func (c *cli) shutdown() {
	if c.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	_ = c.app.MetricsCollector.Push(ctx)
	if err := c.app.TracerShutdown(ctx); err != nil {
		c.app.Logger.Warn("ошибка завершения TracerProvider", "error", err.Error())
	}
}

// jiraFunc — тело команды, обращающейся к Jira.
type jiraFunc func(ctx context.Context, client jira.Client) (any, error)

// execute оборачивает обращение к Jira: span команды, метрики, логирование и вывод Result.
func (c *cli) execute(cmd *cobra.Command, name string, fn jiraFunc) error {
	start := time.Now()
	logger := c.app.Logger.With("trace_id", c.app.TraceID, "command", name)

	ctx, span := tracing.StartCommandSpan(cmd.Context(), name, c.app.TraceID)
	defer span.End()

	logger.Debug("Команда запущена")
	data, err := fn(ctx, c.app.Jira)
	duration := time.Since(start)

	c.app.MetricsCollector.RecordCommand(name, duration, err == nil)

	var result *output.Result
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("Команда завершилась ошибкой", "error", err.Error())
		result = output.NewError(name, err, apperrors.ErrCommandExec)
	} else {
		logger.Info("Команда выполнена", "duration_ms", duration.Milliseconds())
		result = output.NewSuccess(name, data)
	}

	if werr := c.write(cmd, result.WithMetadata(duration.Milliseconds(), c.app.TraceID)); werr != nil {
		return werr
	}
	if err != nil {
		return &reportedError{err: err}
	}
	return nil
}

// write выводит result в stdout команды.
func (c *cli) write(cmd *cobra.Command, result *output.Result) error {
	if err := output.NewWriter(c.outputFormat).Write(cmd.OutOrStdout(), result); err != nil {
		return apperrors.NewAppError(apperrors.ErrOutputFormat, "не удалось вывести результат", err)
	}
	return nil
}
