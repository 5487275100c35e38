// Package constants содержит константы, общие для jiractl.
package constants

// AppName — имя приложения: каталог конфигурации, service keyring, job метрик.
const AppName = "jiractl"

// Version — версия сборки. Переопределяется при сборке:
//
//	go build -ldflags "-X github.com/Kargones/jira-client/internal/constants.Version=1.2.0" ./cmd/jiractl
var Version = "dev"

// Уровни bootstrap логгера, читаются из JC_LOG_LEVEL до загрузки конфигурации.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Коды выхода jiractl.
const (
	ExitOK    = 0
	ExitError = 1
)
