// Package config загружает конфигурацию jiractl: YAML файл, затем
// переменные окружения, затем системный keyring для секрета Jira.
package config

import "log/slog"

// Config — итоговая конфигурация приложения. Создаётся Load и далее не меняется.
type Config struct {
	// ConfigPath — путь к прочитанному YAML файлу, пустой если файл не использовался.
	ConfigPath string

	// AppConfig — содержимое YAML файла как есть, до env override.
	AppConfig *AppConfig

	// Jira — параметры подключения к Jira REST API.
	Jira *JiraConfig

	// LoggingConfig — настройки логирования.
	LoggingConfig *LoggingConfig

	// MetricsConfig — настройки Prometheus метрик.
	MetricsConfig *MetricsConfig

	// TracingConfig — настройки OpenTelemetry трейсинга.
	TracingConfig *TracingConfig

	// Logger — bootstrap логгер, использованный при загрузке.
	Logger *slog.Logger
}

// AppConfig представляет файл конфигурации jiractl.
//
//	jira:
//	  url: https://jira.example.com
//	  user: jdoe
//	  keyringService: jiractl
//	logging:
//	  level: info
type AppConfig struct {
	Jira    JiraConfig    `yaml:"jira"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}
