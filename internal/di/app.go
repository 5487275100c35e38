package di

import (
	"context"

	"github.com/Kargones/jira-client/internal/adapter/jira"
	"github.com/Kargones/jira-client/internal/config"
	"github.com/Kargones/jira-client/internal/pkg/logging"
	"github.com/Kargones/jira-client/internal/pkg/metrics"
)

// App содержит инициализированные зависимости jiractl.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config содержит конфигурацию приложения.
	// Передаётся извне через InitializeApp().
	Config *config.Config

	// Logger предоставляет структурированное логирование.
	// Создаётся через ProvideLogger на основе LoggingConfig.
	Logger logging.Logger

	// TraceID содержит идентификатор для корреляции логов одного запуска.
	TraceID string

	// MetricsCollector собирает метрики запросов к Jira.
	// Если метрики отключены — используется NopCollector.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает OTel TracerProvider и отправляет буферизированные span-ы.
	// Если трейсинг отключён — nop function.
	TracerShutdown func(context.Context) error

	// Jira — клиент Jira REST API.
	Jira jira.Client
}
