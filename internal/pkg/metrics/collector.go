// Package metrics предоставляет интерфейсы и реализации для сбора метрик
// обращений к Jira и команд jiractl с отправкой в Prometheus Pushgateway.
//
//   - Collector — абстракция для вызывающего кода
//   - NewCollector выбирает реализацию на основе конфигурации
//   - NopCollector при отключённых метриках
package metrics

import (
	"context"
	"time"

	"github.com/Kargones/jira-client/internal/pkg/logging"
)

// Collector определяет интерфейс для сбора метрик.
// Реализации: PrometheusCollector (активный) и NopCollector (no-op).
type Collector interface {
	// RecordRequest записывает одно обращение к Jira REST API.
	// statusCode равен 0, если ответ не получен.
	RecordRequest(operation, method string, statusCode int, duration time.Duration, success bool)

	// RecordCommand записывает завершение команды jiractl.
	RecordCommand(command string, duration time.Duration, success bool)

	// Push отправляет метрики в Pushgateway.
	// Все реализации возвращают nil: ошибка отправки логируется и не влияет
	// на код выхода команды.
	Push(ctx context.Context) error
}

// NewCollector возвращает NopCollector для выключенных метрик,
// иначе PrometheusCollector после проверки конфигурации.
func NewCollector(config Config, logger logging.Logger) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return NewPrometheusCollector(config, logger)
}
