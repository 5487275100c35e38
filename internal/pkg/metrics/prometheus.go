package metrics

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Kargones/jira-client/internal/pkg/logging"
	"github.com/Kargones/jira-client/internal/pkg/urlutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "jiractl"

// PrometheusCollector реализует Collector с Prometheus метриками.
// Отправляет метрики в Pushgateway при вызове Push().
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestSuccess  *prometheus.CounterVec
	requestError    *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec

	instance string
}

// NewPrometheusCollector создаёт PrometheusCollector с указанной конфигурацией.
// Регистрирует метрики:
//   - jiractl_jira_request_duration_seconds (histogram)
//   - jiractl_jira_request_success_total (counter)
//   - jiractl_jira_request_error_total (counter)
//   - jiractl_command_duration_seconds (histogram)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для metrics instance label, используется 'unknown'",
				"error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	registry := prometheus.NewRegistry()

	// Запросы к Jira укладываются в десятки миллисекунд, поиск по большому
	// проекту может занимать десятки секунд.
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "jira",
			Name:      "request_duration_seconds",
			Help:      "Duration of Jira REST API requests in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "method", "code"},
	)

	requestSuccess := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jira",
			Name:      "request_success_total",
			Help:      "Total number of successful Jira REST API requests",
		},
		[]string{"operation"},
	)

	requestError := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jira",
			Name:      "request_error_total",
			Help:      "Total number of failed Jira REST API requests",
		},
		[]string{"operation", "code"},
	)

	commandDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of jiractl command execution in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"command", "status"},
	)

	// Register вместо MustRegister: ошибка возможна только при дублировании имён.
	collectors := []prometheus.Collector{requestDuration, requestSuccess, requestError, commandDuration}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:          config,
		logger:          logger,
		registry:        registry,
		requestDuration: requestDuration,
		requestSuccess:  requestSuccess,
		requestError:    requestError,
		commandDuration: commandDuration,
		instance:        instance,
	}, nil
}

// maxLabelLength — максимальная длина значения label для защиты от cardinality explosion.
const maxLabelLength = 128

// sanitizeLabel обрезает значение label до допустимой длины и заменяет
// контрольные символы, которые могут нарушить Prometheus text format.
// Обрезка выполняется по рунам.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

// codeLabel превращает HTTP статус в значение label. 0 означает "ответ не получен".
func codeLabel(statusCode int) string {
	if statusCode == 0 {
		return "none"
	}
	return strconv.Itoa(statusCode)
}

// RecordRequest записывает одно обращение к Jira.
func (c *PrometheusCollector) RecordRequest(operation, method string, statusCode int, duration time.Duration, success bool) {
	operation = sanitizeLabel(operation)
	method = sanitizeLabel(method)
	code := codeLabel(statusCode)

	c.requestDuration.WithLabelValues(operation, method, code).Observe(duration.Seconds())

	if success {
		c.requestSuccess.WithLabelValues(operation).Inc()
	} else {
		c.requestError.WithLabelValues(operation, code).Inc()
	}

	c.logger.Debug("metrics: jira request recorded",
		"operation", operation,
		"code", code,
		"duration_ms", duration.Milliseconds(),
		"success", success,
	)
}

// RecordCommand записывает завершение команды jiractl.
func (c *PrometheusCollector) RecordCommand(command string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	c.commandDuration.WithLabelValues(sanitizeLabel(command), status).Observe(duration.Seconds())
}

// Push отправляет метрики в Pushgateway.
// Возвращает nil даже при ошибке: ошибки логируются.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if c.config.PushgatewayURL == "" {
		c.logger.Debug("metrics: pushgateway URL not configured, skipping push")
		return nil
	}

	select {
	case <-ctx.Done():
		c.logger.Debug("metrics push отменён")
		return nil
	default:
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Info("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// GetRegistry возвращает внутренний registry. Используется в тестах.
func (c *PrometheusCollector) GetRegistry() *prometheus.Registry {
	return c.registry
}
