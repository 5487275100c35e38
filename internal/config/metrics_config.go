package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Kargones/jira-client/internal/pkg/urlutil"
	"github.com/ilyakaznacheev/cleanenv"
)

// MetricsConfig содержит настройки для Prometheus метрик.
type MetricsConfig struct {
	// Enabled — включены ли метрики (по умолчанию false).
	Enabled bool `yaml:"enabled" env:"JC_METRICS_ENABLED" env-default:"false"`

	// PushgatewayURL — URL Prometheus Pushgateway, например "http://pushgateway:9091".
	PushgatewayURL string `yaml:"pushgatewayUrl" env:"JC_METRICS_PUSHGATEWAY_URL"`

	// JobName — имя job для группировки метрик.
	JobName string `yaml:"jobName" env:"JC_METRICS_JOB_NAME" env-default:"jiractl"`

	// Timeout — таймаут HTTP запросов к Pushgateway.
	Timeout time.Duration `yaml:"timeout" env:"JC_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel — переопределение instance label. Если пусто — hostname.
	InstanceLabel string `yaml:"instanceLabel" env:"JC_METRICS_INSTANCE"`
}

// isMetricsConfigPresent возвращает true, если в файле задано хотя бы одно значимое поле.
func isMetricsConfigPresent(cfg *MetricsConfig) bool {
	if cfg == nil {
		return false
	}
	return cfg.Enabled || cfg.PushgatewayURL != ""
}

// getDefaultMetricsConfig возвращает конфигурацию метрик по умолчанию (выключены).
func getDefaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		Enabled: false,
		JobName: "jiractl",
		Timeout: 10 * time.Second,
	}
}

// loadMetricsConfig загружает конфигурацию метрик из AppConfig или defaults,
// затем применяет переменные окружения JC_METRICS_*.
func loadMetricsConfig(l *slog.Logger, cfg *Config) (*MetricsConfig, error) {
	if cfg.AppConfig != nil && isMetricsConfigPresent(&cfg.AppConfig.Metrics) {
		metricsConfig := cfg.AppConfig.Metrics
		if err := cleanenv.ReadEnv(&metricsConfig); err != nil {
			l.Warn("Ошибка загрузки Metrics конфигурации из переменных окружения",
				slog.String("error", err.Error()),
			)
		}
		l.Debug("Metrics конфигурация загружена из файла",
			slog.Bool("enabled", metricsConfig.Enabled),
			slog.String("pushgateway_url", urlutil.MaskURL(metricsConfig.PushgatewayURL)),
			slog.String("job_name", metricsConfig.JobName),
		)
		return &metricsConfig, nil
	}

	metricsConfig := getDefaultMetricsConfig()

	if err := cleanenv.ReadEnv(metricsConfig); err != nil {
		l.Warn("Ошибка загрузки Metrics конфигурации из переменных окружения",
			slog.String("error", err.Error()),
		)
	}

	return metricsConfig, nil
}

// validateMetricsConfig проверяет обязательные поля при включённых метриках.
func validateMetricsConfig(mc *MetricsConfig) error {
	if !mc.Enabled {
		return nil
	}
	if mc.PushgatewayURL == "" {
		return fmt.Errorf("metrics: pushgatewayUrl обязателен при enabled=true")
	}
	if mc.Timeout <= 0 {
		return fmt.Errorf("metrics: timeout должен быть положительным")
	}
	return nil
}
