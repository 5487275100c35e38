package metrics

import (
	"errors"
	"net/url"
	"time"
)

// Ошибки валидации Config.
var (
	ErrPushgatewayURLRequired = errors.New("metrics: pushgateway URL is required when metrics are enabled")
	ErrPushgatewayURLInvalid  = errors.New("metrics: pushgateway URL must be an absolute http(s) URL")
	ErrJobNameRequired        = errors.New("metrics: job name is required")
	ErrInvalidTimeout         = errors.New("metrics: push timeout must be positive")
)

// Config содержит настройки для сбора и отправки Prometheus метрик.
type Config struct {
	// Enabled — включены ли метрики (по умолчанию false).
	Enabled bool

	// PushgatewayURL — URL Prometheus Pushgateway, например "http://pushgateway:9091".
	PushgatewayURL string

	// JobName — имя job для группировки метрик. По умолчанию "jiractl".
	JobName string

	// Timeout — таймаут HTTP запросов к Pushgateway.
	Timeout time.Duration

	// InstanceLabel — переопределение instance label. Если пусто — hostname.
	InstanceLabel string
}

// Validate проверяет корректность конфигурации.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.PushgatewayURL == "" {
		return ErrPushgatewayURLRequired
	}

	u, err := url.Parse(c.PushgatewayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrPushgatewayURLInvalid
	}

	if c.JobName == "" {
		return ErrJobNameRequired
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	return nil
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		Enabled: false,
		JobName: "jiractl",
		Timeout: 10 * time.Second,
	}
}
