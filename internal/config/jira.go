package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Kargones/jira-client/internal/pkg/urlutil"
)

// Ошибки валидации конфигурации Jira.
var (
	// ErrJiraURLRequired — не задан адрес сервера Jira.
	ErrJiraURLRequired = errors.New("jira: url обязателен")
	// ErrJiraURLInvalid — адрес сервера не является абсолютным URL.
	ErrJiraURLInvalid = errors.New("jira: url должен быть абсолютным URL с host (например https://jira.example.com)")
	// ErrJiraUserRequired — не задан пользователь для basic auth.
	ErrJiraUserRequired = errors.New("jira: user обязателен")
	// ErrJiraTokenRequired — не задан секрет (пароль или API token).
	ErrJiraTokenRequired = errors.New("jira: token обязателен (JIRA_TOKEN или keyring)")
	// ErrJiraTimeoutInvalid — таймаут должен быть положительным.
	ErrJiraTimeoutInvalid = errors.New("jira: timeout должен быть положительным")
	// ErrJiraURLHasCredentials — учётные данные в URL попадут в логи и историю shell.
	ErrJiraURLHasCredentials = errors.New("jira: url не должен содержать учётные данные, используйте user и token")
)

// JiraConfig содержит параметры подключения к Jira REST API.
// Создаётся один раз при загрузке конфигурации и не меняется в течение
// жизни клиента.
type JiraConfig struct {
	// URL — базовый адрес сервера Jira, без /rest/api/2.
	// Сервер принимает basic auth только по https.
	URL string `yaml:"url" env:"JIRA_URL"`

	// User — имя пользователя для basic auth.
	User string `yaml:"user" env:"JIRA_USER"`

	// Token — пароль или API token. Не логируется.
	Token string `yaml:"token" env:"JIRA_TOKEN"`

	// Timeout — таймаут одного HTTP запроса.
	Timeout time.Duration `yaml:"timeout" env:"JIRA_TIMEOUT"`

	// KeyringService — имя сервиса в системном keyring.
	// Если Token пустой и KeyringService задан, секрет читается из keyring
	// по ключу User.
	KeyringService string `yaml:"keyringService" env:"JIRA_KEYRING_SERVICE"`
}

// GetDefaultJiraConfig возвращает конфигурацию Jira по умолчанию.
func GetDefaultJiraConfig() *JiraConfig {
	return &JiraConfig{
		Timeout: 30 * time.Second,
	}
}

// Validate проверяет корректность конфигурации Jira.
func (j *JiraConfig) Validate() error {
	if j.URL == "" {
		return ErrJiraURLRequired
	}
	if u, err := url.Parse(j.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrJiraURLInvalid
	}
	if urlutil.HasCredentials(j.URL) {
		return ErrJiraURLHasCredentials
	}
	if j.User == "" {
		return ErrJiraUserRequired
	}
	if j.Token == "" {
		return ErrJiraTokenRequired
	}
	if j.Timeout <= 0 {
		return ErrJiraTimeoutInvalid
	}
	return nil
}

// IsSecure сообщает, использует ли URL схему https.
func (j *JiraConfig) IsSecure() bool {
	u, err := url.Parse(j.URL)
	return err == nil && u.Scheme == "https"
}

// mergeJiraConfig переносит заданные в файле значения поверх defaults.
func mergeJiraConfig(dst *JiraConfig, src JiraConfig) {
	if src.URL != "" {
		dst.URL = src.URL
	}
	if src.User != "" {
		dst.User = src.User
	}
	if src.Token != "" {
		dst.Token = src.Token
	}
	if src.Timeout > 0 {
		dst.Timeout = src.Timeout
	}
	if src.KeyringService != "" {
		dst.KeyringService = src.KeyringService
	}
}

// loadJiraConfig собирает конфигурацию Jira: defaults, затем AppConfig,
// затем переменные окружения JIRA_*, затем keyring для пустого токена.
func loadJiraConfig(l *slog.Logger, cfg *Config) (*JiraConfig, error) {
	jiraConfig := GetDefaultJiraConfig()

	if cfg.AppConfig != nil {
		mergeJiraConfig(jiraConfig, cfg.AppConfig.Jira)
	}

	if err := cleanenv.ReadEnv(jiraConfig); err != nil {
		return nil, fmt.Errorf("failed to read Jira config from environment: %w", err)
	}

	if jiraConfig.Token == "" && jiraConfig.KeyringService != "" {
		token, err := readKeyringSecret(jiraConfig.KeyringService, jiraConfig.User)
		if err != nil {
			return nil, fmt.Errorf("failed to read Jira token from keyring: %w", err)
		}
		jiraConfig.Token = token
		l.Debug("Jira token загружен из keyring",
			slog.String("service", jiraConfig.KeyringService),
			slog.String("user", jiraConfig.User),
		)
	}

	if err := jiraConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Jira configuration: %w", err)
	}

	l.Debug("Jira конфигурация загружена",
		slog.String("url", urlutil.MaskURL(jiraConfig.URL)),
		slog.String("user", jiraConfig.User),
		slog.Duration("timeout", jiraConfig.Timeout),
	)

	return jiraConfig, nil
}
