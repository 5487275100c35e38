package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Kargones/jira-client/internal/constants"
	"github.com/Kargones/jira-client/internal/pkg/apperrors"
)

// EnvConfigPath — переменная окружения с путём к файлу конфигурации.
const EnvConfigPath = "JC_CONFIG"

// DefaultConfigPath возвращает $XDG_CONFIG_HOME/jiractl/config.yaml
// (или аналог для ОС). Пустая строка, если каталог конфигурации не определён.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, constants.AppName, "config.yaml")
}

// Load собирает Config.
//
// Источник файла: path, если не пустой; иначе JC_CONFIG; иначе DefaultConfigPath.
// Явно указанный файл обязан существовать, файл по умолчанию опционален.
// Ошибки возвращаются как *apperrors.AppError с кодами CONFIG.*.
func Load(path string) (*Config, error) {
	l := getSlog(os.Getenv("JC_LOG_LEVEL"))

	cfg := &Config{Logger: l}

	path, explicit := ResolveConfigPath(path)

	appConfig, err := loadAppConfig(l, path, explicit)
	if err != nil {
		return nil, err
	}
	cfg.AppConfig = appConfig
	if appConfig != nil {
		cfg.ConfigPath = path
	}

	if cfg.LoggingConfig, err = loadLoggingConfig(l, cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad, "конфигурация логирования", err)
	}

	if cfg.MetricsConfig, err = loadMetricsConfig(l, cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad, "конфигурация метрик", err)
	}
	if err = validateMetricsConfig(cfg.MetricsConfig); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate, "конфигурация метрик", err)
	}

	if cfg.TracingConfig, err = loadTracingConfig(l, cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad, "конфигурация трейсинга", err)
	}
	if err = validateTracingConfig(cfg.TracingConfig); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate, "конфигурация трейсинга", err)
	}

	if cfg.Jira, err = loadJiraConfig(l, cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate, "конфигурация Jira", err)
	}

	return cfg, nil
}

// ResolveConfigPath выбирает файл конфигурации: path, если не пустой; иначе JC_CONFIG;
// иначе DefaultConfigPath. explicit == false только для пути по умолчанию.
func ResolveConfigPath(path string) (resolved string, explicit bool) {
	if path != "" {
		return path, true
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true
	}
	return DefaultConfigPath(), false
}

// ReadAppConfig читает YAML файл как есть, без env override и валидации.
// Отсутствующий файл даёт пустой AppConfig.
func ReadAppConfig(path string) (*AppConfig, error) {
	appConfig, err := loadAppConfig(getSlog(os.Getenv("JC_LOG_LEVEL")), path, false)
	if err != nil {
		return nil, err
	}
	if appConfig == nil {
		appConfig = &AppConfig{}
	}
	return appConfig, nil
}

// loadAppConfig читает YAML файл. Отсутствующий файл по умолчанию не ошибка: возвращается nil.
func loadAppConfig(l *slog.Logger, path string, required bool) (*AppConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			l.Debug("Файл конфигурации не найден, используются env и defaults",
				slog.String("path", path))
			return nil, nil
		}
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			"не удалось прочитать файл конфигурации", err)
	}

	var appConfig AppConfig
	if err = yaml.Unmarshal(data, &appConfig); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigParse,
			"ошибка парсинга файла конфигурации", fmt.Errorf("%s: %w", path, err))
	}

	l.Debug("Файл конфигурации загружен", slog.String("path", path))
	return &appConfig, nil
}

// getSlog создаёт bootstrap логгер для этапа загрузки конфигурации.
// Он пишет в stderr текстом; основной логгер создаётся позже из LoggingConfig.
func getSlog(logLevel string) *slog.Logger {
	level := new(slog.LevelVar)
	switch logLevel {
	case constants.LogLevelDebug:
		level.Set(slog.LevelDebug)
	case constants.LogLevelInfo:
		level.Set(slog.LevelInfo)
	case constants.LogLevelError:
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelWarn)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("version", constants.Version))
}

// SaveAppConfig записывает appConfig в YAML файл path, создавая каталог при необходимости.
// Файл создаётся с правами только для владельца. Token не сохраняется:
// он хранится в keyring или передаётся через JIRA_TOKEN.
func SaveAppConfig(path string, appConfig *AppConfig) error {
	if path == "" {
		return apperrors.NewAppError(apperrors.ErrConfigLoad, "не задан путь к файлу конфигурации", nil)
	}

	toSave := *appConfig
	toSave.Jira.Token = ""

	data, err := yaml.Marshal(&toSave)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigParse, "ошибка сериализации конфигурации", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), constants.DirPermPrivate); err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigLoad, "не удалось создать каталог конфигурации", err)
	}

	if err = os.WriteFile(path, data, constants.FilePermPrivate); err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigLoad, "не удалось записать файл конфигурации", err)
	}
	return nil
}
