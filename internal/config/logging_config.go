package config

import (
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

// LoggingConfig содержит настройки для логирования.
// Переносится в logging.Config в di.ProvideLogger.
type LoggingConfig struct {
	// Level - уровень логирования (debug, info, warn, error)
	Level string `yaml:"level" env:"JC_LOG_LEVEL" env-default:"warn"`

	// Format - формат логов (json, text)
	Format string `yaml:"format" env:"JC_LOG_FORMAT" env-default:"text"`

	// Output - вывод логов (stderr, file)
	Output string `yaml:"output" env:"JC_LOG_OUTPUT" env-default:"stderr"`

	// FilePath - путь к файлу логов (если output=file)
	FilePath string `yaml:"filePath" env:"JC_LOG_FILE_PATH"`

	// MaxSize - максимальный размер файла лога в MB
	MaxSize int `yaml:"maxSize" env:"JC_LOG_MAX_SIZE" env-default:"20"`

	// MaxBackups - максимальное количество backup файлов
	MaxBackups int `yaml:"maxBackups" env:"JC_LOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge - максимальный возраст backup файлов в днях
	MaxAge int `yaml:"maxAge" env:"JC_LOG_MAX_AGE" env-default:"14"`

	// Compress - сжимать ли backup файлы.
	// env-default перезаписывает false из YAML только при заданной переменной окружения.
	Compress bool `yaml:"compress" env:"JC_LOG_COMPRESS" env-default:"true"`
}

// loadLoggingConfig загружает конфигурацию логирования из AppConfig или defaults,
// затем применяет переменные окружения JC_LOG_*.
func loadLoggingConfig(l *slog.Logger, cfg *Config) (*LoggingConfig, error) {
	if cfg.AppConfig != nil && (cfg.AppConfig.Logging != LoggingConfig{}) {
		loggingConfig := cfg.AppConfig.Logging
		if err := cleanenv.ReadEnv(&loggingConfig); err != nil {
			l.Warn("Ошибка загрузки Logging конфигурации из переменных окружения",
				slog.String("error", err.Error()),
			)
		}
		l.Debug("Logging конфигурация загружена из файла",
			slog.String("level", loggingConfig.Level),
			slog.String("format", loggingConfig.Format),
		)
		return &loggingConfig, nil
	}

	loggingConfig := getDefaultLoggingConfig()

	if err := cleanenv.ReadEnv(loggingConfig); err != nil {
		l.Warn("Ошибка загрузки Logging конфигурации из переменных окружения",
			slog.String("error", err.Error()),
		)
	}

	return loggingConfig, nil
}

// getDefaultLoggingConfig возвращает конфигурацию логирования по умолчанию.
// Значения совпадают с logging.DefaultXxx.
func getDefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:      "warn",
		Format:     "text",
		Output:     "stderr",
		FilePath:   "jiractl.log",
		MaxSize:    20,
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
}
