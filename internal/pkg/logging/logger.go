// Package logging предоставляет интерфейс и реализации для структурированного логирования.
package logging

import (
	"io"
	"log/slog"
)

// Logger определяет интерфейс для структурированного логирования.
// Реализации: SlogAdapter (slog из stdlib) и NopLogger.
//
//	logger.Info("Запрос к Jira выполнен", "operation", "get-issue", "duration_ms", 150)
//
// Logger пишет только в stderr или файл, никогда в stdout.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	//
	//	logger.With("trace_id", traceID).Info("Команда началась")
	With(args ...any) Logger
}

// AsSlog возвращает *slog.Logger, пишущий туда же, куда и logger.
// Нужен слоям, которые принимают *slog.Logger напрямую (entity/jira, config).
// Для NopLogger и неизвестных реализаций возвращает логгер в io.Discard.
func AsSlog(logger Logger) *slog.Logger {
	if s, ok := logger.(*SlogAdapter); ok {
		return s.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
