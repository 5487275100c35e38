// Package output форматирует результаты команд jiractl в JSON и текст.
package output

import "github.com/Kargones/jira-client/internal/pkg/apperrors"

// StatusSuccess и StatusError — возможные значения поля Status в Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIVersion — версия формата вывода.
const APIVersion = "v1"

// Result представляет структурированный результат выполнения команды.
type Result struct {
	// Status содержит статус выполнения: "success" или "error".
	Status string `json:"status"`

	// Command содержит имя выполненной команды, например "issue get".
	Command string `json:"command"`

	// Data содержит ответ Jira без изменений.
	Data any `json:"data,omitempty"`

	// Error содержит информацию об ошибке (только при status="error").
	Error *ErrorInfo `json:"error,omitempty"`

	// Metadata содержит метаданные выполнения.
	Metadata *Metadata `json:"metadata,omitempty"`
}

// ErrorInfo содержит информацию об ошибке в структурированном виде.
// ВАЖНО: Message НЕ ДОЛЖЕН содержать секреты!
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	DurationMs int64  `json:"duration_ms"`
	TraceID    string `json:"trace_id,omitempty"`
	APIVersion string `json:"api_version"`
}

// NewSuccess создаёт успешный Result.
func NewSuccess(command string, data any) *Result {
	return &Result{Status: StatusSuccess, Command: command, Data: data}
}

// NewError создаёт Result с ошибкой. Код берётся из AppError в цепочке err,
// иначе используется defaultCode.
func NewError(command string, err error, defaultCode string) *Result {
	return &Result{
		Status:  StatusError,
		Command: command,
		Error: &ErrorInfo{
			Code:    apperrors.CodeOf(err, defaultCode),
			Message: err.Error(),
		},
	}
}

// WithMetadata заполняет Metadata и возвращает тот же Result.
func (r *Result) WithMetadata(durationMs int64, traceID string) *Result {
	r.Metadata = &Metadata{
		DurationMs: durationMs,
		TraceID:    traceID,
		APIVersion: APIVersion,
	}
	return r
}
