package output

import "strings"

// FormatJSON и FormatText — поддерживаемые форматы вывода.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// NewWriter создаёт Writer по указанному формату (case-insensitive).
// При неизвестном формате возвращает JSONWriter: вывод jiractl
// предназначен в первую очередь для скриптов.
func NewWriter(format string) Writer {
	switch strings.ToLower(format) {
	case FormatText:
		return NewTextWriter()
	default:
		return NewJSONWriter()
	}
}

// IsValidFormat сообщает, поддерживается ли формат.
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatJSON, FormatText:
		return true
	}
	return false
}
