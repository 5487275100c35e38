package constants

import "os"

// Права на файлы и каталоги, создаваемые jiractl.
// Файл конфигурации может содержать URL и имя пользователя Jira, поэтому он приватный.
const (
	// DirPermPrivate — каталог конфигурации (только владелец).
	DirPermPrivate os.FileMode = 0700

	// FilePermPrivate — файл конфигурации (owner rw).
	FilePermPrivate os.FileMode = 0600
)
