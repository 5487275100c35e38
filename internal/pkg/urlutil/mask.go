// Package urlutil предоставляет утилиты для безопасной работы с URL.
package urlutil

import "net/url"

// MaskURL маскирует URL для безопасного логирования.
// Оставляет только scheme и host: path и query могут содержать ключи задач
// или JQL, userinfo может содержать пароль.
// Пример: "https://jira.example.com/rest/api/2/search?jql=..." → "https://jira.example.com/***"
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "***invalid-url***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}

// HasCredentials сообщает, содержит ли URL userinfo (user:pass@host).
// Учётные данные Jira передаются отдельно, в URL их быть не должно.
func HasCredentials(rawURL string) bool {
	u, err := url.Parse(rawURL)
	return err == nil && u.User != nil
}
