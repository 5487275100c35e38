// Package jira определяет интерфейсы для работы с Jira REST API.
// Интерфейсы разделены по принципу ISP: IssueReader, IssueWriter, Searcher,
// MetadataReader, AttachmentManager, PropertyReader, UserReader.
// Композитный интерфейс Client объединяет их все.
//
// Типы данных совпадают с entity/jira: адаптер добавляет логирование и
// метрики, но не меняет форму ответов Jira.
package jira

import (
	"context"

	entity "github.com/Kargones/jira-client/internal/entity/jira"
)

// -------------------------------------------------------------------
// Структуры данных
// -------------------------------------------------------------------

type (
	Issue               = entity.Issue
	IssueFields         = entity.IssueFields
	SearchResult        = entity.SearchResult
	SearchOptions       = entity.SearchOptions
	Priority            = entity.Priority
	Status              = entity.Status
	User                = entity.User
	CreateMetaProject   = entity.CreateMetaProject
	CreateIssueRequest  = entity.CreateIssueRequest
	UpdateIssueRequest  = entity.UpdateIssueRequest
	CreatedIssue        = entity.CreatedIssue
	Comment             = entity.Comment
	Attachment          = entity.Attachment
	ApplicationProperty = entity.ApplicationProperty
	Error               = entity.Error
)

// -------------------------------------------------------------------
// Role-based интерфейсы
// -------------------------------------------------------------------

// IssueReader читает отдельные задачи.
type IssueReader interface {
	// GetIssue возвращает задачу по ключу. fields ограничивает набор полей, nil — все поля.
	GetIssue(ctx context.Context, issueKey string, fields []string) (*Issue, error)
}

// IssueWriter создаёт и изменяет задачи.
type IssueWriter interface {
	CreateIssue(ctx context.Context, req CreateIssueRequest) (*CreatedIssue, error)
	UpdateIssue(ctx context.Context, issueKey string, req UpdateIssueRequest) error
	AddComment(ctx context.Context, issueKey, body string) (*Comment, error)
}

// Searcher выполняет JQL поиск.
type Searcher interface {
	Search(ctx context.Context, jql string, opts SearchOptions) (*SearchResult, error)
	SearchByProject(ctx context.Context, projectKey string, opts SearchOptions) (*SearchResult, error)
}

// MetadataReader читает справочники Jira.
type MetadataReader interface {
	ListPriorities(ctx context.Context) ([]Priority, error)
	ListStatuses(ctx context.Context) ([]Status, error)
	// GetProjectMeta возвращает метаданные создания задач ровно одного проекта.
	GetProjectMeta(ctx context.Context, projectKey string) (*CreateMetaProject, error)
}

// AttachmentManager работает с вложениями.
type AttachmentManager interface {
	GetAttachment(ctx context.Context, attachmentID string) (*Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}

// PropertyReader читает application properties сервера.
type PropertyReader interface {
	GetApplicationProperty(ctx context.Context, key string) (*ApplicationProperty, error)
}

// UserReader возвращает сведения о пользователях.
type UserReader interface {
	// GetMyself возвращает пользователя, от имени которого выполняются запросы.
	GetMyself(ctx context.Context) (*User, error)
}

// Client — композитный интерфейс клиента Jira.
type Client interface {
	IssueReader
	IssueWriter
	Searcher
	MetadataReader
	AttachmentManager
	PropertyReader
	UserReader

	// BrowseURL возвращает ссылку на задачу в веб-интерфейсе Jira.
	BrowseURL(issueKey string) string
}
