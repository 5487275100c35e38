package jira

import (
	"context"
	"errors"
	"net/http"
	"time"

	entity "github.com/Kargones/jira-client/internal/entity/jira"
	"github.com/Kargones/jira-client/internal/pkg/logging"
	"github.com/Kargones/jira-client/internal/pkg/metrics"
)

// Compile-time проверка реализации интерфейса.
var _ Client = (*APIClient)(nil)

// APIClient реализует Client, делегируя вызовы entity/jira.Entity.
// Каждое обращение логируется и записывается в metrics.Collector.
// Ошибки entity возвращаются без изменений.
type APIClient struct {
	entity  *entity.Entity
	logger  logging.Logger
	metrics metrics.Collector
}

// NewAPIClient создаёт APIClient. nil logger и collector заменяются no-op реализациями.
func NewAPIClient(e *entity.Entity, logger logging.Logger, collector metrics.Collector) *APIClient {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if collector == nil {
		collector = metrics.NewNopCollector()
	}
	return &APIClient{
		entity:  e,
		logger:  logger,
		metrics: collector,
	}
}

// observe записывает результат обращения к Jira.
// Статус берётся из *entity.Error; для успешного вызова это okStatus.
func (c *APIClient) observe(op, method string, okStatus int, start time.Time, err error) {
	duration := time.Since(start)
	status := okStatus

	if err != nil {
		status = 0
		var jiraErr *entity.Error
		if errors.As(err, &jiraErr) {
			status = jiraErr.StatusCode
		}
		c.logger.Warn("Запрос к Jira завершился ошибкой",
			"operation", op,
			"status", status,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
	} else {
		c.logger.Debug("Запрос к Jira выполнен",
			"operation", op,
			"status", status,
			"duration_ms", duration.Milliseconds(),
		)
	}

	c.metrics.RecordRequest(op, method, status, duration, err == nil)
}

// -------------------------------------------------------------------
// IssueReader / IssueWriter
// -------------------------------------------------------------------

func (c *APIClient) GetIssue(ctx context.Context, issueKey string, fields []string) (*Issue, error) {
	start := time.Now()
	issue, err := c.entity.GetIssue(ctx, issueKey, fields)
	c.observe(entity.OpGetIssue, http.MethodGet, http.StatusOK, start, err)
	return issue, err
}

func (c *APIClient) CreateIssue(ctx context.Context, req CreateIssueRequest) (*CreatedIssue, error) {
	start := time.Now()
	created, err := c.entity.CreateIssue(ctx, req)
	c.observe(entity.OpCreateIssue, http.MethodPost, http.StatusCreated, start, err)
	if err == nil {
		c.logger.Info("Задача создана", "key", created.Key, "project", req.ProjectKey)
	}
	return created, err
}

func (c *APIClient) UpdateIssue(ctx context.Context, issueKey string, req UpdateIssueRequest) error {
	start := time.Now()
	err := c.entity.UpdateIssue(ctx, issueKey, req)
	c.observe(entity.OpUpdateIssue, http.MethodPut, http.StatusNoContent, start, err)
	return err
}

func (c *APIClient) AddComment(ctx context.Context, issueKey, body string) (*Comment, error) {
	start := time.Now()
	comment, err := c.entity.AddComment(ctx, issueKey, body)
	c.observe(entity.OpAddComment, http.MethodPost, http.StatusCreated, start, err)
	return comment, err
}

// -------------------------------------------------------------------
// Searcher
// -------------------------------------------------------------------

func (c *APIClient) Search(ctx context.Context, jql string, opts SearchOptions) (*SearchResult, error) {
	start := time.Now()
	result, err := c.entity.Search(ctx, jql, opts)
	c.observe(entity.OpSearch, http.MethodGet, http.StatusOK, start, err)
	return result, err
}

func (c *APIClient) SearchByProject(ctx context.Context, projectKey string, opts SearchOptions) (*SearchResult, error) {
	start := time.Now()
	result, err := c.entity.SearchByProject(ctx, projectKey, opts)
	c.observe(entity.OpSearch, http.MethodGet, http.StatusOK, start, err)
	return result, err
}

// -------------------------------------------------------------------
// MetadataReader
// -------------------------------------------------------------------

func (c *APIClient) ListPriorities(ctx context.Context) ([]Priority, error) {
	start := time.Now()
	priorities, err := c.entity.ListPriorities(ctx)
	c.observe(entity.OpListPriorities, http.MethodGet, http.StatusOK, start, err)
	return priorities, err
}

func (c *APIClient) ListStatuses(ctx context.Context) ([]Status, error) {
	start := time.Now()
	statuses, err := c.entity.ListStatuses(ctx)
	c.observe(entity.OpListStatuses, http.MethodGet, http.StatusOK, start, err)
	return statuses, err
}

func (c *APIClient) GetProjectMeta(ctx context.Context, projectKey string) (*CreateMetaProject, error) {
	start := time.Now()
	project, err := c.entity.GetProjectMeta(ctx, projectKey)
	c.observe(entity.OpGetProjectMeta, http.MethodGet, http.StatusOK, start, err)
	return project, err
}

// -------------------------------------------------------------------
// AttachmentManager / PropertyReader / UserReader
// -------------------------------------------------------------------

func (c *APIClient) GetAttachment(ctx context.Context, attachmentID string) (*Attachment, error) {
	start := time.Now()
	attachment, err := c.entity.GetAttachment(ctx, attachmentID)
	c.observe(entity.OpGetAttachment, http.MethodGet, http.StatusOK, start, err)
	return attachment, err
}

func (c *APIClient) DeleteAttachment(ctx context.Context, attachmentID string) error {
	start := time.Now()
	err := c.entity.DeleteAttachment(ctx, attachmentID)
	c.observe(entity.OpDeleteAttachment, http.MethodDelete, http.StatusNoContent, start, err)
	if err == nil {
		c.logger.Info("Вложение удалено", "attachment_id", attachmentID)
	}
	return err
}

func (c *APIClient) GetApplicationProperty(ctx context.Context, key string) (*ApplicationProperty, error) {
	start := time.Now()
	property, err := c.entity.GetApplicationProperty(ctx, key)
	c.observe(entity.OpGetApplicationProperty, http.MethodGet, http.StatusOK, start, err)
	return property, err
}

func (c *APIClient) GetMyself(ctx context.Context) (*User, error) {
	start := time.Now()
	user, err := c.entity.GetMyself(ctx)
	c.observe(entity.OpGetMyself, http.MethodGet, http.StatusOK, start, err)
	return user, err
}

// BrowseURL возвращает ссылку на задачу в веб-интерфейсе Jira.
func (c *APIClient) BrowseURL(issueKey string) string {
	return c.entity.BrowseURL(issueKey)
}
