// Package jiratest предоставляет тестовые утилиты для пакета jira:
// мок-реализацию Client с функциональными полями и тестовые данные.
//
// Функции-потребители должны принимать минимально необходимый интерфейс,
// MockClient подходит для любого из них:
//
//	mock := &jiratest.MockClient{
//	    GetIssueFunc: func(ctx context.Context, key string, _ []string) (*jira.Issue, error) {
//	        return nil, &jira.Error{Op: "get-issue", Reason: "unexpected status", StatusCode: 404}
//	    },
//	}
package jiratest

import (
	"context"
	"fmt"

	"github.com/Kargones/jira-client/internal/adapter/jira"
)

// Compile-time проверки реализации интерфейсов
var (
	_ jira.Client            = (*MockClient)(nil)
	_ jira.IssueReader       = (*MockClient)(nil)
	_ jira.IssueWriter       = (*MockClient)(nil)
	_ jira.Searcher          = (*MockClient)(nil)
	_ jira.MetadataReader    = (*MockClient)(nil)
	_ jira.AttachmentManager = (*MockClient)(nil)
	_ jira.PropertyReader    = (*MockClient)(nil)
	_ jira.UserReader        = (*MockClient)(nil)
)

// MockClient — мок jira.Client. Незаданная функция возвращает тестовые данные.
type MockClient struct {
	GetIssueFunc               func(ctx context.Context, issueKey string, fields []string) (*jira.Issue, error)
	CreateIssueFunc            func(ctx context.Context, req jira.CreateIssueRequest) (*jira.CreatedIssue, error)
	UpdateIssueFunc            func(ctx context.Context, issueKey string, req jira.UpdateIssueRequest) error
	AddCommentFunc             func(ctx context.Context, issueKey, body string) (*jira.Comment, error)
	SearchFunc                 func(ctx context.Context, jql string, opts jira.SearchOptions) (*jira.SearchResult, error)
	SearchByProjectFunc        func(ctx context.Context, projectKey string, opts jira.SearchOptions) (*jira.SearchResult, error)
	ListPrioritiesFunc         func(ctx context.Context) ([]jira.Priority, error)
	ListStatusesFunc           func(ctx context.Context) ([]jira.Status, error)
	GetProjectMetaFunc         func(ctx context.Context, projectKey string) (*jira.CreateMetaProject, error)
	GetAttachmentFunc          func(ctx context.Context, attachmentID string) (*jira.Attachment, error)
	DeleteAttachmentFunc       func(ctx context.Context, attachmentID string) error
	GetApplicationPropertyFunc func(ctx context.Context, key string) (*jira.ApplicationProperty, error)
	GetMyselfFunc              func(ctx context.Context) (*jira.User, error)
	BrowseURLFunc              func(issueKey string) string
}

// NewMockClient создаёт mock с поведением по умолчанию.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// IssueData возвращает тестовую задачу.
func IssueData(key string) *jira.Issue {
	return &jira.Issue{
		ID:  "10001",
		Key: key,
		Fields: jira.IssueFields{
			Summary: "Test issue",
			Status:  &jira.Status{ID: "1", Name: "Open"},
		},
	}
}

// PrioritiesData возвращает тестовый список приоритетов.
func PrioritiesData() []jira.Priority {
	return []jira.Priority{
		{ID: "1", Name: "Highest"},
		{ID: "3", Name: "Medium"},
	}
}

// StatusesData возвращает тестовый список статусов.
func StatusesData() []jira.Status {
	return []jira.Status{
		{ID: "1", Name: "Open"},
		{ID: "6", Name: "Closed"},
	}
}

func (m *MockClient) GetIssue(ctx context.Context, issueKey string, fields []string) (*jira.Issue, error) {
	if m.GetIssueFunc != nil {
		return m.GetIssueFunc(ctx, issueKey, fields)
	}
	return IssueData(issueKey), nil
}

func (m *MockClient) CreateIssue(ctx context.Context, req jira.CreateIssueRequest) (*jira.CreatedIssue, error) {
	if m.CreateIssueFunc != nil {
		return m.CreateIssueFunc(ctx, req)
	}
	return &jira.CreatedIssue{ID: "10002", Key: req.ProjectKey + "-2"}, nil
}

func (m *MockClient) UpdateIssue(ctx context.Context, issueKey string, req jira.UpdateIssueRequest) error {
	if m.UpdateIssueFunc != nil {
		return m.UpdateIssueFunc(ctx, issueKey, req)
	}
	return nil
}

func (m *MockClient) AddComment(ctx context.Context, issueKey, body string) (*jira.Comment, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, issueKey, body)
	}
	return &jira.Comment{ID: "100", Body: body}, nil
}

func (m *MockClient) Search(ctx context.Context, jql string, opts jira.SearchOptions) (*jira.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, jql, opts)
	}
	return &jira.SearchResult{MaxResults: opts.MaxResults, Issues: []jira.Issue{}}, nil
}

func (m *MockClient) SearchByProject(ctx context.Context, projectKey string, opts jira.SearchOptions) (*jira.SearchResult, error) {
	if m.SearchByProjectFunc != nil {
		return m.SearchByProjectFunc(ctx, projectKey, opts)
	}
	return m.Search(ctx, "project="+projectKey, opts)
}

func (m *MockClient) ListPriorities(ctx context.Context) ([]jira.Priority, error) {
	if m.ListPrioritiesFunc != nil {
		return m.ListPrioritiesFunc(ctx)
	}
	return PrioritiesData(), nil
}

func (m *MockClient) ListStatuses(ctx context.Context) ([]jira.Status, error) {
	if m.ListStatusesFunc != nil {
		return m.ListStatusesFunc(ctx)
	}
	return StatusesData(), nil
}

func (m *MockClient) GetProjectMeta(ctx context.Context, projectKey string) (*jira.CreateMetaProject, error) {
	if m.GetProjectMetaFunc != nil {
		return m.GetProjectMetaFunc(ctx, projectKey)
	}
	return &jira.CreateMetaProject{ID: "10000", Key: projectKey, Name: projectKey}, nil
}

func (m *MockClient) GetAttachment(ctx context.Context, attachmentID string) (*jira.Attachment, error) {
	if m.GetAttachmentFunc != nil {
		return m.GetAttachmentFunc(ctx, attachmentID)
	}
	return &jira.Attachment{ID: attachmentID, Filename: "file.txt"}, nil
}

func (m *MockClient) DeleteAttachment(ctx context.Context, attachmentID string) error {
	if m.DeleteAttachmentFunc != nil {
		return m.DeleteAttachmentFunc(ctx, attachmentID)
	}
	return nil
}

func (m *MockClient) GetApplicationProperty(ctx context.Context, key string) (*jira.ApplicationProperty, error) {
	if m.GetApplicationPropertyFunc != nil {
		return m.GetApplicationPropertyFunc(ctx, key)
	}
	return &jira.ApplicationProperty{ID: key, Key: key, Value: "true"}, nil
}

func (m *MockClient) GetMyself(ctx context.Context) (*jira.User, error) {
	if m.GetMyselfFunc != nil {
		return m.GetMyselfFunc(ctx)
	}
	return &jira.User{Name: "jdoe", DisplayName: "John Doe", Active: true}, nil
}

func (m *MockClient) BrowseURL(issueKey string) string {
	if m.BrowseURLFunc != nil {
		return m.BrowseURLFunc(issueKey)
	}
	return fmt.Sprintf("https://jira.example.com/browse/%s", issueKey)
}
