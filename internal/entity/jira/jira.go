// Package jira provides the low-level implementation of the Jira REST API v2 entity.
// This package contains the HTTP binding with basic authentication, the request
// executor that normalizes every failure into a single error kind, and one method
// per supported remote operation.
package jira

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Kargones/jira-client/internal/config"
)

// APIPrefix is the path of the REST API v2 root relative to the server URL.
const APIPrefix = "/rest/api/2"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=jira.go -destination=jiramock/doer.gen.go -package=jiramock

// Doer executes a single HTTP request.
// *http.Client satisfies it; tests substitute a mock.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Entity represents the low-level interaction with Jira REST API.
// It holds only immutable configuration and a concurrency-safe Doer,
// so a single instance may be shared across goroutines.
type Entity struct {
	// client executes requests with basic auth already attached.
	client Doer

	// baseURL is the server URL without a trailing slash.
	baseURL string

	// logger is the structured logger for this entity.
	logger *slog.Logger
}

// NewEntity creates a new instance of Entity.
// This function builds an HTTP client whose transport attaches basic
// authentication to every request and applies the configured timeout.
//
// Parameters:
//   - cfg: Jira configuration settings
//   - logger: structured logger instance
//
// Returns:
//   - *Entity: initialized Jira entity
func NewEntity(cfg *config.JiraConfig, logger *slog.Logger) *Entity {
	client := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: newBasicAuthTransport(cfg.User, cfg.Token, nil),
	}

	if logger == nil {
		logger = slog.Default()
	}

	if !cfg.IsSecure() {
		logger.Warn("Jira URL is not https, server may reject basic authentication",
			slog.String("scheme", strings.SplitN(cfg.URL, ":", 2)[0]))
	}

	return NewEntityWithDoer(cfg.URL, client, logger)
}

// NewEntityWithDoer creates an Entity over an arbitrary Doer.
// The Doer is responsible for authentication.
func NewEntityWithDoer(baseURL string, doer Doer, logger *slog.Logger) *Entity {
	if logger == nil {
		logger = slog.Default()
	}
	return &Entity{
		client:  doer,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// BaseURL returns the server URL the entity talks to.
func (e *Entity) BaseURL() string {
	return e.baseURL
}

// BrowseURL returns the web UI address of an issue.
func (e *Entity) BrowseURL(issueKey string) string {
	return e.baseURL + "/browse/" + issueKey
}

// Operation names. They appear in Error.Op, span names and metric labels.
const (
	OpGetIssue               = "get-issue"
	OpCreateIssue            = "create-issue"
	OpUpdateIssue            = "update-issue"
	OpAddComment             = "add-comment"
	OpSearch                 = "search"
	OpListPriorities         = "list-priorities"
	OpListStatuses           = "list-statuses"
	OpGetProjectMeta         = "get-project-meta"
	OpGetApplicationProperty = "get-application-property"
	OpGetAttachment          = "get-attachment"
	OpDeleteAttachment       = "delete-attachment"
	OpGetMyself              = "get-myself"
)
