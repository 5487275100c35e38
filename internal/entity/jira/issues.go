package jira

import (
	"context"
	"net/http"
	"net/url"
)

// GetIssue fetches a single issue by key.
// fields restricts the returned fields; nil or empty is sent as fields="".
func (e *Entity) GetIssue(ctx context.Context, issueKey string, fields []string) (*Issue, error) {
	return execute[Issue](ctx, e, Endpoint{
		Op:       OpGetIssue,
		Method:   http.MethodGet,
		Path:     "/issue/" + url.PathEscape(issueKey),
		Query:    []Param{{Name: "fields", Value: joinNames(fields)}},
		Expected: http.StatusOK,
	})
}

// CreateIssue creates an issue and returns its id, key and self link.
//
// Parameters:
//   - ctx: context for the request
//   - req: project key, summary, description, issue type id, priority id and labels
//
// Returns:
//   - *CreatedIssue: summary of the created issue
//   - error: *Error if the server did not answer 201 Created
func (e *Entity) CreateIssue(ctx context.Context, req CreateIssueRequest) (*CreatedIssue, error) {
	labels := req.Labels
	if labels == nil {
		labels = []string{}
	}

	return execute[CreatedIssue](ctx, e, Endpoint{
		Op:     OpCreateIssue,
		Method: http.MethodPost,
		Path:   "/issue",
		Body: createIssuePayload{
			Fields: createIssueFields{
				Project:     keyRef{Key: req.ProjectKey},
				Summary:     req.Summary,
				Description: req.Description,
				IssueType:   idRef{ID: req.IssueTypeID},
				Priority:    idRef{ID: req.PriorityID},
				Labels:      labels,
			},
		},
		Expected: http.StatusCreated,
	})
}

// UpdateIssue edits the fields of an existing issue. Jira answers 204 with no body.
func (e *Entity) UpdateIssue(ctx context.Context, issueKey string, req UpdateIssueRequest) error {
	fields := updateIssueFields{
		Summary:     req.Summary,
		Description: req.Description,
		Labels:      req.Labels,
	}
	if req.PriorityID != "" {
		fields.Priority = &idRef{ID: req.PriorityID}
	}

	return executeNoContent(ctx, e, Endpoint{
		Op:       OpUpdateIssue,
		Method:   http.MethodPut,
		Path:     "/issue/" + url.PathEscape(issueKey),
		Body:     updateIssuePayload{Fields: fields},
		Expected: http.StatusNoContent,
	})
}

// AddComment posts a plain-text comment on an issue.
func (e *Entity) AddComment(ctx context.Context, issueKey, body string) (*Comment, error) {
	return execute[Comment](ctx, e, Endpoint{
		Op:       OpAddComment,
		Method:   http.MethodPost,
		Path:     "/issue/" + url.PathEscape(issueKey) + "/comment",
		Body:     commentPayload{Body: body},
		Expected: http.StatusCreated,
	})
}
