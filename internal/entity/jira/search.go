package jira

import (
	"context"
	"net/http"
	"strconv"
)

// Search runs a JQL query.
// Parameters are sent in the order jql, fields, startAt, maxResults.
func (e *Entity) Search(ctx context.Context, jql string, opts SearchOptions) (*SearchResult, error) {
	return execute[SearchResult](ctx, e, Endpoint{
		Op:     OpSearch,
		Method: http.MethodGet,
		Path:   "/search",
		Query: []Param{
			{Name: "jql", Value: jql},
			{Name: "fields", Value: joinNames(opts.Fields)},
			{Name: "startAt", Value: strconv.Itoa(opts.StartAt)},
			{Name: "maxResults", Value: strconv.Itoa(opts.MaxResults)},
		},
		Expected: http.StatusOK,
	})
}

// SearchByProject returns the issues of one project.
func (e *Entity) SearchByProject(ctx context.Context, projectKey string, opts SearchOptions) (*SearchResult, error) {
	return e.Search(ctx, ProjectJQL(projectKey), opts)
}

// ProjectJQL builds the query selecting every issue of a project.
func ProjectJQL(projectKey string) string {
	return "project=" + projectKey
}
