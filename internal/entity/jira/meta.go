package jira

import (
	"context"
	"fmt"
	"net/http"
)

// ListPriorities returns every priority defined on the server.
func (e *Entity) ListPriorities(ctx context.Context) ([]Priority, error) {
	out, err := execute[[]Priority](ctx, e, Endpoint{
		Op:       OpListPriorities,
		Method:   http.MethodGet,
		Path:     "/priority",
		Expected: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// ListStatuses returns every workflow status defined on the server.
func (e *Entity) ListStatuses(ctx context.Context) ([]Status, error) {
	out, err := execute[[]Status](ctx, e, Endpoint{
		Op:       OpListStatuses,
		Method:   http.MethodGet,
		Path:     "/status",
		Expected: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// GetProjectMeta fetches the create-screen metadata of one project,
// with the fields of each issue type expanded.
//
// A 200 response is accepted only if it contains exactly one project and
// that project's key equals projectKey. Anything else is an *Error.
func (e *Entity) GetProjectMeta(ctx context.Context, projectKey string) (*CreateMetaProject, error) {
	ep := Endpoint{
		Op:     OpGetProjectMeta,
		Method: http.MethodGet,
		Path:   "/issue/createmeta",
		Query: []Param{
			{Name: "projectKeys", Value: projectKey},
			{Name: "expand", Value: "projects.issuetypes.fields"},
		},
		Expected: http.StatusOK,
	}

	meta, err := execute[CreateMeta](ctx, e, ep)
	if err != nil {
		return nil, err
	}

	if len(meta.Projects) != 1 || meta.Projects[0].Key != projectKey {
		jerr := newError(ep, fmt.Sprintf("expected exactly one project matching key %q, got %d",
			projectKey, len(meta.Projects)), nil)
		jerr.StatusCode = http.StatusOK
		return nil, jerr
	}

	return &meta.Projects[0], nil
}
