package jira

import (
	"context"
	"net/http"
)

// GetMyself returns the authenticated user. Useful as a connection check.
func (e *Entity) GetMyself(ctx context.Context) (*User, error) {
	return execute[User](ctx, e, Endpoint{
		Op:       OpGetMyself,
		Method:   http.MethodGet,
		Path:     "/myself",
		Expected: http.StatusOK,
	})
}
