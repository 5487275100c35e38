package jira

import (
	"context"
	"net/http"
	"net/url"
)

// GetAttachment fetches attachment metadata by id.
func (e *Entity) GetAttachment(ctx context.Context, attachmentID string) (*Attachment, error) {
	return execute[Attachment](ctx, e, Endpoint{
		Op:       OpGetAttachment,
		Method:   http.MethodGet,
		Path:     "/attachment/" + url.PathEscape(attachmentID),
		Expected: http.StatusOK,
	})
}

// DeleteAttachment removes an attachment. Success is 204 No Content only;
// a 200 is treated as failure.
func (e *Entity) DeleteAttachment(ctx context.Context, attachmentID string) error {
	return executeNoContent(ctx, e, Endpoint{
		Op:       OpDeleteAttachment,
		Method:   http.MethodDelete,
		Path:     "/attachment/" + url.PathEscape(attachmentID),
		Expected: http.StatusNoContent,
	})
}
