package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Kargones/jira-client/internal/entity/jira"

// Failure reasons carried by Error.Reason.
const (
	ReasonNotCompleted     = "request did not complete"
	ReasonBuildFailed      = "failed to build request"
	ReasonEncodeFailed     = "failed to encode request body"
	ReasonReadFailed       = "failed to read response body"
	ReasonUnexpectedStatus = "unexpected status"
	ReasonDecodeFailed     = "failed to decode response body"
)

// Param is a single query parameter. Order of Params is preserved on the wire.
type Param struct {
	Name  string
	Value string
}

// Endpoint describes one remote call: where it goes, what it carries and
// which status means success. A descriptor is built per call and never shared.
type Endpoint struct {
	// Op is the operation name used in errors, logs and spans.
	Op string
	// Method is the HTTP method.
	Method string
	// Path is relative to the API root, e.g. "/issue/PROJ-1".
	Path string
	// Query holds the ordered query parameters.
	Query []Param
	// Body is JSON-encoded when non-nil.
	Body any
	// Expected is the only status code treated as success.
	Expected int
}

// rawQuery encodes Query in declaration order.
// url.Values is not used because it sorts keys.
func (ep Endpoint) rawQuery() string {
	if len(ep.Query) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ep.Query))
	for _, p := range ep.Query {
		parts = append(parts, url.QueryEscape(p.Name)+"="+url.QueryEscape(p.Value))
	}
	return strings.Join(parts, "&")
}

// joinNames renders a list-of-names parameter. Absent lists become "".
func joinNames(names []string) string {
	return strings.Join(names, ",")
}

// response is a completed exchange whose status matched the endpoint.
type response struct {
	statusCode int
	status     string
	body       []byte
}

// roundTrip performs exactly one HTTP exchange for ep.
// Any outcome other than a response with ep.Expected status is an *Error.
func (e *Entity) roundTrip(ctx context.Context, ep Endpoint) (*response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "jira."+ep.Op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(ep.Method),
			semconv.URLPath(APIPrefix+ep.Path),
			attribute.String("jira.operation", ep.Op),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := e.send(ctx, ep)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Reason)
		e.logger.Debug("Jira request failed",
			slog.String("operation", ep.Op),
			slog.String("method", ep.Method),
			slog.String("path", ep.Path),
			slog.Int("status", err.StatusCode),
			slog.Duration("duration", time.Since(start)),
			slog.String("reason", err.Reason),
		)
		if err.StatusCode != 0 {
			span.SetAttributes(semconv.HTTPResponseStatusCode(err.StatusCode))
		}
		return nil, err
	}

	span.SetAttributes(semconv.HTTPResponseStatusCode(resp.statusCode))
	e.logger.Debug("Jira request completed",
		slog.String("operation", ep.Op),
		slog.String("method", ep.Method),
		slog.String("path", ep.Path),
		slog.Int("status", resp.statusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return resp, nil
}

// send builds, dispatches and reads the request. It returns *Error rather
// than error so roundTrip can inspect the failure without type assertions.
func (e *Entity) send(ctx context.Context, ep Endpoint) (*response, *Error) {
	var bodyReader io.Reader
	if ep.Body != nil {
		payload, err := json.Marshal(ep.Body)
		if err != nil {
			return nil, newError(ep, ReasonEncodeFailed, err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	target := e.baseURL + APIPrefix + ep.Path
	if q := ep.rawQuery(); q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, bodyReader)
	if err != nil {
		return nil, newError(ep, ReasonBuildFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, newError(ep, ReasonNotCompleted, err)
	}
	defer func() {
		if errBody := resp.Body.Close(); errBody != nil {
			e.logger.Error("Failed to close response body", "error", errBody)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		jerr := newError(ep, ReasonReadFailed, err)
		jerr.StatusCode = resp.StatusCode
		jerr.Status = resp.Status
		return nil, jerr
	}

	if resp.StatusCode != ep.Expected {
		jerr := newError(ep, fmt.Sprintf("%s (expected %d)", ReasonUnexpectedStatus, ep.Expected), nil)
		jerr.StatusCode = resp.StatusCode
		jerr.Status = resp.Status
		jerr.Body = string(respBody)
		return nil, jerr
	}

	return &response{
		statusCode: resp.StatusCode,
		status:     resp.Status,
		body:       respBody,
	}, nil
}

// execute runs ep and decodes the success body into T.
func execute[T any](ctx context.Context, e *Entity, ep Endpoint) (*T, error) {
	resp, err := e.roundTrip(ctx, ep)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return nil, &Error{
			Op:         ep.Op,
			Method:     ep.Method,
			Path:       ep.Path,
			Reason:     ReasonDecodeFailed,
			StatusCode: resp.statusCode,
			Status:     resp.status,
			Body:       string(resp.body),
			Cause:      err,
		}
	}
	return &out, nil
}

// executeNoContent runs ep and checks the status only. The body is ignored.
func executeNoContent(ctx context.Context, e *Entity, ep Endpoint) error {
	_, err := e.roundTrip(ctx, ep)
	return err
}
