package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// JiraServer — фейковый Jira REST API для тестов верхних слоёв.
// Маршрут задаётся строкой "METHOD /path" относительно /rest/api/2.
type JiraServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]Route
	requests []RecordedRequest
}

// Route описывает ответ фейкового сервера.
type Route struct {
	Status int
	Body   string
}

// RecordedRequest — запрос, полученный фейковым сервером.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
	User     string
}

// NewJiraServer запускает фейковый сервер; он закрывается в t.Cleanup.
// Неизвестный маршрут отвечает 404 с телом в формате Jira.
func NewJiraServer(t *testing.T, routes map[string]Route) *JiraServer {
	t.Helper()
	js := &JiraServer{routes: routes}
	js.Server = httptest.NewServer(http.HandlerFunc(js.serve))
	t.Cleanup(js.Close)
	return js
}

func (js *JiraServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	user, _, _ := r.BasicAuth()

	path := strings.TrimPrefix(r.URL.Path, "/rest/api/2")

	js.mu.Lock()
	js.requests = append(js.requests, RecordedRequest{
		Method:   r.Method,
		Path:     path,
		RawQuery: r.URL.RawQuery,
		Body:     string(body),
		User:     user,
	})
	route, ok := js.routes[r.Method+" "+path]
	js.mu.Unlock()

	if !ok {
		route = Route{Status: http.StatusNotFound, Body: `{"errorMessages":["not found"],"errors":{}}`}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.Status)
	_, _ = io.WriteString(w, route.Body)
}

// Requests возвращает копию полученных запросов.
func (js *JiraServer) Requests() []RecordedRequest {
	js.mu.Lock()
	defer js.mu.Unlock()
	out := make([]RecordedRequest, len(js.requests))
	copy(out, js.requests)
	return out
}
