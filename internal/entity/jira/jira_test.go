package jira

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/jira-client/internal/config"
)

const (
	testUser  = "jdoe"
	testToken = "s3cret"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEntity starts an httptest server with handler and returns an
// Entity pointing at it through the real basic-auth transport.
func newTestEntity(t *testing.T, handler http.HandlerFunc) *Entity {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.JiraConfig{
		URL:     server.URL,
		User:    testUser,
		Token:   testToken,
		Timeout: 5 * time.Second,
	}
	return NewEntity(cfg, discardLogger())
}

// respondJSON returns a handler answering every request with status and body.
func respondJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestNewEntity(t *testing.T) {
	cfg := &config.JiraConfig{
		URL:     "https://jira.example.com/",
		User:    testUser,
		Token:   testToken,
		Timeout: 10 * time.Second,
	}

	entity := NewEntity(cfg, discardLogger())

	require.NotNil(t, entity)
	assert.Equal(t, "https://jira.example.com", entity.BaseURL())

	client, ok := entity.client.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, cfg.Timeout, client.Timeout)
	assert.IsType(t, &basicAuthTransport{}, client.Transport)
}

func TestNewEntity_WarnsOnPlainHTTP(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	NewEntity(&config.JiraConfig{URL: "http://jira.local", User: "u", Token: "t", Timeout: time.Second}, logger)
	assert.Contains(t, buf.String(), "not https")

	buf.Reset()
	NewEntity(&config.JiraConfig{URL: "https://jira.local", User: "u", Token: "t", Timeout: time.Second}, logger)
	assert.Empty(t, buf.String())
}

func TestNewEntityWithDoer_NilLogger(t *testing.T) {
	entity := NewEntityWithDoer("https://jira.example.com", http.DefaultClient, nil)
	assert.NotNil(t, entity.logger)
}

func TestEntity_BrowseURL(t *testing.T) {
	entity := NewEntityWithDoer("https://jira.example.com/", http.DefaultClient, discardLogger())
	assert.Equal(t, "https://jira.example.com/browse/PROJ-7", entity.BrowseURL("PROJ-7"))
}

func TestBasicAuthTransport_AttachesCredentials(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	entity := newTestEntity(t, func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		respondJSON(http.StatusOK, `{"name":"jdoe"}`)(w, r)
	})

	_, err := entity.GetMyself(context.Background())
	require.NoError(t, err)

	assert.True(t, gotOK)
	assert.Equal(t, testUser, gotUser)
	assert.Equal(t, testToken, gotPass)
}

func TestBasicAuthTransport_DoesNotMutateRequest(t *testing.T) {
	server := httptest.NewServer(respondJSON(http.StatusOK, `{}`))
	defer server.Close()

	transport := newBasicAuthTransport("u", "p", nil)
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
}
