package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/jira-client/internal/adapter/jira"
	"github.com/Kargones/jira-client/internal/adapter/jira/jiratest"
	"github.com/Kargones/jira-client/internal/config"
	"github.com/Kargones/jira-client/internal/constants"
	"github.com/Kargones/jira-client/internal/di"
	entity "github.com/Kargones/jira-client/internal/entity/jira"
	"github.com/Kargones/jira-client/internal/pkg/apperrors"
	"github.com/Kargones/jira-client/internal/pkg/logging"
	"github.com/Kargones/jira-client/internal/pkg/output"
	"github.com/Kargones/jira-client/internal/pkg/testutil"
	"github.com/Kargones/jira-client/internal/pkg/tracing"
)

const testTraceID = "0123456789abcdef0123456789abcdef"

// commandRecorder запоминает вызовы RecordCommand и Push.
type commandRecorder struct {
	commands []string
	success  []bool
	pushed   int
}

func (r *commandRecorder) RecordRequest(string, string, int, time.Duration, bool) {}

func (r *commandRecorder) RecordCommand(command string, _ time.Duration, success bool) {
	r.commands = append(r.commands, command)
	r.success = append(r.success, success)
}

func (r *commandRecorder) Push(context.Context) error {
	r.pushed++
	return nil
}

func newTestCLI(client jira.Client, recorder *commandRecorder) *cli {
	c := newCLI()
	c.loadConfig = func(string) (*config.Config, error) { return &config.Config{}, nil }
	c.newApp = func(cfg *config.Config) (*di.App, error) {
		return &di.App{
			Config:           cfg,
			Logger:           logging.NewNopLogger(),
			TraceID:          testTraceID,
			MetricsCollector: recorder,
			TracerShutdown:   tracing.NewNopTracerProvider(),
			Jira:             client,
		}, nil
	}
	c.openBrowser = func(string) error { return nil }
	return c
}

func runCLI(t *testing.T, c *cli, args ...string) (int, map[string]any) {
	t.Helper()
	t.Setenv(EnvOutputFormat, "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, c)

	var result map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result), "stdout: %s", stdout.String())
	return code, result
}

func errorCode(result map[string]any) string {
	errInfo, _ := result["error"].(map[string]any)
	code, _ := errInfo["code"].(string)
	return code
}

func TestIssueGet(t *testing.T) {
	var gotKey string
	var gotFields []string
	mock := &jiratest.MockClient{
		GetIssueFunc: func(_ context.Context, key string, fields []string) (*jira.Issue, error) {
			gotKey, gotFields = key, fields
			return jiratest.IssueData(key), nil
		},
	}
	recorder := &commandRecorder{}

	code, result := runCLI(t, newTestCLI(mock, recorder), "issue", "get", "PROJ-7", "--fields", "summary,status")

	assert.Equal(t, constants.ExitOK, code)
	assert.Equal(t, "PROJ-7", gotKey)
	assert.Equal(t, []string{"summary", "status"}, gotFields)
	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "issue get", result["command"])
	assert.Equal(t, "PROJ-7", result["data"].(map[string]any)["key"])
	assert.Equal(t, testTraceID, result["metadata"].(map[string]any)["trace_id"])

	assert.Equal(t, []string{"issue get"}, recorder.commands)
	assert.Equal(t, []bool{true}, recorder.success)
	assert.Equal(t, 1, recorder.pushed)
}

func TestIssueGet_JiraError(t *testing.T) {
	mock := &jiratest.MockClient{
		GetIssueFunc: func(context.Context, string, []string) (*jira.Issue, error) {
			return nil, &jira.Error{Op: entity.OpGetIssue, Method: http.MethodGet, Path: "/issue/PROJ-404",
				Reason: "unexpected status (expected 200)", StatusCode: 404, Status: "404 Not Found"}
		},
	}
	recorder := &commandRecorder{}

	code, result := runCLI(t, newTestCLI(mock, recorder), "issue", "get", "PROJ-404")

	assert.Equal(t, constants.ExitError, code)
	assert.Equal(t, "error", result["status"])
	assert.Equal(t, apperrors.ErrJiraRequest, errorCode(result))
	assert.Contains(t, result["error"].(map[string]any)["message"], "404 Not Found")
	assert.Equal(t, []bool{false}, recorder.success)
}

func TestIssueCreate(t *testing.T) {
	var got jira.CreateIssueRequest
	mock := &jiratest.MockClient{
		CreateIssueFunc: func(_ context.Context, req jira.CreateIssueRequest) (*jira.CreatedIssue, error) {
			got = req
			return &jira.CreatedIssue{ID: "10100", Key: "PROJ-100"}, nil
		},
	}

	code, result := runCLI(t, newTestCLI(mock, &commandRecorder{}),
		"issue", "create", "--project", "PROJ", "--summary", "Login fails",
		"--type", "1", "--priority", "3", "--label", "backend", "--label", "auth")

	assert.Equal(t, constants.ExitOK, code)
	assert.Equal(t, jira.CreateIssueRequest{
		ProjectKey:  "PROJ",
		Summary:     "Login fails",
		IssueTypeID: "1",
		PriorityID:  "3",
		Labels:      []string{"backend", "auth"},
	}, got)
	assert.Equal(t, "PROJ-100", result["data"].(map[string]any)["key"])
}

func TestIssueCreate_MissingRequiredFlag(t *testing.T) {
	called := false
	mock := &jiratest.MockClient{
		CreateIssueFunc: func(context.Context, jira.CreateIssueRequest) (*jira.CreatedIssue, error) {
			called = true
			return nil, nil
		},
	}

	code, result := runCLI(t, newTestCLI(mock, &commandRecorder{}), "issue", "create", "--project", "PROJ")

	assert.Equal(t, constants.ExitError, code)
	assert.Equal(t, apperrors.ErrCommandUsage, errorCode(result))
	assert.False(t, called)
}

func TestIssueUpdate(t *testing.T) {
	var got jira.UpdateIssueRequest
	mock := &jiratest.MockClient{
		UpdateIssueFunc: func(_ context.Context, key string, req jira.UpdateIssueRequest) error {
			assert.Equal(t, "PROJ-1", key)
			got = req
			return nil
		},
	}

	code, result := runCLI(t, newTestCLI(mock, &commandRecorder{}), "issue", "update", "PROJ-1", "--priority", "2")

	assert.Equal(t, constants.ExitOK, code)
	assert.Equal(t, jira.UpdateIssueRequest{PriorityID: "2"}, got)
	assert.Equal(t, "PROJ-1", result["data"].(map[string]any)["key"])
}

func TestIssueUpdate_NothingToChange(t *testing.T) {
	code, result := runCLI(t, newTestCLI(jiratest.NewMockClient(), &commandRecorder{}), "issue", "update", "PROJ-1")

	assert.Equal(t, constants.ExitError, code)
	assert.Equal(t, apperrors.ErrCommandUsage, errorCode(result))
}

func TestIssueComment(t *testing.T) {
	code, result := runCLI(t, newTestCLI(jiratest.NewMockClient(), &commandRecorder{}),
		"issue", "comment", "PROJ-1", "Fixed in 1.2")

	assert.Equal(t, constants.ExitOK, code)
	assert.Equal(t, "Fixed in 1.2", result["data"].(map[string]any)["body"])
}

func TestIssueOpen(t *testing.T) {
	c := newTestCLI(jiratest.NewMockClient(), &commandRecorder{})
	var opened string
	c.openBrowser = func(url string) error {
		opened = url
		return nil
	}

	code, result := runCLI(t, c, "issue", "open", "PROJ-3")

	assert.Equal(t, constants.ExitOK, code)
	assert.Equal(t, "https://jira.example.com/browse/PROJ-3", opened)
	assert.Equal(t, opened, result["data"].(map[string]any)["url"])
}

func TestIssueOpen_BrowserFails(t *testing.T) {
	c := newTestCLI(jiratest.NewMockClient(), &commandRecorder{})
	c.openBrowser = func(string) error { return errors.New("no browser") }

	code, result := runCLI(t, c, "issue", "open", "PROJ-3")

	assert.Equal(t, constants.ExitError, code)
	assert.Equal(t, apperrors.ErrCommandExec, errorCode(result))
}

func TestSearch(t *testing.T) {
	var gotJQL string
	var gotOpts jira.SearchOptions
	mock := &jiratest.MockClient{
		SearchFunc: func(_ context.Context, jql string, opts jira.SearchOptions) (*jira.SearchResult, error) {
			gotJQL, gotOpts = jql, opts
			return &jira.SearchResult{Total: 0, Issues: []jira.Issue{}}, nil
		},
	}

	code, _ := runCLI(t, newTestCLI(mock, &commandRecorder{}), "search", "status = Open", "--start", "10")

	assert.Equal(t, constants.ExitOK, code)
	assert.Equal(t, "status = Open", gotJQL)
	assert.Equal(t, jira.SearchOptions{StartAt: 10, MaxResults: entity.DefaultMaxResults}, gotOpts)
}

func TestSearchProject(t *testing.T) {
	var gotKey string
	var gotOpts jira.SearchOptions
	mock := &jiratest.MockClient{
		SearchByProjectFunc: func(_ context.Context, key string, opts jira.SearchOptions) (*jira.SearchResult, error) {
			gotKey, gotOpts = key, opts
			return &jira.SearchResult{Issues: []jira.Issue{}}, nil
		},
	}

	code, result := runCLI(t, newTestCLI(mock, &commandRecorder{}), "search", "project", "PROJ", "--max", "5", "--fields", "summary")

	assert.Equal(t, constants.ExitOK, code)
	assert.Equal(t, "search project", result["command"])
	assert.Equal(t, "PROJ", gotKey)
	assert.Equal(t, jira.SearchOptions{Fields: []string{"summary"}, MaxResults: 5}, gotOpts)
}

func TestMetadataCommands(t *testing.T) {
	tests := []struct {
		args    []string
		command string
	}{
		{[]string{"priorities"}, "priorities"},
		{[]string{"statuses"}, "statuses"},
		{[]string{"project", "meta", "PROJ"}, "project meta"},
		{[]string{"property", "jira.title"}, "property"},
		{[]string{"attachment", "get", "10"}, "attachment get"},
		{[]string{"attachment", "delete", "10"}, "attachment delete"},
		{[]string{"myself"}, "myself"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			recorder := &commandRecorder{}
			code, result := runCLI(t, newTestCLI(jiratest.NewMockClient(), recorder), tt.args...)

			assert.Equal(t, constants.ExitOK, code)
			assert.Equal(t, tt.command, result["command"])
			assert.NotNil(t, result["data"])
			assert.Equal(t, []string{tt.command}, recorder.commands)
		})
	}
}

func TestProjectMeta_PostCheckFailure(t *testing.T) {
	mock := &jiratest.MockClient{
		GetProjectMetaFunc: func(context.Context, string) (*jira.CreateMetaProject, error) {
			return nil, &jira.Error{Op: entity.OpGetProjectMeta, Reason: `expected exactly one project matching key "NOPE", got 0`, StatusCode: 200}
		},
	}

	code, result := runCLI(t, newTestCLI(mock, &commandRecorder{}), "project", "meta", "NOPE")

	assert.Equal(t, constants.ExitError, code)
	assert.Equal(t, apperrors.ErrJiraRequest, errorCode(result))
}

func TestConfigError(t *testing.T) {
	c := newTestCLI(jiratest.NewMockClient(), &commandRecorder{})
	c.loadConfig = func(string) (*config.Config, error) {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate, "конфигурация Jira", config.ErrJiraURLRequired)
	}

	code, result := runCLI(t, c, "myself")

	assert.Equal(t, constants.ExitError, code)
	assert.Equal(t, apperrors.ErrConfigValidate, errorCode(result))
}

func TestUnknownCommand(t *testing.T) {
	code, result := runCLI(t, newTestCLI(jiratest.NewMockClient(), &commandRecorder{}), "frobnicate")

	assert.Equal(t, constants.ExitError, code)
	assert.Equal(t, apperrors.ErrCommandUsage, errorCode(result))
}

func TestInvalidOutputFormat(t *testing.T) {
	code, result := runCLI(t, newTestCLI(jiratest.NewMockClient(), &commandRecorder{}), "myself", "-o", "xml")

	assert.Equal(t, constants.ExitError, code)
	assert.Equal(t, apperrors.ErrCommandUsage, errorCode(result))
}

func TestTextOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"priorities", "--output", "text"}, &stdout, &stderr,
		newTestCLI(jiratest.NewMockClient(), &commandRecorder{}))

	assert.Equal(t, constants.ExitOK, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "priorities: success\n"))
	assert.Contains(t, stdout.String(), `"Highest"`)
}

func TestLogin(t *testing.T) {
	t.Setenv("JIRA_TOKEN", "")
	path := filepath.Join(t.TempDir(), "jiractl", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0600))

	c := newCLI()
	c.newApp = func(*config.Config) (*di.App, error) {
		t.Fatal("login не должен собирать клиент Jira")
		return nil, nil
	}
	stored := map[string]string{}
	c.storeSecret = func(service, user, secret string) error {
		stored[service+"/"+user] = secret
		return nil
	}

	var stdout, stderr bytes.Buffer
	root := c.newRootCmd()
	root.SetArgs([]string{"login", "--url", "https://jira.example.com/", "--user", "jdoe", "--config", path})
	root.SetIn(strings.NewReader("s3cret-token\n"))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Equal(t, map[string]string{"jiractl/jdoe": "s3cret-token"}, stored)
	assert.NotContains(t, stdout.String(), "s3cret-token")

	saved, err := config.ReadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://jira.example.com", saved.Jira.URL)
	assert.Equal(t, "jdoe", saved.Jira.User)
	assert.Equal(t, "jiractl", saved.Jira.KeyringService)
	assert.Empty(t, saved.Jira.Token)
	assert.Equal(t, "debug", saved.Logging.Level, "остальные секции файла сохраняются")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "s3cret-token")
}

func TestLogin_NoToken(t *testing.T) {
	t.Setenv("JIRA_TOKEN", "")
	c := newCLI()
	c.storeSecret = func(string, string, string) error {
		t.Fatal("пустой секрет не сохраняется")
		return nil
	}

	var stdout, stderr bytes.Buffer
	root := c.newRootCmd()
	root.SetArgs([]string{"login", "--url", "https://jira.example.com", "--user", "jdoe",
		"--config", filepath.Join(t.TempDir(), "config.yaml")})
	root.SetIn(strings.NewReader(""))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCommandUsage, apperrors.CodeOf(err, ""))
	assert.ErrorIs(t, err, config.ErrJiraTokenRequired)
}

// TestEndToEnd проходит весь путь: файл конфигурации, DI, HTTP к фейковому Jira.
func TestEndToEnd(t *testing.T) {
	server := testutil.NewJiraServer(t, map[string]testutil.Route{
		"GET /priority":         {Status: http.StatusOK, Body: `[{"id":"1","name":"Blocker"}]`},
		"DELETE /attachment/42": {Status: http.StatusOK},
	})

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"jira:\n  url: "+server.URL+"\n  user: robot\n  token: t0ken\nlogging:\n  level: error\n"), 0600))

	code, result := runCLI(t, newCLI(), "priorities", "--config", path)
	assert.Equal(t, constants.ExitOK, code)
	data := result["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Blocker", data[0].(map[string]any)["name"])

	code, result = runCLI(t, newCLI(), "attachment", "delete", "42", "--config", path)
	assert.Equal(t, constants.ExitError, code, "200 вместо 204 считается ошибкой")
	assert.Equal(t, apperrors.ErrJiraRequest, errorCode(result))

	requests := server.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "robot", requests[0].User)
	assert.Equal(t, http.MethodDelete, requests[1].Method)
}

func TestRun_WritesJSONByDefault(t *testing.T) {
	out := testutil.CaptureStdout(t, func() {
		code := run(context.Background(), []string{"statuses"}, os.Stdout, os.Stderr,
			newTestCLI(jiratest.NewMockClient(), &commandRecorder{}))
		assert.Equal(t, constants.ExitOK, code)
	})

	var result output.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, output.StatusSuccess, result.Status)
	assert.Equal(t, output.APIVersion, result.Metadata.APIVersion)
}
