package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/jira-client/internal/pkg/apperrors"
)

func TestNewWriter(t *testing.T) {
	assert.IsType(t, &JSONWriter{}, NewWriter("json"))
	assert.IsType(t, &JSONWriter{}, NewWriter("JSON"))
	assert.IsType(t, &TextWriter{}, NewWriter("Text"))
	assert.IsType(t, &JSONWriter{}, NewWriter("yaml"))
	assert.IsType(t, &JSONWriter{}, NewWriter(""))
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat("json"))
	assert.True(t, IsValidFormat("TEXT"))
	assert.False(t, IsValidFormat("xml"))
}

func TestJSONWriter_Success(t *testing.T) {
	var buf bytes.Buffer
	result := NewSuccess("issue get", map[string]string{"key": "PROJ-1"}).WithMetadata(42, "abc")

	require.NoError(t, NewJSONWriter().Write(&buf, result))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "success", decoded["status"])
	assert.Equal(t, "issue get", decoded["command"])
	assert.Equal(t, "PROJ-1", decoded["data"].(map[string]any)["key"])
	assert.NotContains(t, decoded, "error")

	meta := decoded["metadata"].(map[string]any)
	assert.Equal(t, float64(42), meta["duration_ms"])
	assert.Equal(t, "abc", meta["trace_id"])
	assert.Equal(t, "v1", meta["api_version"])
}

func TestJSONWriter_DoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, NewSuccess("search", "a<b>&c")))
	assert.Contains(t, buf.String(), "a<b>&c")
}

func TestNewError_UsesAppErrorCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", apperrors.NewAppError(apperrors.ErrJiraRequest, "get-issue /issue/X-1: unexpected status", nil))

	result := NewError("issue get", err, apperrors.ErrCommandExec)

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, apperrors.ErrJiraRequest, result.Error.Code)
	assert.Contains(t, result.Error.Message, "get-issue /issue/X-1: unexpected status")
}

func TestNewError_DefaultCode(t *testing.T) {
	result := NewError("issue get", errors.New("boom"), apperrors.ErrCommandExec)

	assert.Equal(t, apperrors.ErrCommandExec, result.Error.Code)
	assert.Equal(t, "boom", result.Error.Message)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	result := NewSuccess("priorities", []string{"High"}).WithMetadata(1500, "")

	require.NoError(t, NewTextWriter().Write(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "priorities: success\n")
	assert.Contains(t, out, `"High"`)
	assert.Contains(t, out, "Время выполнения: 1.5с")
}

func TestTextWriter_Error(t *testing.T) {
	var buf bytes.Buffer
	result := NewError("attachment delete", errors.New("denied"), apperrors.ErrCommandExec)

	require.NoError(t, NewTextWriter().Write(&buf, result))
	assert.Equal(t, "attachment delete: error\nError [COMMAND.EXEC_FAILED]: denied\n", buf.String())
}

func TestTextWriter_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextWriter().Write(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "999мс", formatDuration(999))
	assert.Equal(t, "2.5с", formatDuration(2500))
	assert.Equal(t, "2м 5с", formatDuration(125000))
}
