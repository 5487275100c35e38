package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/jira-client/internal/pkg/apperrors"
)

const testConfigYAML = `
jira:
  url: https://jira.example.com
  user: jdoe
  token: file-token
  timeout: 15s
logging:
  level: debug
  format: json
metrics:
  enabled: true
  pushgatewayUrl: http://pushgateway:9091
tracing:
  enabled: true
  endpoint: http://jaeger:4318
  samplingRate: 0.5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "ожидался AppError, получено %T", err)
	return appErr.Code
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, testConfigYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, "https://jira.example.com", cfg.Jira.URL)
	assert.Equal(t, "jdoe", cfg.Jira.User)
	assert.Equal(t, "file-token", cfg.Jira.Token)
	assert.Equal(t, 15*time.Second, cfg.Jira.Timeout)

	assert.Equal(t, "debug", cfg.LoggingConfig.Level)
	assert.Equal(t, "json", cfg.LoggingConfig.Format)
	assert.Equal(t, 20, cfg.LoggingConfig.MaxSize, "незаданные поля получают env-default")

	assert.True(t, cfg.MetricsConfig.Enabled)
	assert.Equal(t, "jiractl", cfg.MetricsConfig.JobName)
	assert.Equal(t, 10*time.Second, cfg.MetricsConfig.Timeout)

	assert.True(t, cfg.TracingConfig.Enabled)
	assert.Equal(t, 0.5, cfg.TracingConfig.SamplingRate)
	assert.Equal(t, "jiractl", cfg.TracingConfig.ServiceName)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, testConfigYAML)
	t.Setenv("JIRA_USER", "robot")
	t.Setenv("JIRA_TOKEN", "env-token")
	t.Setenv("JC_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "robot", cfg.Jira.User)
	assert.Equal(t, "env-token", cfg.Jira.Token)
	assert.Equal(t, "https://jira.example.com", cfg.Jira.URL)
	assert.Equal(t, "error", cfg.LoggingConfig.Level)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t, testConfigYAML)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoad_MissingDefaultFileUsesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("JIRA_URL", "https://jira.example.com")
	t.Setenv("JIRA_USER", "jdoe")
	t.Setenv("JIRA_TOKEN", "secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.ConfigPath)
	assert.Nil(t, cfg.AppConfig)
	assert.Equal(t, 30*time.Second, cfg.Jira.Timeout)
	assert.Equal(t, "warn", cfg.LoggingConfig.Level)
	assert.False(t, cfg.MetricsConfig.Enabled)
	assert.False(t, cfg.TracingConfig.Enabled)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConfigLoad, appErrorCode(t, err))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "jira: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConfigParse, appErrorCode(t, err))
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "no url",
			yaml:    "jira:\n  user: jdoe\n  token: x\n",
			wantErr: ErrJiraURLRequired,
		},
		{
			name:    "credentials in url",
			yaml:    "jira:\n  url: https://jdoe:pw@jira.example.com\n  user: jdoe\n  token: x\n",
			wantErr: ErrJiraURLHasCredentials,
		},
		{
			name:    "no token",
			yaml:    "jira:\n  url: https://jira.example.com\n  user: jdoe\n",
			wantErr: ErrJiraTokenRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrConfigValidate, appErrorCode(t, err))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MetricsEnabledWithoutURL(t *testing.T) {
	path := writeConfig(t, "jira:\n  url: https://jira.example.com\n  user: jdoe\n  token: x\n")
	t.Setenv("JC_METRICS_ENABLED", "true")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConfigValidate, appErrorCode(t, err))
}

func TestSaveAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jiractl", "config.yaml")
	appConfig := &AppConfig{
		Jira: JiraConfig{
			URL:            "https://jira.example.com",
			User:           "jdoe",
			Token:          "must-not-be-saved",
			Timeout:        20 * time.Second,
			KeyringService: "jiractl",
		},
	}

	require.NoError(t, SaveAppConfig(path, appConfig))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "must-not-be-saved")
	assert.Equal(t, "must-not-be-saved", appConfig.Jira.Token, "исходная структура не меняется")

	loaded, err := loadAppConfig(getSlog(""), path, true)
	require.NoError(t, err)
	assert.Equal(t, "https://jira.example.com", loaded.Jira.URL)
	assert.Equal(t, 20*time.Second, loaded.Jira.Timeout)
	assert.Equal(t, "jiractl", loaded.Jira.KeyringService)
}

func TestSaveAppConfig_EmptyPath(t *testing.T) {
	err := SaveAppConfig("", &AppConfig{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConfigLoad, appErrorCode(t, err))
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	path, explicit := ResolveConfigPath("/etc/jiractl.yaml")
	assert.Equal(t, "/etc/jiractl.yaml", path)
	assert.True(t, explicit)

	t.Setenv(EnvConfigPath, "/tmp/from-env.yaml")
	path, explicit = ResolveConfigPath("")
	assert.Equal(t, "/tmp/from-env.yaml", path)
	assert.True(t, explicit)

	t.Setenv(EnvConfigPath, "")
	path, explicit = ResolveConfigPath("")
	assert.Equal(t, DefaultConfigPath(), path)
	assert.False(t, explicit)
}

func TestReadAppConfig(t *testing.T) {
	appConfig, err := ReadAppConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &AppConfig{}, appConfig)

	appConfig, err = ReadAppConfig(writeConfig(t, "logging:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", appConfig.Logging.Level)
	assert.Empty(t, appConfig.Jira.URL, "валидация Jira не выполняется")
}
