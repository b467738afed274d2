package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	vars := []string{
		"BANKIMPORT_LOG_LEVEL",
		"BANKIMPORT_LOG_FORMAT",
		"BANKIMPORT_IMPORT_MAX_ROWS",
		"BANKIMPORT_IMPORT_CONFIDENCE_THRESHOLD",
		"BANKIMPORT_IMPORT_NEGATIVE_DEBITS",
		"BANKIMPORT_EXPORT_DELIMITER",
		"BANKIMPORT_CATEGORIZATION_RULES_FILE",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	inTempDir(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, 50000, config.Import.MaxRows)
	assert.Equal(t, 0.5, config.Import.ConfidenceThreshold)
	assert.True(t, config.Import.NegativeDebits)
	assert.Equal(t, ",", config.Export.Delimiter)
	assert.True(t, config.Export.IncludeHeaders)
	assert.Equal(t, "", config.Categorization.RulesFile)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	inTempDir(t)

	t.Setenv("BANKIMPORT_LOG_LEVEL", "debug")
	t.Setenv("BANKIMPORT_LOG_FORMAT", "json")
	t.Setenv("BANKIMPORT_IMPORT_MAX_ROWS", "1000")
	t.Setenv("BANKIMPORT_EXPORT_DELIMITER", ";")
	t.Setenv("BANKIMPORT_CATEGORIZATION_RULES_FILE", "/etc/rules.yaml")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 1000, config.Import.MaxRows)
	assert.Equal(t, ";", config.Export.Delimiter)
	assert.Equal(t, "/etc/rules.yaml", config.Categorization.RulesFile)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	dir := inTempDir(t)

	content := `log:
  level: warn
  format: json
import:
  max_rows: 2500
  confidence_threshold: 0.7
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 2500, config.Import.MaxRows)
	assert.Equal(t, 0.7, config.Import.ConfidenceThreshold)
	// Unset keys keep their defaults.
	assert.Equal(t, ",", config.Export.Delimiter)
}

func TestInitializeConfig_EnvOverridesFile(t *testing.T) {
	clearTestEnvVars(t)
	dir := inTempDir(t)

	content := "log:\n  level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Setenv("BANKIMPORT_LOG_LEVEL", "error")

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "error", config.Log.Level)
}

func TestInitializeConfig_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid log level", "BANKIMPORT_LOG_LEVEL", "loud"},
		{"invalid log format", "BANKIMPORT_LOG_FORMAT", "xml"},
		{"multi-char delimiter", "BANKIMPORT_EXPORT_DELIMITER", ";;"},
		{"zero max rows", "BANKIMPORT_IMPORT_MAX_ROWS", "0"},
		{"out of range threshold", "BANKIMPORT_IMPORT_CONFIDENCE_THRESHOLD", "1.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearTestEnvVars(t)
			inTempDir(t)
			t.Setenv(tc.key, tc.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BANKIMPORT_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("BANKIMPORT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BANKIMPORT_TEST_KEY_MISSING", "fallback"))
}

func TestNewLogger(t *testing.T) {
	config := &Config{}
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := NewLogger(config)
	assert.NotNil(t, logger)
}
