package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "retest", configBaseName)
	assert.Equal(t, "retest.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "update-xml", reportFlagName)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "results", resultsFlagName)
	assert.Equal(t, "dry-run", dryRunFlagName)
	assert.Equal(t, "report.path", reportConfigKey)
	assert.Equal(t, "results.paths", resultsConfigKey)
	assert.Equal(t, "exec.timeout", timeoutConfigKey)
	assert.Equal(t, ".retest.log", defaultLogFilename)
	assert.Equal(t, "RETEST", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper case", "INFO", slog.LevelInfo},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", " error ", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_VerboseEnablesDebug(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger("update", filepath.Join(t.TempDir(), "retest.log"), true)

	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}

func TestConfigureLogger_TagsRecordsWithCommandAndReport(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	viper.Set(reportConfigKey, "junit.xml")
	t.Cleanup(func() { viper.Set(reportConfigKey, "") })

	logPath := filepath.Join(t.TempDir(), "retest.log")
	configureLogger("exec", logPath, false)

	slog.Info("reconciled")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command=exec")
	assert.Contains(t, string(data), "report.path=junit.xml")
}

func TestConfigureLogger_FallsBackToConfiguredFilename(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "configured.log")

	viper.Set(logFilenameKey, logPath)
	t.Cleanup(func() { viper.Set(logFilenameKey, defaultLogFilename) })

	assert.Equal(t, logPath, newLogWriter("  ").Filename)
	assert.Equal(t, "explicit.log", newLogWriter("explicit.log").Filename)
}
