package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "retest"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	reportFlagName  = "update-xml"
	outputFlagName  = "output"
	resultsFlagName = "results"
	dryRunFlagName  = "dry-run"
	timeoutFlagName = "timeout"
	workdirFlagName = "workdir"
	logFileFlagName = "log-file"
	verboseFlagName = "verbose"

	reportConfigKey  = "report.path"
	outputConfigKey  = "report.output"
	resultsConfigKey = "results.paths"
	dryRunConfigKey  = "update.dry_run"
	timeoutConfigKey = "exec.timeout"
	workdirConfigKey = "exec.workdir"

	defaultExecTimeout = time.Minute * 30
	defaultExecWorkdir = "."
	defaultDryRun      = false

	envPrefix = "RETEST"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".retest.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(reportConfigKey, "")
	viper.SetDefault(outputConfigKey, "")
	viper.SetDefault(resultsConfigKey, []string{})
	viper.SetDefault(dryRunConfigKey, defaultDryRun)
	viper.SetDefault(timeoutConfigKey, int64(defaultExecTimeout.Seconds()))
	viper.SetDefault(workdirConfigKey, defaultExecWorkdir)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the global slog logger at a rotating log file. Every record
// carries the running command and the report it works on, so runs against different
// reports can be told apart in a shared log.
func configureLogger(command, logPath string, verbose bool) {
	handler := slog.NewTextHandler(newLogWriter(logPath), &slog.HandlerOptions{
		AddSource: true,
		Level:     loggerLevel(verbose),
	})

	globalLogger = slog.New(handler).With(
		slog.String("command", command),
		slog.Group("report",
			slog.String("path", viper.GetString(reportConfigKey)),
			slog.String("output", viper.GetString(outputConfigKey)),
		),
	)
	slog.SetDefault(globalLogger)
}

func loggerLevel(verbose bool) slog.Level {
	if verbose || viper.GetBool(logVerboseKey) {
		return slog.LevelDebug
	}

	return parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
}

func newLogWriter(logPath string) *lumberjack.Logger {
	for _, candidate := range []string{logPath, viper.GetString(logFilenameKey), defaultLogFilename} {
		if strings.TrimSpace(candidate) != "" {
			logPath = candidate

			break
		}
	}

	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}
}
