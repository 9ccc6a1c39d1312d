package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/RoleplayBot_Go/internal/config"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// SetupLogger initializes the application logger. Output always goes to
// stdout; when cfg.LogDir is set it is also written to a timestamped file
// there and old session logs are pruned. The returned file is nil without a
// log directory and must otherwise be closed by the caller.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, logger.DefaultVersion, cfg.Environment, addSource)

	var w io.Writer = os.Stdout
	var logFile *os.File
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(logCfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingBot,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat)

	slog.Debug(LogMsgConfigurationLoaded,
		"store_backend", cfg.StoreBackend,
		"data_dir", cfg.DataDir,
		"guild_id", cfg.DiscordGuildID,
		"http_port", cfg.HTTPPort)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that, with the file about
// to be created, at most LogFileRetentionCount remain.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	// Timestamped names sort chronologically.
	sort.Strings(names)

	for len(names) >= LogFileRetentionCount {
		if err := os.Remove(filepath.Join(logDir, names[0])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", names[0], "error", err)
		}
		names = names[1:]
	}
}
