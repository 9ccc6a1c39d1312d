package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, the new one included
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingBot         = "Starting roleplay bot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Store Configuration
// =============================================================================

const (
	// DBMaxIdleTime closes pooled connections unused for this long
	DBMaxIdleTime = 5 * time.Minute

	// DBMaxLifetime recycles pooled connections after this long
	DBMaxLifetime = time.Hour

	// DBConnectTimeout bounds connecting and migrating at startup
	DBConnectTimeout = 30 * time.Second

	// FetchTimeout bounds a single attachment download
	FetchTimeout = 30 * time.Second

	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 30 * time.Second

	// WorkerCount is the number of background workers running scheduled jobs
	WorkerCount = 2

	// WorkerQueueSize is how many scheduled jobs may wait for a worker
	WorkerQueueSize = 16
)

// Log messages for store initialization
const (
	LogMsgStoreOpened         = "Document store opened"
	ErrMsgFailedOpenBackend   = "failed to open store backend"
	ErrMsgFailedOpenNamespace = "failed to load documents"
	ErrMsgFailedCreateShops   = "failed to create shop registry"
	ErrMsgFailedLoadSchemas   = "failed to load document schemas"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLogRegistered         = "Event log registered"
	ErrMsgFailedCreateEventLog       = "failed to create event log"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownBot      = "Disconnecting from Discord..."
	LogMsgFlushingCharacters   = "Saving characters..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgBotShutdownFailed    = "Discord session close failed"
	LogMsgFlushFailed          = "Final character save failed"
)

// Log messages for startup
const (
	LogMsgServerStarting     = "Operator API listening"
	LogMsgServerFailed       = "Operator API failed"
	LogMsgCommandsFailed     = "Failed to register commands"
	LogMsgShutdownSignal     = "Shutdown signal received"
	LogMsgJobsScheduled      = "Background jobs scheduled"
	ErrMsgFailedStartBot     = "failed to start discord session"
	ErrMsgFailedInitServices = "failed to initialize services"
)
