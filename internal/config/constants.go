package config

import "time"

// Environment variable names
const (
	EnvDiscordToken         = "DISCORD_TOKEN"
	EnvDiscordAppID         = "DISCORD_APP_ID"
	EnvDiscordGuildID       = "DISCORD_GUILD_ID"
	EnvForceCommandUpdate   = "DISCORD_FORCE_COMMAND_UPDATE"
	EnvMaintainers          = "BOT_MAINTAINERS"
	EnvDataDir              = "DATA_DIR"
	EnvStoreBackend         = "STORE_BACKEND"
	EnvDatabaseURL          = "DATABASE_URL"
	EnvShopIdleDelay        = "SHOP_IDLE_DELAY"
	EnvShopMaxSessions      = "SHOP_MAX_SESSIONS"
	EnvFlushInterval        = "FLUSH_INTERVAL"
	EnvSweepInterval        = "SWEEP_INTERVAL"
	EnvPrintMaxFileSize     = "PRINT_MAX_FILESIZE"
	EnvEventRetention       = "EVENT_RETENTION"
	EnvEventCleanupInterval = "EVENT_CLEANUP_INTERVAL"
	EnvHTTPPort             = "HTTP_PORT"
	EnvAPIKey               = "API_KEY"
	EnvTrustedProxies       = "TRUSTED_PROXIES"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvLogDir               = "LOG_DIR"
	EnvEnvironment          = "ENVIRONMENT"
)

// Defaults
const (
	DefaultDataDir              = "data"
	DefaultStoreBackend         = "file"
	DefaultShopIdleDelay        = 120 * time.Second
	DefaultShopMaxSessions      = 256
	DefaultFlushInterval        = 10 * time.Second
	DefaultSweepInterval        = 5 * time.Second
	DefaultPrintMaxFileSize     = 8 << 20
	DefaultEventRetention       = 30 * 24 * time.Hour
	DefaultEventCleanupInterval = time.Hour
	DefaultHTTPPort             = 8082
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
)
