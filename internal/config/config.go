package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DiscordToken       string   `validate:"required"`
	DiscordAppID       string   `validate:"required,numeric"`
	DiscordGuildID     string   `validate:"omitempty,numeric"`
	ForceCommandUpdate bool
	Maintainers        []string `validate:"dive,numeric"`

	DataDir      string `validate:"required"`
	StoreBackend string `validate:"oneof=file postgres memory"`
	DatabaseURL  string `validate:"required_if=StoreBackend postgres"`

	ShopIdleDelay    time.Duration `validate:"min=1s"`
	ShopMaxSessions  int           `validate:"min=1"`
	FlushInterval    time.Duration `validate:"min=1s"`
	SweepInterval    time.Duration `validate:"min=100ms"`
	PrintMaxFileSize int64         `validate:"min=1"`

	EventRetention       time.Duration `validate:"min=1m"`
	EventCleanupInterval time.Duration `validate:"min=1s"`

	HTTPPort       int      `validate:"min=0,max=65535"`
	TrustedProxies []string `validate:"dive,ip"`
	LogLevel       string   `validate:"oneof=debug info warn warning error"`
	LogFormat      string   `validate:"oneof=text json"`
	LogDir         string
	Environment    string   `validate:"required"`
	APIKey         string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:         getEnv(EnvDiscordToken, ""),
		DiscordAppID:         getEnv(EnvDiscordAppID, ""),
		DiscordGuildID:       getEnv(EnvDiscordGuildID, ""),
		ForceCommandUpdate:   getEnvAsBool(EnvForceCommandUpdate, false),
		Maintainers:          getEnvAsList(EnvMaintainers),
		DataDir:              getEnv(EnvDataDir, DefaultDataDir),
		StoreBackend:         strings.ToLower(getEnv(EnvStoreBackend, DefaultStoreBackend)),
		DatabaseURL:          getEnv(EnvDatabaseURL, ""),
		ShopIdleDelay:        getEnvAsDuration(EnvShopIdleDelay, DefaultShopIdleDelay),
		ShopMaxSessions:      getEnvAsInt(EnvShopMaxSessions, DefaultShopMaxSessions),
		FlushInterval:        getEnvAsDuration(EnvFlushInterval, DefaultFlushInterval),
		SweepInterval:        getEnvAsDuration(EnvSweepInterval, DefaultSweepInterval),
		PrintMaxFileSize:     int64(getEnvAsInt(EnvPrintMaxFileSize, DefaultPrintMaxFileSize)),
		EventRetention:       getEnvAsDuration(EnvEventRetention, DefaultEventRetention),
		EventCleanupInterval: getEnvAsDuration(EnvEventCleanupInterval, DefaultEventCleanupInterval),
		HTTPPort:             getEnvAsInt(EnvHTTPPort, DefaultHTTPPort),
		APIKey:               getEnv(EnvAPIKey, ""),
		TrustedProxies:       getEnvAsList(EnvTrustedProxies),
		LogLevel:             strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:            strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:               getEnv(EnvLogDir, ""),
		Environment:          getEnv(EnvEnvironment, DefaultEnvironment),
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// IsMaintainer reports whether the user may run maintenance commands.
func (c *Config) IsMaintainer(userID string) bool {
	for _, id := range c.Maintainers {
		if id == userID {
			return true
		}
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value.
// An empty variable counts as unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration accepts Go durations ("90s") or a bare number of seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
