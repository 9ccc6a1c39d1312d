package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// envNames maps struct fields back to the variables that set them, so
// validation errors point at something the operator can change.
var envNames = map[string]string{
	"DiscordToken":         EnvDiscordToken,
	"DiscordAppID":         EnvDiscordAppID,
	"DiscordGuildID":       EnvDiscordGuildID,
	"Maintainers":          EnvMaintainers,
	"DataDir":              EnvDataDir,
	"StoreBackend":         EnvStoreBackend,
	"DatabaseURL":          EnvDatabaseURL,
	"ShopIdleDelay":        EnvShopIdleDelay,
	"ShopMaxSessions":      EnvShopMaxSessions,
	"FlushInterval":        EnvFlushInterval,
	"SweepInterval":        EnvSweepInterval,
	"PrintMaxFileSize":     EnvPrintMaxFileSize,
	"EventRetention":       EnvEventRetention,
	"EventCleanupInterval": EnvEventCleanupInterval,
	"HTTPPort":             EnvHTTPPort,
	"TrustedProxies":       EnvTrustedProxies,
	"LogLevel":             EnvLogLevel,
	"LogFormat":            EnvLogFormat,
	"Environment":          EnvEnvironment,
}

// Validate checks the struct tags on cfg.
func Validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}
	return formatValidationError(err)
}

// formatValidationError turns validator errors into one readable line
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		name := envNames[e.StructField()]
		if name == "" {
			name = e.Namespace()
		}
		switch e.Tag() {
		case "required", "required_if":
			msgs = append(msgs, name+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", name, e.Param()))
		case "numeric":
			msgs = append(msgs, name+" must be a numeric id")
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s is out of range (%s %s)", name, e.Tag(), e.Param()))
		default:
			msgs = append(msgs, name+" is invalid")
		}
	}
	sort.Strings(msgs)
	return errors.New(strings.Join(msgs, "; "))
}
