package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgInternal        = "internal error"
	ErrMsgBadSince        = "since must be an RFC3339 timestamp"
	ErrMsgBadLimit        = "limit must be a non-negative integer"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgReloadFailed     = "Reload failed"
	LogMsgReloaded         = "Documents reloaded"
	LogMsgEncodeFailed     = "Failed to encode response"
	LogMsgEventsFailed     = "Failed to query event log"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// PublicPaths bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Health response statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Limits
const (
	MaxRequestBytes      = 1 << 20
	ReadHeaderTimeout    = 5 * time.Second
	ReadinessTimeout     = 2 * time.Second
	FailedAuthAlertCount = 5
	RateLimitPerWindow   = 1000
	RateLimitWindow      = 5 * time.Minute
	RateLimitLogEvery    = 100
)

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
