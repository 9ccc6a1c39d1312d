package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameTransfers      = "economy_transfers_total"
	MetricNameItemsMoved     = "economy_items_moved_total"
	MetricNameMoneyEarned    = "economy_money_earned_total"
	MetricNameMoneySpent     = "economy_money_spent_total"
	MetricNameShopsOpened    = "shop_sessions_opened_total"
	MetricNameShopsClosed    = "shop_sessions_closed_total"
	MetricNameShopsOpen      = "shop_sessions_open"
	MetricNameShopLifetime   = "shop_session_lifetime_seconds"
	MetricNameDocumentsPrint = "printer_documents_printed_total"
	MetricNamePostsPrinted   = "printer_posts_total"
)

// Command metric names
const (
	MetricNameCommandsTotal   = "discord_commands_total"
	MetricNameCommandDuration = "discord_command_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextTransfers      = "Total number of completed economy transfers"
	HelpTextItemsMoved     = "Total number of items moved by transfers"
	HelpTextMoneyEarned    = "Total money credited to characters"
	HelpTextMoneySpent     = "Total money debited from characters"
	HelpTextShopsOpened    = "Total number of shop sessions opened"
	HelpTextShopsClosed    = "Total number of shop sessions closed"
	HelpTextShopsOpen      = "Current number of live shop sessions"
	HelpTextShopLifetime   = "Shop session lifetime in seconds"
	HelpTextDocumentsPrint = "Total number of wall documents printed"
	HelpTextPostsPrinted   = "Total number of wall posts sent"
)

// Command metric help text
const (
	HelpTextCommandsTotal   = "Total number of slash commands handled"
	HelpTextCommandDuration = "Slash command latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelKind    = "kind"
	LabelReason  = "reason"
	LabelCommand = "command"
	LabelOutcome = "outcome"
)

// Command outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ShopLifetimeBuckets spans a quick glance up to a long browsing session.
var ShopLifetimeBuckets = []float64{5, 15, 30, 60, 120, 300, 600, 1800}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
)
