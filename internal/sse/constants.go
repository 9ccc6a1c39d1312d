package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Stream-only event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters accepted by Handler
const (
	QueryTypes = "types"
	QueryGuild = "guild"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)

const ErrMsgStreamingUnsupported = "SSE not supported"
