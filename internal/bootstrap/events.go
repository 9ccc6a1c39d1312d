package bootstrap

import (
	"log/slog"

	"github.com/osse101/RoleplayBot_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus that services
// publish transfers, shop sessions and printouts on.
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
