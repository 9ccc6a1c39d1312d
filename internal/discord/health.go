package discord

import (
	"context"
	"errors"
)

var errNotConnected = errors.New("discord gateway not ready")

// Ready is a readiness probe that passes once the gateway session has
// received its ready event.
func (b *Bot) Ready(_ context.Context) error {
	if b.Session == nil || !b.Session.DataReady {
		return errNotConnected
	}
	return nil
}
