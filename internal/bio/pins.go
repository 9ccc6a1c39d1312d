package bio

import (
	"context"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/guildcfg"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// Pin posts a self-updating bio message. All pinned bios of a guild live
// in one channel, fixed by the first pin.
func (s *service) Pin(ctx context.Context, guild, channel, name string) error {
	id, b, err := s.Get(guild, name)
	if err != nil {
		return err
	}
	if err := checkPinnable(s.settings.Get(guild).Roleplay, id, channel); err != nil {
		return err
	}

	msg, err := s.publisher.SendEmbed(ctx, channel, s.embed(ctx, guild, b))
	if err != nil {
		return err
	}

	_, err = s.settings.Update(ctx, guild, func(cfg *guildcfg.Settings) error {
		if err := checkPinnable(cfg.Roleplay, id, channel); err != nil {
			return err
		}
		cfg.Roleplay.PinnedBiosChannel = channel
		cfg.Roleplay.PinnedBios[id] = msg
		return nil
	})
	if err != nil {
		// Lost a race with another pin: withdraw the duplicate post.
		if delErr := s.publisher.DeleteMessage(ctx, channel, msg); delErr != nil {
			logger.FromContext(ctx).Warn(LogMsgPinDeleteFailed, "guild_id", guild, "bio_id", id, "error", delErr)
		}
		return err
	}

	logger.FromContext(ctx).Info(LogMsgBioPinned, "guild_id", guild, "bio_id", id, "message_id", msg)
	return nil
}

func checkPinnable(cfg guildcfg.Roleplay, id, channel string) error {
	if cfg.PinnedBiosChannel != "" && cfg.PinnedBiosChannel != channel && len(cfg.PinnedBios) > 0 {
		return domain.SyntaxError(ErrMsgPinChannelFmt, cfg.PinnedBiosChannel)
	}
	if _, ok := cfg.PinnedBios[id]; ok {
		return domain.SyntaxError(ErrMsgAlreadyPinnedFmt, id)
	}
	return nil
}

// Unpin forgets the pin displayed by messageID. It is called when a
// pinned message is deleted and reports which bio it belonged to.
func (s *service) Unpin(ctx context.Context, guild, messageID string) (string, bool) {
	if _, ok := s.settings.Get(guild).Roleplay.PinnedBy(messageID); !ok {
		return "", false
	}

	var id string
	var found bool
	_, err := s.settings.Update(ctx, guild, func(cfg *guildcfg.Settings) error {
		id, found = cfg.Roleplay.PinnedBy(messageID)
		if found {
			delete(cfg.Roleplay.PinnedBios, id)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgPinDeleteFailed, "guild_id", guild, "message_id", messageID, "error", err)
		return "", false
	}
	if found {
		logger.FromContext(ctx).Info(LogMsgBioUnpinned, "guild_id", guild, "bio_id", id)
	}
	return id, found
}

// refreshPin edits the pinned message of a bio after a change.
func (s *service) refreshPin(ctx context.Context, guild, id string, b Bio) {
	cfg := s.settings.Get(guild).Roleplay
	msg, ok := cfg.PinnedBios[id]
	if !ok {
		return
	}
	if err := s.publisher.EditEmbed(ctx, cfg.PinnedBiosChannel, msg, s.embed(ctx, guild, b)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPinUpdateFailed, "guild_id", guild, "bio_id", id, "error", err)
	}
}
