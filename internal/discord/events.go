package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/shop"
)

func eventContext() context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}

func isSelf(s *discordgo.Session, userID string) bool {
	return s.State != nil && s.State.User != nil && s.State.User.ID == userID
}

// messageReactionAdd pages or closes shop sessions. The reaction is taken
// back while the session is open so the same arrow can be clicked again.
func (b *Bot) messageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if isSelf(s, r.UserID) || r.GuildID == "" {
		return
	}
	key := shop.Key{Guild: r.GuildID, Message: r.MessageID}
	if _, ok := b.Services.Shops.Get(key); !ok {
		return
	}

	ctx := eventContext()
	emoji := r.Emoji.APIName()
	b.Services.Shops.React(ctx, key, r.UserID, emoji)

	if _, ok := b.Services.Shops.Get(key); !ok {
		return
	}
	if err := s.MessageReactionRemove(r.ChannelID, r.MessageID, emoji, r.UserID, discordgo.WithContext(ctx)); err != nil {
		logger.FromContext(ctx).Debug(LogMsgReactionRemove, "message_id", r.MessageID, "error", err)
	}
}

// messageDelete forgets pinned bios whose message was removed.
func (b *Bot) messageDelete(_ *discordgo.Session, m *discordgo.MessageDelete) {
	if m.GuildID == "" {
		return
	}
	b.Services.Bios.Unpin(eventContext(), m.GuildID, m.ID)
}

// guildMemberAdd hands new members the configured default roles.
func (b *Bot) guildMemberAdd(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.Member == nil || m.User == nil || m.User.Bot {
		return
	}
	ctx := eventContext()
	if err := b.Services.Roles.ApplyDefaults(ctx, m.GuildID, m.User.ID); err != nil {
		logger.FromContext(ctx).Warn(LogMsgDefaultRoles, "guild_id", m.GuildID, "user_id", m.User.ID, "error", err)
	}
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	logger.FromContext(eventContext()).Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.Registry.Handle(s, i, b.Services)
}
