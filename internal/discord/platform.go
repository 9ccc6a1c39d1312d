package discord

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/printer"
)

// Platform carries out plugin side effects over a Discord session. It
// serves the shop, bio, role and printer services.
type Platform struct {
	session *discordgo.Session
}

// NewPlatform wraps a session.
func NewPlatform(s *discordgo.Session) *Platform {
	return &Platform{session: s}
}

func (p *Platform) EditMessage(ctx context.Context, channelID, messageID, content string) error {
	if _, err := p.session.ChannelMessageEdit(channelID, messageID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit message %s: %w", messageID, err)
	}
	return nil
}

func (p *Platform) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if err := p.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", messageID, err)
	}
	return nil
}

// SendEmbed posts an embed and returns the new message id.
func (p *Platform) SendEmbed(ctx context.Context, channelID string, e domain.Embed) (string, error) {
	msg, err := p.session.ChannelMessageSendEmbed(channelID, toDiscordEmbed(e), discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send embed: %w", err)
	}
	return msg.ID, nil
}

func (p *Platform) EditEmbed(ctx context.Context, channelID, messageID string, e domain.Embed) error {
	if _, err := p.session.ChannelMessageEditEmbed(channelID, messageID, toDiscordEmbed(e), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit embed %s: %w", messageID, err)
	}
	return nil
}

// SendPost posts one wall document entry.
func (p *Platform) SendPost(ctx context.Context, channelID, content string, embed *domain.Embed, file *printer.File) error {
	send := &discordgo.MessageSend{Content: content}
	if embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{toDiscordEmbed(*embed)}
	}
	if file != nil {
		send.Files = []*discordgo.File{{
			Name:        file.Name,
			ContentType: file.ContentType,
			Reader:      bytes.NewReader(file.Data),
		}}
	}
	if _, err := p.session.ChannelMessageSendComplex(channelID, send, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send post: %w", err)
	}
	return nil
}

func (p *Platform) GuildRoles(ctx context.Context, guild string) ([]domain.Role, error) {
	roles, err := p.session.GuildRoles(guild, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles of guild %s: %w", guild, err)
	}
	out := make([]domain.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, domain.Role{ID: r.ID, Name: r.Name, Color: r.Color, Position: r.Position})
	}
	return out, nil
}

func (p *Platform) Member(ctx context.Context, guild, user string) (domain.Member, error) {
	m, err := p.session.GuildMember(guild, user, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to fetch member %s: %w", user, err)
	}
	return domain.Member{
		ID:          user,
		DisplayName: m.DisplayName(),
		AvatarURL:   m.AvatarURL(""),
		Roles:       m.Roles,
	}, nil
}

func (p *Platform) AddRole(ctx context.Context, guild, user, role, reason string) error {
	err := p.session.GuildMemberRoleAdd(guild, user, role, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
	if err != nil {
		return fmt.Errorf("failed to add role %s: %w", role, err)
	}
	return nil
}

func (p *Platform) RemoveRole(ctx context.Context, guild, user, role, reason string) error {
	err := p.session.GuildMemberRoleRemove(guild, user, role, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
	if err != nil {
		return fmt.Errorf("failed to remove role %s: %w", role, err)
	}
	return nil
}
