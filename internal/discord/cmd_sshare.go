package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

// ScreenShareCommand returns the screen share link command. The link opens
// the voice channel the invoking member is connected to.
func ScreenShareCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "sshare",
		Description:  "Get a screen share link for your voice channel",
		DMPermission: &dmPermission,
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		vs, err := s.State.VoiceState(i.GuildID, getInteractionUser(i).ID)
		if err != nil || vs.ChannelID == "" {
			return domain.PermissionError(MsgNotInVoice)
		}

		channelName := vs.ChannelID
		if ch, err := s.State.Channel(vs.ChannelID); err == nil {
			channelName = ch.Name
		}

		return respondEmbed(s, i, screenShareEmbed(i.GuildID, vs.ChannelID, channelName))
	}

	return cmd, handler
}

func screenShareEmbed(guild, channel, name string) domain.Embed {
	return domain.Embed{
		Description: fmt.Sprintf(MsgScreenShareFmt, name, guild, channel),
		Color:       ColorScreenShare,
	}
}
