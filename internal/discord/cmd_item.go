package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// ItemCommand returns the item catalog command definition and handler
func ItemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "item",
		Description:  "Look up items in the catalog",
		DMPermission: &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			subCommand("info", "Show an item", itemOption("Item name or id")),
			subCommand("dump", "Download an item as JSON", itemOption("Item name or id")),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		sub, opts := subcommand(i)
		id, item, err := svc.Catalog.Resolve(i.GuildID, opts.String("item"))
		if err != nil {
			return err
		}

		switch sub {
		case "info":
			return respondEmbed(s, i, catalog.ItemEmbed(item, false))
		case "dump":
			data, err := utils.MarshalIndent(item)
			if err != nil {
				return fmt.Errorf("failed to encode item %s: %w", id, err)
			}
			return respondFile(s, i, MsgUploadCompleted, id+".json", data)
		}
		return domain.SyntaxError(ErrMsgUnknownSubcommandFmt, sub)
	}

	return cmd, handler
}
