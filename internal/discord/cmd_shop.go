package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/shop"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

func categoryOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "category",
		Description:  "Only show items of this category",
		Autocomplete: true,
	}
}

// ShopCommand returns the shop command definition and handler
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "shop",
		Description:  "Browse the item shop",
		DMPermission: &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			subCommand("open", "Open a shop window you can page with reactions", categoryOption()),
			subCommand("categories", "List shop categories"),
			subCommand("items", "List shop items and their prices", categoryOption()),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		sub, opts := subcommand(i)
		guild := i.GuildID
		category := strings.ToLower(opts.String("category"))

		switch sub {
		case "open":
			return openShop(ctx, s, i, svc, category)

		case "categories":
			cats := svc.Catalog.Categories(guild)
			if len(cats) == 0 {
				return respondText(s, i, MsgNoCategories)
			}
			return respondList(s, i, MsgCategoriesHeader, cats)

		case "items":
			entries := svc.Catalog.ShopItems(guild, category)
			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				lines = append(lines, fmt.Sprintf(ListFmt, utils.Center(e.Item.Name, ItemListWidth, ' '), fmt.Sprint(e.Item.BuyPrice)))
			}
			sort.Strings(lines)
			header := MsgShopItemsHeader
			if category != "" {
				header = MsgCategoryHeader
			}
			return respondList(s, i, header, lines)
		}
		return domain.SyntaxError(ErrMsgUnknownSubcommandFmt, sub)
	}

	return cmd, handler
}

// openShop posts the first page as the interaction reply, registers the
// session and seeds the navigation reactions. The session is registered
// before the reactions so an early click is not lost.
func openShop(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, category string) error {
	user := getInteractionUser(i)
	session := shop.NewSession(user.ID, i.GuildID, category, svc.Catalog.ShopItems(i.GuildID, category), svc.Shops.Now())

	content := session.Text()
	msg, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content})
	if err != nil {
		return fmt.Errorf("failed to post shop: %w", err)
	}
	session.Channel = i.ChannelID
	if msg.ChannelID != "" {
		session.Channel = msg.ChannelID
	}
	session.Message = msg.ID
	svc.Shops.Open(ctx, session)

	for _, emoji := range shop.Emojis {
		if err := s.MessageReactionAdd(session.Channel, session.Message, emoji); err != nil {
			logger.FromContext(ctx).Warn(LogMsgReactionAdd, "message_id", session.Message, "emoji", emoji, "error", err)
		}
	}
	return nil
}
