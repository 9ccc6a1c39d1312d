package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/economy"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

func fileOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionAttachment,
		Name:        "file",
		Description: description,
		Required:    true,
	}
}

func idOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "id",
		Description: description,
		Required:    true,
	}
}

// EconCommand returns the economy administration command. It is limited to
// members who can manage messages.
func EconCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "econ",
		Description:              "Manage the roleplay economy",
		DefaultMemberPermissions: &permManageMessages,
		DMPermission:             &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			subCommand("give", "Give a character an item, or currency with the item \"money\"",
				charOption(), itemOption("Item name or id"), amountOption(false), keyOption()),
			subCommand("take", "Take an item, or currency with the item \"money\", from a character",
				charOption(), itemOption("Item name, id or inventory position"), amountOption(false), keyOption()),
			subCommand("givecustom", "Give a character a customised item from a JSON file",
				charOption(), fileOption("Inventory entry JSON"), keyOption()),
			subCommand("uploadchar", "Create or replace a character from a JSON file",
				charOption(), fileOption("Character JSON")),
			subCommand("deletechar", "Delete a character", charOption()),
			subCommand("listchars", "List characters"),
			subCommand("uploaditem", "Create or update an item from a JSON file",
				idOption("Item id"), fileOption("Item JSON")),
			subCommand("deleteitem", "Delete an item", idOption("Item id")),
			subCommand("listitems", "List items"),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		sub, opts := subcommand(i)
		guild := i.GuildID
		name := opts.String("name")

		switch sub {
		case "give":
			res, err := svc.Economy.AdminGive(ctx, guild, name, opts.String("item"), opts.Int("amount", 1), opts.Bool("key"))
			if err != nil {
				return err
			}
			return respondText(s, i, adminReply(res, MsgMoneyGivenFmt, MsgAdminItemGivenFmt))

		case "take":
			res, err := svc.Economy.AdminTake(ctx, guild, name, opts.String("item"), opts.Int("amount", 1), opts.Bool("key"))
			if err != nil {
				return err
			}
			return respondText(s, i, adminReply(res, MsgMoneyTakenFmt, MsgAdminItemTakenFmt))

		case "givecustom":
			data, err := fetchAttachment(ctx, i, opts, "file", svc)
			if err != nil {
				return err
			}
			res, err := svc.Economy.GiveCustom(ctx, guild, name, data, opts.Bool("key"))
			if err != nil {
				return err
			}
			return respondText(s, i, adminReply(res, MsgMoneyGivenFmt, MsgAdminItemGivenFmt))

		case "uploadchar":
			data, err := fetchAttachment(ctx, i, opts, "file", svc)
			if err != nil {
				return err
			}
			c, created, err := svc.Characters.Upload(ctx, guild, name, data)
			if err != nil {
				return err
			}
			format := MsgCharUpdatedFmt
			if created {
				format = MsgCharCreatedFmt
			}
			return respondText(s, i, fmt.Sprintf(format, c.Name, utils.FoldID(name)))

		case "deletechar":
			c, err := svc.Characters.Delete(ctx, guild, name)
			if err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgCharDeletedFmt, c.Name))

		case "listchars":
			entries := svc.Characters.List(guild)
			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				lines = append(lines, fmt.Sprintf(ListFmt, utils.Center(e.Character.Name, CharacterListWidth, ' '), e.ID))
			}
			return respondList(s, i, MsgListCharsHeader, lines)

		case "uploaditem":
			data, err := fetchAttachment(ctx, i, opts, "file", svc)
			if err != nil {
				return err
			}
			id := opts.String("id")
			item, created, err := svc.Catalog.UpsertJSON(ctx, guild, id, data)
			if err != nil {
				return err
			}
			format := MsgItemUpdatedFmt
			if created {
				format = MsgItemCreatedFmt
			}
			return respondText(s, i, fmt.Sprintf(format, item.Name, id))

		case "deleteitem":
			id := opts.String("id")
			if _, err := svc.Catalog.Delete(ctx, guild, id); err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgItemDeletedFmt, id))

		case "listitems":
			entries := svc.Catalog.List(guild)
			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				lines = append(lines, fmt.Sprintf(ListFmt, utils.Center(e.Item.Name, ItemListWidth, ' '), e.ID))
			}
			return respondList(s, i, MsgListItemsHeader, lines)
		}
		return domain.SyntaxError(ErrMsgUnknownSubcommandFmt, sub)
	}

	return cmd, handler
}

// adminReply words a give or take result. Currency moves have no item name.
func adminReply(res economy.Result, moneyFmt, itemFmt string) string {
	if res.ItemName == "" {
		return fmt.Sprintf(moneyFmt, res.Amount, res.Character)
	}
	return fmt.Sprintf(itemFmt, res.Amount, res.ItemName, res.Character)
}

// respondList replies with a header and lines in a code block, split across
// follow-up messages when it would exceed the message limit.
func respondList(s *discordgo.Session, i *discordgo.InteractionCreate, header string, lines []string) error {
	if len(lines) == 0 {
		return respondText(s, i, MsgEmptyList)
	}
	pages := paginate(lines, MaxMessageLength-len(header)-len("\n```\n```"))
	if err := respondText(s, i, header+"\n"+codeBlock("", pages[0])); err != nil {
		return err
	}
	for _, page := range pages[1:] {
		content := codeBlock("", page)
		if _, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{Content: content}); err != nil {
			return fmt.Errorf("failed to send follow-up: %w", err)
		}
	}
	return nil
}

// paginate groups lines so that each group joined by newlines fits limit.
// A single overlong line gets a group of its own.
func paginate(lines []string, limit int) [][]string {
	var pages [][]string
	var page []string
	size := 0
	for _, line := range lines {
		if len(page) > 0 && size+len(line)+1 > limit {
			pages = append(pages, page)
			page, size = nil, 0
		}
		page = append(page, line)
		size += len(line) + 1
	}
	if len(page) > 0 {
		pages = append(pages, page)
	}
	return pages
}
