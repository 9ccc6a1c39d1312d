package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

func charOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "name",
		Description:  "Character name",
		Required:     true,
		Autocomplete: true,
	}
}

func itemOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "item",
		Description:  description,
		Required:     true,
		Autocomplete: true,
	}
}

// maxAmount caps integer amount options far below the int range.
const maxAmount = 1_000_000_000

func amountOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "amount",
		Description: "Amount (default: 1)",
		Required:    required,
		MaxValue:    maxAmount,
	}
}

func keyOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "key",
		Description: "Use the key item inventory",
	}
}

func subCommand(name, description string, opts ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     opts,
	}
}

// CharCommand returns the character command definition and handler
func CharCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "char",
		Description:  "Show and trade with roleplay characters",
		DMPermission: &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			subCommand("show", "Show a character sheet", charOption()),
			subCommand("item", "Show an item from a character's inventory",
				charOption(), itemOption("Item name, id or inventory position"), keyOption()),
			subCommand("dumpitem", "Download an inventory item as JSON",
				charOption(), itemOption("Item name, id or inventory position"), keyOption()),
			subCommand("dump", "Download a character as JSON", charOption()),
			subCommand("give", "Give an item to another character",
				charOption(), itemOption("Item to give"),
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "to",
					Description: "Receiving character",
					Required:    true,
				},
				amountOption(false)),
			subCommand("sell", "Sell an item to the shop", charOption(), itemOption("Item to sell"), amountOption(false), keyOption()),
			subCommand("buy", "Buy an item from the shop", charOption(), itemOption("Item to buy"), amountOption(false)),
			subCommand("pay", "Transfer currency to another character",
				charOption(),
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "to",
					Description: "Receiving character",
					Required:    true,
				},
				amountOption(true)),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		sub, opts := subcommand(i)
		guild := i.GuildID
		name := opts.String("name")

		switch sub {
		case "show":
			_, c, err := svc.Characters.GetOrCreate(ctx, guild, name)
			if err != nil {
				return err
			}
			return respondEmbed(s, i, svc.Characters.Render(guild, c))

		case "item", "dumpitem":
			_, c, err := svc.Characters.GetOrCreate(ctx, guild, name)
			if err != nil {
				return err
			}
			entry, item, err := character.InventoryItem(c, opts.String("item"), opts.Bool("key"), svc.Catalog.Snapshot(guild))
			if err != nil {
				return err
			}
			if sub == "item" {
				return respondEmbed(s, i, catalog.ItemEmbed(item, !entry.Override.IsEmpty()))
			}
			data, err := utils.MarshalIndent(item)
			if err != nil {
				return fmt.Errorf("failed to encode item: %w", err)
			}
			return respondFile(s, i, MsgUploadCompleted, item.Name+".json", data)

		case "dump":
			id, data, err := svc.Characters.Dump(ctx, guild, name)
			if err != nil {
				return err
			}
			return respondFile(s, i, MsgUploadCompleted, id+".json", data)

		case "give":
			res, err := svc.Economy.GiveItem(ctx, guild, name, opts.String("to"), opts.String("item"), opts.Int("amount", 1), false)
			if err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgItemGivenFmt, itemString(res.Amount, res.ItemName), res.Recipient))

		case "sell":
			res, err := svc.Economy.SellItem(ctx, guild, name, opts.String("item"), opts.Int("amount", 1), opts.Bool("key"))
			if err != nil {
				return err
			}
			if res.NoBuyer {
				return respondText(s, i, MsgNoBuyer)
			}
			return respondText(s, i, fmt.Sprintf(MsgItemSoldFmt, res.Amount, res.ItemName, plural(res.Amount), res.Money))

		case "buy":
			res, err := svc.Economy.BuyItem(ctx, guild, name, opts.String("item"), opts.Int("amount", 1))
			if err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgPurchasedFmt, res.Amount, res.ItemName))

		case "pay":
			res, err := svc.Economy.Pay(ctx, guild, name, opts.String("to"), opts.Int("amount", 0))
			if err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgPaidFmt, res.Money, res.Recipient))
		}
		return domain.SyntaxError(ErrMsgUnknownSubcommandFmt, sub)
	}

	return cmd, handler
}

// itemString names an item stack: "Sword" or "3 Swords".
func itemString(amount int, name string) string {
	if amount > 1 {
		return fmt.Sprintf("%d %ss", amount, name)
	}
	return name
}
