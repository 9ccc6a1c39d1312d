package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

func documentOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "name",
		Description:  "Document name",
		Required:     true,
		Autocomplete: true,
	}
}

// WallCommand returns the wall printer command. Printing posts the stored
// document into the current channel, for example to set up a rules channel.
func WallCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "wall",
		Description:              "Print stored documents into channels",
		DefaultMemberPermissions: &permManageMessages,
		DMPermission:             &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			subCommand("print", "Print a document into this channel", documentOption()),
			subCommand("upload", "Create or replace a document from a JSON file",
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Document name",
					Required:    true,
				},
				fileOption("Document JSON")),
			subCommand("dump", "Download a document as JSON", documentOption()),
			subCommand("delete", "Delete a document", documentOption()),
			subCommand("list", "List stored documents"),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		sub, opts := subcommand(i)
		guild := i.GuildID
		name := opts.String("name")

		switch sub {
		case "print":
			return printWall(ctx, s, i, svc, name)

		case "upload":
			data, err := fetchAttachment(ctx, i, opts, "file", svc)
			if err != nil {
				return err
			}
			posts, err := svc.Printer.Upload(ctx, guild, name, data)
			if err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgDocUploadedFmt, name, posts))

		case "dump":
			data, err := svc.Printer.Dump(guild, name)
			if err != nil {
				return err
			}
			return respondFile(s, i, MsgUploadCompleted, name+".json", data)

		case "delete":
			if err := svc.Printer.Delete(ctx, guild, name); err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgDocDeletedFmt, name))

		case "list":
			return respondList(s, i, MsgDocListHeader, svc.Printer.List(guild))
		}
		return domain.SyntaxError(ErrMsgUnknownSubcommandFmt, sub)
	}

	return cmd, handler
}

// printWall prints a document below the invocation and then removes the
// deferred reply so only the document remains. A document that fails
// verification is reported as a warning and nothing is posted.
func printWall(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, name string) error {
	_, err := svc.Printer.Print(ctx, i.GuildID, i.ChannelID, name)
	var ue *domain.UserError
	if errors.As(err, &ue) && errors.Is(err, domain.ErrSyntax) {
		return respondText(s, i, fmt.Sprintf(MsgPrintWarningFmt, ue.Message))
	}
	if err != nil {
		return err
	}
	if err := s.InteractionResponseDelete(i.Interaction); err != nil {
		logger.FromContext(ctx).Warn(LogMsgResponseDelete, "error", err)
	}
	return nil
}
