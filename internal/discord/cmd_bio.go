package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/osse101/RoleplayBot_Go/internal/bio"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

func bioOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "name",
		Description:  "Character name",
		Required:     true,
		Autocomplete: true,
	}
}

func fieldOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "field",
		Description: "Field to change",
		Required:    true,
		Choices: lo.Map(bio.Fields, func(f string, _ int) *discordgo.ApplicationCommandOptionChoice {
			return &discordgo.ApplicationCommandOptionChoice{Name: f, Value: f}
		}),
	}
}

// BioCommand returns the character bio command definition and handler.
// Editing needs ownership of the bio or the Manage Messages permission.
func BioCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "bio",
		Description:  "Show, write and manage character bios",
		DMPermission: &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			subCommand("show", "Show a bio", bioOption()),
			subCommand("create", "Create a bio", &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Character name",
				Required:    true,
			}),
			subCommand("set", "Set or reset a bio field", bioOption(), fieldOption(),
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "value",
					Description: "New value, leave out to reset",
				}),
			subCommand("rename", "Change the name a bio is accessed by", bioOption(),
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "new_name",
					Description: "New character name",
					Required:    true,
				}),
			subCommand("delete", "Delete a bio", bioOption()),
			subCommand("dump", "Download a bio as JSON", bioOption()),
			subCommand("upload", "Create or update a bio from a JSON file", fileOption("Bio JSON")),
			subCommand("list", "List bios", &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "owner",
				Description: "Only list bios written by this member",
			}),
			subCommand("pin", "Post a bio that updates itself when the bio changes", bioOption()),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		sub, opts := subcommand(i)
		guild := i.GuildID
		name := opts.String("name")
		actor := bioActor(i)

		switch sub {
		case "show":
			e, err := svc.Bios.Show(ctx, guild, name)
			if err != nil {
				return err
			}
			return respondEmbed(s, i, e)

		case "create":
			_, b, err := svc.Bios.Create(ctx, guild, actor, name)
			if err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgBioCreatedFmt, b.Name))

		case "set":
			field, value := opts.String("field"), opts.String("value")
			if _, err := svc.Bios.Set(ctx, guild, actor, name, field, value); err != nil {
				return err
			}
			format := MsgBioFieldSetFmt
			if value == "" {
				format = MsgBioFieldResetFmt
			}
			return respondText(s, i, fmt.Sprintf(format, bio.Label(field)))

		case "rename":
			newID, err := svc.Bios.Rename(ctx, guild, actor, name, opts.String("new_name"))
			if err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgBioRenamedFmt, name, newID))

		case "delete":
			id, err := svc.Bios.Delete(ctx, guild, actor, name)
			if err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgBioDeletedFmt, id))

		case "dump":
			file, data, err := svc.Bios.Dump(guild, name)
			if err != nil {
				return err
			}
			return respondFile(s, i, MsgUploadCompleted, file, data)

		case "upload":
			data, err := fetchAttachment(ctx, i, opts, "file", svc)
			if err != nil {
				return err
			}
			b, created, err := svc.Bios.Upload(ctx, guild, actor, data)
			if err != nil {
				return err
			}
			format := MsgBioUpdatedFmt
			if created {
				format = MsgBioUploadedFmt
			}
			return respondText(s, i, fmt.Sprintf(format, b.Name))

		case "list":
			owner, err := domain.ParseSnowflake(opts.ID("owner"))
			if err != nil {
				return domain.SyntaxError(ErrMsgNotAUser)
			}
			header := MsgBioListHeader
			if !owner.IsZero() {
				header = fmt.Sprintf(MsgBioOwnerListFmt, owner)
			}
			lines := lo.Map(svc.Bios.List(guild, owner), func(e bio.Entry, _ int) string {
				return fmt.Sprintf(BioListFmt, utils.PadRight(utils.Truncate(e.ID, BioListIDWidth), BioListIDWidth), e.Bio.Name)
			})
			return respondList(s, i, header, lines)

		case "pin":
			if !isModerator(i) {
				return domain.PermissionError(ErrMsgModeratorsOnly)
			}
			if err := svc.Bios.Pin(ctx, guild, i.ChannelID, name); err != nil {
				return err
			}
			return respondText(s, i, fmt.Sprintf(MsgBioPinnedFmt, name))
		}
		return domain.SyntaxError(ErrMsgUnknownSubcommandFmt, sub)
	}

	return cmd, handler
}
