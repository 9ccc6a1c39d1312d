package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/roles"
)

func roleListOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "add",
			Description: "Comma separated role names or ids to add",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "remove",
			Description: "Comma separated role names or ids to remove",
		},
	}
}

// RaceCommand returns the race role self-service command.
func RaceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "race",
		Description:  "Pick your character's race role",
		DMPermission: &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			subCommand("get", "Swap your race role, or leave the role out to drop it",
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "role",
					Description: "Approved race role",
				}),
			subCommand("list", "List approved race roles"),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		sub, opts := subcommand(i)
		switch sub {
		case "get":
			role, granted, err := svc.Bios.GetRaceRole(ctx, i.GuildID, getInteractionUser(i).ID, opts.String("role"))
			if err != nil {
				return err
			}
			if !granted {
				return respondText(s, i, MsgRaceRoleRemoved)
			}
			return respondText(s, i, fmt.Sprintf(MsgRaceRoleGrantedFmt, role.Name))

		case "list":
			names, err := svc.Bios.ListRaceRoles(ctx, i.GuildID)
			if err != nil {
				return err
			}
			return respondText(s, i, MsgRaceRolesHeader+codeBlock("", names))
		}
		return domain.SyntaxError(ErrMsgUnknownSubcommandFmt, sub)
	}

	return cmd, handler
}

// RaceConfigCommand returns the race role administration command.
func RaceConfigCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "raceconfig",
		Description:              "Configure race roles",
		DefaultMemberPermissions: &permManageMessages,
		DMPermission:             &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			subCommand("manage", "Edit the approved race roles, or list them", roleListOptions()...),
			subCommand("toggle", "Allow or forbid race role requests",
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "enabled",
					Description: "Whether members may request race roles",
					Required:    true,
				}),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		sub, opts := subcommand(i)
		switch sub {
		case "manage":
			edit, err := svc.Bios.ManageRaceRoles(ctx, i.GuildID, opts.List("add"), opts.List("remove"))
			if err != nil {
				return err
			}
			return respondText(s, i, formatRoleEdit(edit, MsgRaceRolesHeader))

		case "toggle":
			enabled := opts.Bool("enabled")
			if err := svc.Bios.SetRaceRequesting(ctx, i.GuildID, enabled); err != nil {
				return err
			}
			state := "disabled"
			if enabled {
				state = "enabled"
			}
			return respondText(s, i, fmt.Sprintf(MsgRaceToggleFmt, state))
		}
		return domain.SyntaxError(ErrMsgUnknownSubcommandFmt, sub)
	}

	return cmd, handler
}

// RoleCommand returns the requestable role command.
func RoleCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "role",
		Description:  "Add or remove a requestable role",
		DMPermission: &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "role",
				Description: "Role name or id",
				Required:    true,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		_, opts := subcommand(i)
		role, added, err := svc.Roles.Request(ctx, i.GuildID, getInteractionUser(i).ID, opts.String("role"))
		if err != nil {
			return err
		}
		format := MsgRoleRemovedFmt
		if added {
			format = MsgRoleAddedFmt
		}
		return respondText(s, i, fmt.Sprintf(format, role.Name))
	}

	return cmd, handler
}

// RoleConfigCommand returns the requestable and default role administration
// command.
func RoleConfigCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "roleconfig",
		Description:              "Configure requestable and default roles",
		DefaultMemberPermissions: &permManageRoles,
		DMPermission:             &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			subCommand("requestable", "Edit the requestable roles, or list them", roleListOptions()...),
			subCommand("default", "Edit the roles given to new members, or list them", roleListOptions()...),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		sub, opts := subcommand(i)
		list := roles.Requestable
		switch sub {
		case "requestable":
		case "default":
			list = roles.Default
		default:
			return domain.SyntaxError(ErrMsgUnknownSubcommandFmt, sub)
		}

		edit, err := svc.Roles.Manage(ctx, i.GuildID, list, opts.List("add"), opts.List("remove"))
		if err != nil {
			return err
		}
		return respondText(s, i, formatRoleEdit(edit, fmt.Sprintf(MsgRolesHeaderFmt, list)))
	}

	return cmd, handler
}

// formatRoleEdit renders a listing under header, or the change as a diff
// block.
func formatRoleEdit(edit roles.Edit, header string) string {
	if len(edit.Added) == 0 && len(edit.Removed) == 0 {
		return header + codeBlock("", edit.Listed)
	}

	var b strings.Builder
	b.WriteString(MsgRoleDiffHeader + "\n```diff\n")
	if len(edit.Added) > 0 {
		b.WriteString("Added roles:\n+ " + strings.Join(edit.Added, "\n+ ") + "\n")
	}
	if len(edit.Removed) > 0 {
		b.WriteString("Removed roles:\n- " + strings.Join(edit.Removed, "\n- ") + "\n")
	}
	b.WriteString("```")
	return b.String()
}
