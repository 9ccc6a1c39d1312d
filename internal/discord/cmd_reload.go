package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// Reload targets
const (
	ReloadItems      = "items"
	ReloadCharacters = "characters"
	ReloadBios       = "bios"
	ReloadSettings   = "settings"
	ReloadAll        = "all"
)

var reloadLabels = map[string]string{
	ReloadItems:      "Items",
	ReloadCharacters: "Characters",
	ReloadBios:       "Character bios",
	ReloadSettings:   "Roles and printout documents",
	ReloadAll:        "Everything",
}

// ReloadCommand returns the maintainer command that re-reads stored
// documents, discarding in-memory state.
func ReloadCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(reloadLabels))
	for _, target := range []string{ReloadItems, ReloadCharacters, ReloadBios, ReloadSettings, ReloadAll} {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: target, Value: target})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:                     "reload",
		Description:              "[MAINTAINER] Reload stored data",
		DefaultMemberPermissions: &permManageMessages,
		DMPermission:             &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "target",
				Description: "What to reload",
				Required:    true,
				Choices:     choices,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error {
		user := getInteractionUser(i)
		if !svc.IsMaintainer(user.ID) {
			return domain.PermissionError(MsgMaintainersOnly)
		}

		_, opts := subcommand(i)
		target := opts.String("target")
		label, ok := reloadLabels[target]
		if !ok {
			return domain.SyntaxError(ErrMsgUnknownReloadFmt, target)
		}

		if err := svc.Reload(ctx, target); err != nil {
			return err
		}
		logger.FromContext(ctx).Info(LogMsgReloaded, "target", target, "user_id", user.ID)
		return respondText(s, i, fmt.Sprintf(MsgReloadedFmt, label))
	}

	return cmd, handler
}

// Reload re-reads the stores behind target. Characters are saved first so
// pending transfers are not lost.
func (svc *Services) Reload(ctx context.Context, target string) error {
	steps := map[string]func(context.Context) error{
		ReloadItems: svc.Catalog.Reload,
		ReloadCharacters: func(ctx context.Context) error {
			if err := svc.Characters.Flush(ctx); err != nil {
				return err
			}
			return svc.Characters.Reload(ctx)
		},
		ReloadBios:     svc.Bios.Reload,
		ReloadSettings: svc.Settings.Reload,
	}

	order := []string{target}
	if target == ReloadAll {
		order = []string{ReloadSettings, ReloadItems, ReloadCharacters, ReloadBios}
	}
	for _, t := range order {
		step, ok := steps[t]
		if !ok {
			return domain.SyntaxError(ErrMsgUnknownReloadFmt, t)
		}
		if err := step(ctx); err != nil {
			return fmt.Errorf("failed to reload %s: %w", t, err)
		}
	}
	return nil
}

// TargetReloader reloads one target, for callers outside the command.
type TargetReloader struct {
	Services *Services
	Target   string
}

func (r TargetReloader) Reload(ctx context.Context) error {
	return r.Services.Reload(ctx, r.Target)
}
