package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/osse101/RoleplayBot_Go/internal/bio"
	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
)

// focusedOption finds the option being typed, looking inside subcommands.
func focusedOption(opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range opts {
		if opt.Focused {
			return opt
		}
		if found := focusedOption(opt.Options); found != nil {
			return found
		}
	}
	return nil
}

// matchChoices keeps the names containing the typed text, case-insensitive,
// up to the Discord limit.
func matchChoices(typed string, names []string) []*discordgo.ApplicationCommandOptionChoice {
	typed = strings.ToLower(strings.TrimSpace(typed))
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, MaxAutocompleteHit)
	for _, name := range lo.Uniq(names) {
		if typed != "" && !strings.Contains(strings.ToLower(name), typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
		if len(choices) >= MaxAutocompleteHit {
			break
		}
	}
	return choices
}

// Autocomplete suggests catalog items, shop categories, character and bio
// names, and wall documents depending on the focused option.
func Autocomplete(_ context.Context, i *discordgo.InteractionCreate, svc *Services) []*discordgo.ApplicationCommandOptionChoice {
	data := i.ApplicationCommandData()
	opt := focusedOption(data.Options)
	if opt == nil {
		return nil
	}
	typed, _ := opt.Value.(string)
	guild := i.GuildID

	var names []string
	switch opt.Name {
	case "item":
		names = lo.Map(svc.Catalog.List(guild), func(e catalog.Entry, _ int) string { return e.Item.Name })
	case "category":
		names = svc.Catalog.Categories(guild)
	case "name":
		switch data.Name {
		case "bio":
			names = lo.Map(svc.Bios.List(guild, 0), func(e bio.Entry, _ int) string { return e.Bio.Name })
		case "wall":
			names = svc.Printer.List(guild)
		default:
			names = lo.Map(svc.Characters.List(guild), func(e character.Entry, _ int) string { return e.Character.Name })
		}
	}
	return matchChoices(typed, names)
}
