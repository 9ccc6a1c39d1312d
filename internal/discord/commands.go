package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/metrics"
)

// CommandHandler handles a slash command. The interaction is already
// deferred; the handler edits the deferred reply and returns any error for
// the registry to report.
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error

// AutocompleteHandler suggests values for the focused option.
type AutocompleteHandler func(ctx context.Context, i *discordgo.InteractionCreate, svc *Services) []*discordgo.ApplicationCommandOptionChoice

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands      map[string]*discordgo.ApplicationCommand
	Handlers      map[string]CommandHandler
	Autocompletes map[string]AutocompleteHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:      make(map[string]*discordgo.ApplicationCommand),
		Handlers:      make(map[string]CommandHandler),
		Autocompletes: make(map[string]AutocompleteHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterAutocomplete adds choices for a registered command's options.
func (r *CommandRegistry) RegisterAutocomplete(name string, handler AutocompleteHandler) {
	r.Autocompletes[name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		r.handleCommand(ctx, s, i, svc)
	case discordgo.InteractionApplicationCommandAutocomplete:
		r.handleAutocomplete(ctx, s, i, svc)
	}
}

func (r *CommandRegistry) handleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownCommand, "command", name)
		return
	}

	if !deferResponse(ctx, s, i) {
		return
	}

	start := time.Now()
	err := h(ctx, s, i, svc)
	metrics.ObserveCommand(name, time.Since(start).Seconds(), err)
	if err == nil {
		return
	}

	logCommandError(ctx, name, err)
	respondError(ctx, s, i, formatFriendlyError(err))
}

func (r *CommandRegistry) handleAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	h, ok := r.Autocompletes[i.ApplicationCommandData().Name]
	if !ok {
		return
	}
	choices := h(ctx, i, svc)
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgAutocompleteFailed, "error", err)
	}
}

// logCommandError logs user mistakes quietly and everything else loudly.
func logCommandError(ctx context.Context, command string, err error) {
	log := logger.FromContext(ctx)
	switch {
	case errors.Is(err, domain.ErrSyntax):
		log.Warn(LogMsgCommandRejected, "command", command, "error", err)
	case errors.Is(err, domain.ErrPermission), errors.Is(err, domain.ErrNotFound):
		log.Info(LogMsgCommandDenied, "command", command, "error", err)
	default:
		log.Error(LogMsgCommandFailed, "command", command, "error", err)
	}
}

// RegisterCommands intelligently registers/updates commands with Discord
// Only performs updates if commands have changed to avoid rate limits
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info(LogMsgCommandsChecking, "guild_id", b.GuildID)

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if forceUpdate {
		slog.Info(LogMsgCommandsForced, "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		return nil
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existingCmds))
		return nil
	}

	slog.Info(LogMsgCommandsChanged, "existing", len(existingCmds), "desired", len(desiredCmds))

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, desired := range desired {
		existing, ok := existingMap[desired.Name]
		if !ok {
			return false
		}
		if !commandEqual(existing, desired) {
			return false
		}
	}

	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}

	return optionsEqual(a.Options, b.Options)
}

func optionsEqual(a, b []*discordgo.ApplicationCommandOption) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !optionEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// optionEqual checks if two command options are equivalent, subcommand
// options included.
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description ||
		a.Required != b.Required || a.Autocomplete != b.Autocomplete {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || fmt.Sprint(a.Choices[i].Value) != fmt.Sprint(b.Choices[i].Value) {
			return false
		}
	}

	return optionsEqual(a.Options, b.Options)
}
