package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/osse101/RoleplayBot_Go/internal/bio"
	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/economy"
	"github.com/osse101/RoleplayBot_Go/internal/guildcfg"
	"github.com/osse101/RoleplayBot_Go/internal/printer"
	"github.com/osse101/RoleplayBot_Go/internal/roles"
	"github.com/osse101/RoleplayBot_Go/internal/shop"
)

// Intents the plugins rely on. Members and voice states need the
// privileged gateway intents enabled for the application.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildVoiceStates

// Services are the plugin services commands and events call into.
type Services struct {
	Catalog     catalog.Service
	Characters  character.Service
	Economy     economy.Service
	Shops       *shop.Registry
	Bios        bio.Service
	Roles       roles.Service
	Printer     printer.Service
	Settings    guildcfg.Service
	Fetcher     printer.Fetcher
	Maintainers []string
}

// IsMaintainer reports whether userID may run maintenance commands.
func (svc *Services) IsMaintainer(userID string) bool {
	return userID != "" && lo.Contains(svc.Maintainers, userID)
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	GuildID  string
	Registry *CommandRegistry
	Services *Services
}

// Config holds the bot configuration. An empty GuildID registers commands
// globally.
type Config struct {
	Token   string
	AppID   string
	GuildID string
}

// NewSession creates a Discord session with the intents the bot needs. It
// is not connected until Start.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = Intents
	s.StateEnabled = true
	return s, nil
}

// New creates a new Discord bot on a session from NewSession.
func New(s *discordgo.Session, cfg Config, svc *Services) *Bot {
	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
		Services: svc,
	}
}

// RegisterDefaultCommands adds every plugin command to the registry.
func (b *Bot) RegisterDefaultCommands() {
	for _, factory := range []func() (*discordgo.ApplicationCommand, CommandHandler){
		ItemCommand,
		CharCommand,
		EconCommand,
		ShopCommand,
		BioCommand,
		RaceCommand,
		RaceConfigCommand,
		RoleCommand,
		RoleConfigCommand,
		WallCommand,
		ScreenShareCommand,
		ReloadCommand,
	} {
		cmd, handler := factory()
		b.Registry.Register(cmd, handler)
		if hasAutocomplete(cmd.Options) {
			b.Registry.RegisterAutocomplete(cmd.Name, Autocomplete)
		}
	}
}

func hasAutocomplete(opts []*discordgo.ApplicationCommandOption) bool {
	return lo.SomeBy(opts, func(o *discordgo.ApplicationCommandOption) bool {
		return o.Autocomplete || hasAutocomplete(o.Options)
	})
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageReactionAdd)
	b.Session.AddHandler(b.messageDelete)
	b.Session.AddHandler(b.guildMemberAdd)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning, "app_id", b.AppID)
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() error {
	return b.Session.Close()
}

// Run runs the bot until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return b.Stop()
}
