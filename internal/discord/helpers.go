package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RoleplayBot_Go/internal/bio"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/logger"
	"github.com/osse101/RoleplayBot_Go/internal/printer"
)

// Permission sets used as DefaultMemberPermissions
var (
	permManageMessages int64 = discordgo.PermissionManageMessages
	permManageRoles    int64 = discordgo.PermissionManageRoles
)

var dmPermission = false

// deferResponse acknowledges an interaction with a deferred message.
// Required before any async operations that might take longer than 3 seconds.
// Returns false if deferral failed (should return early from handler).
func deferResponse(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, edit *discordgo.WebhookEdit) error {
	if _, err := s.InteractionResponseEdit(i.Interaction, edit); err != nil {
		return fmt.Errorf("failed to edit interaction response: %w", err)
	}
	return nil
}

// respondText replaces the deferred reply with content.
func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return editResponse(s, i, &discordgo.WebhookEdit{Content: &content})
}

// respondEmbed replaces the deferred reply with an embed.
func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, e domain.Embed) error {
	return editResponse(s, i, &discordgo.WebhookEdit{Embeds: &[]*discordgo.MessageEmbed{toDiscordEmbed(e)}})
}

// respondFile replaces the deferred reply with content and one attachment.
func respondFile(s *discordgo.Session, i *discordgo.InteractionCreate, content, name string, data []byte) error {
	return editResponse(s, i, &discordgo.WebhookEdit{
		Content: &content,
		Files: []*discordgo.File{{
			Name:        name,
			ContentType: "application/json",
			Reader:      bytes.NewReader(data),
		}},
	})
}

// respondError sends a message for a failed command. Delivery failures are
// only logged since there is nobody left to tell.
func respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if err := respondText(s, i, message); err != nil {
		logger.FromContext(ctx).Error(LogMsgRespondFailed, "error", err)
	}
}

// formatFriendlyError turns a command error into the reply shown to the
// user. Fuzzy lookups that found near misses list them.
func formatFriendlyError(err error) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) && nf.HasSuggestions() {
		return MsgSuggestions + codeBlock("", nf.Suggestions)
	}

	var ue *domain.UserError
	switch {
	case errors.As(err, &ue):
		return fmt.Sprintf(MsgErrorFmt, ue.Error())
	case errors.Is(err, domain.ErrSyntax), errors.Is(err, domain.ErrPermission), errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf(MsgErrorFmt, err.Error())
	default:
		return MsgGenericError
	}
}

// codeBlock wraps lines in a fenced block with an optional language.
func codeBlock(lang string, lines []string) string {
	return "```" + lang + "\n" + strings.Join(lines, "\n") + "```"
}

// toDiscordEmbed converts the platform-neutral embed. Empty parts are left
// nil so Discord does not reject them.
func toDiscordEmbed(e domain.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Color:       e.Color,
	}
	for _, f := range e.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if e.Image != "" {
		out.Image = &discordgo.MessageEmbedImage{URL: e.Image}
	}
	if e.Thumbnail != "" {
		out.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.Thumbnail}
	}
	if e.Footer != "" || e.FooterIcon != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer, IconURL: e.FooterIcon}
	}
	if e.Author != "" {
		out.Author = &discordgo.MessageEmbedAuthor{Name: e.Author, URL: e.AuthorURL, IconURL: e.AuthorIcon}
	}
	return out
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// isModerator reports whether the invoking member may manage messages.
func isModerator(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionManageMessages != 0
}

// bioActor describes the invoking member for ownership checks.
func bioActor(i *discordgo.InteractionCreate) bio.Actor {
	id, _ := domain.ParseSnowflake(getInteractionUser(i).ID)
	return bio.Actor{ID: id, Moderator: isModerator(i)}
}

// options indexes one level of interaction options by name.
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// subcommand returns the invoked subcommand and its options.
func subcommand(i *discordgo.InteractionCreate) (string, options) {
	opts := i.ApplicationCommandData().Options
	if len(opts) == 0 || opts[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return "", optionMap(opts)
	}
	return opts[0].Name, optionMap(opts[0].Options)
}

func (o options) String(name string) string {
	if opt, ok := o[name]; ok {
		return strings.TrimSpace(opt.StringValue())
	}
	return ""
}

func (o options) Int(name string, def int) int {
	if opt, ok := o[name]; ok {
		return int(opt.IntValue())
	}
	return def
}

func (o options) Bool(name string) bool {
	if opt, ok := o[name]; ok {
		return opt.BoolValue()
	}
	return false
}

// List splits a comma separated option, dropping blanks.
func (o options) List(name string) []string {
	var out []string
	for _, part := range strings.Split(o.String(name), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ID returns the snowflake of a user, role or channel option.
func (o options) ID(name string) string {
	if opt, ok := o[name]; ok {
		if id, ok := opt.Value.(string); ok {
			return id
		}
	}
	return ""
}

// attachment resolves an attachment option.
func attachment(i *discordgo.InteractionCreate, o options, name string) (*discordgo.MessageAttachment, error) {
	opt, ok := o[name]
	if !ok {
		return nil, domain.SyntaxError(MsgMissingFile)
	}
	id, _ := opt.Value.(string)
	data := i.ApplicationCommandData()
	if data.Resolved == nil || data.Resolved.Attachments[id] == nil {
		return nil, domain.SyntaxError(MsgMissingFile)
	}
	return data.Resolved.Attachments[id], nil
}

// fetchAttachment downloads an attachment option's bytes.
func fetchAttachment(ctx context.Context, i *discordgo.InteractionCreate, o options, name string, svc *Services) ([]byte, error) {
	att, err := attachment(i, o, name)
	if err != nil {
		return nil, err
	}
	file, err := svc.Fetcher.Fetch(ctx, att.URL)
	if errors.Is(err, printer.ErrFileTooBig) {
		return nil, domain.SyntaxError("%s", err.Error())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	return file.Data, nil
}

// plural appends an s when n is not one.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
