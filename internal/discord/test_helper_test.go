package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RoleplayBot_Go/internal/bio"
	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/concurrency"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/economy"
	"github.com/osse101/RoleplayBot_Go/internal/guildcfg"
	"github.com/osse101/RoleplayBot_Go/internal/printer"
	"github.com/osse101/RoleplayBot_Go/internal/roles"
	"github.com/osse101/RoleplayBot_Go/internal/shop"
	"github.com/osse101/RoleplayBot_Go/internal/store"
	"github.com/osse101/RoleplayBot_Go/internal/validation"
)

const (
	testGuild   = "100"
	testChannel = "200"
	testUser    = "7"
	testAppID   = "300"
	testToken   = "interaction-token"
	testMessage = "400"
)

func ptr[T any](v T) *T { return &v }

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// capturedEdit is one edit of the original interaction reply.
type capturedEdit struct {
	Content string                    `json:"content"`
	Embeds  []*discordgo.MessageEmbed `json:"embeds"`
	Files   []string                  `json:"-"`
}

// fakePlatform records side effects instead of calling Discord.
type fakePlatform struct {
	mu      sync.Mutex
	roles   []domain.Role
	members map[string]*domain.Member
	edits   map[string]string
	deleted []string
	posts   []string
	nextID  int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		roles: []domain.Role{
			{ID: "r1", Name: "Elf", Position: 2},
			{ID: "r2", Name: "Dwarf", Position: 1},
			{ID: "r3", Name: "Artist", Position: 3},
		},
		members: map[string]*domain.Member{testUser: {ID: testUser, DisplayName: "Owner"}},
		edits:   make(map[string]string),
	}
}

func (p *fakePlatform) EditMessage(_ context.Context, _, messageID, content string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.edits[messageID] = content
	return nil
}

func (p *fakePlatform) DeleteMessage(_ context.Context, _, messageID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, messageID)
	return nil
}

func (p *fakePlatform) SendEmbed(_ context.Context, _ string, e domain.Embed) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.posts = append(p.posts, e.Title)
	return fmt.Sprintf("pin-%d", p.nextID), nil
}

func (p *fakePlatform) EditEmbed(context.Context, string, string, domain.Embed) error { return nil }

func (p *fakePlatform) SendPost(_ context.Context, _ string, content string, _ *domain.Embed, _ *printer.File) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.posts = append(p.posts, content)
	return nil
}

func (p *fakePlatform) GuildRoles(context.Context, string) ([]domain.Role, error) {
	return p.roles, nil
}

func (p *fakePlatform) Member(_ context.Context, _, user string) (domain.Member, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, ok := p.members[user]
	if !ok {
		return domain.Member{}, fmt.Errorf("unknown member %s", user)
	}
	return *m, nil
}

func (p *fakePlatform) AddRole(_ context.Context, _, user, role, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	m := p.members[user]
	m.Roles = append(m.Roles, role)
	return nil
}

func (p *fakePlatform) RemoveRole(_ context.Context, _, user, role, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	m := p.members[user]
	kept := m.Roles[:0]
	for _, r := range m.Roles {
		if r != role {
			kept = append(kept, r)
		}
	}
	m.Roles = kept
	return nil
}

func (p *fakePlatform) memberRoles(user string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.members[user].Roles...)
}

// fakeFetcher serves attachment bodies by URL.
type fakeFetcher map[string][]byte

func (f fakeFetcher) Fetch(_ context.Context, rawURL string) (*printer.File, error) {
	data, ok := f[rawURL]
	if !ok {
		return nil, fmt.Errorf("no such file %s", rawURL)
	}
	return &printer.File{Name: "file.json", ContentType: "application/json", Data: data}, nil
}

// TestContext bundles a session with intercepted HTTP, services over memory
// stores and everything the session sent.
type TestContext struct {
	Session   *discordgo.Session
	Services  *Services
	Platform  *fakePlatform
	Fetcher   fakeFetcher
	Registry  *CommandRegistry
	Transport *MockRoundTripper

	mu        sync.Mutex
	edits     []capturedEdit
	responses []discordgo.InteractionResponse
	followups []string
	requests  []string
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()
	ctx := context.Background()
	backend := store.NewMemory()
	locks := concurrency.NewLockManager()
	validator := validation.MustSchemaValidator()

	itemDocs, err := store.Open[catalog.Catalog](ctx, backend, store.NamespaceItems)
	require.NoError(t, err)
	charDocs, err := store.Open[character.Roster](ctx, backend, store.NamespaceCharacters)
	require.NoError(t, err)
	bioDocs, err := store.Open[bio.Book](ctx, backend, store.NamespaceBios)
	require.NoError(t, err)
	cfgDocs, err := store.Open[guildcfg.Settings](ctx, backend, store.NamespaceSettings)
	require.NoError(t, err)

	tc := &TestContext{Platform: newFakePlatform(), Fetcher: fakeFetcher{}}
	settings := guildcfg.NewService(cfgDocs, locks)
	items := catalog.NewService(itemDocs, locks, validator)
	roleSvc := roles.NewService(settings, tc.Platform)
	bios := bio.NewService(bioDocs, settings, roleSvc, tc.Platform, tc.Platform, locks, validator)
	chars := character.NewService(charDocs, items, bios, locks, validator)
	shops, err := shop.NewRegistry(tc.Platform, time.Minute, 10)
	require.NoError(t, err)

	tc.Services = &Services{
		Catalog:     items,
		Characters:  chars,
		Economy:     economy.NewService(chars, items, nil),
		Shops:       shops,
		Bios:        bios,
		Roles:       roleSvc,
		Printer:     printer.NewService(settings, tc.Platform, tc.Fetcher, nil, validator),
		Settings:    settings,
		Fetcher:     tc.Fetcher,
		Maintainers: []string{testUser},
	}

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	tc.Transport = &MockRoundTripper{RoundTripFunc: tc.roundTrip}
	session.Client = &http.Client{Transport: tc.Transport}
	tc.Session = session

	bot := New(session, Config{AppID: testAppID, GuildID: testGuild}, tc.Services)
	bot.RegisterDefaultCommands()
	tc.Registry = bot.Registry

	t.Cleanup(shops.Shutdown)
	return tc
}

func (tc *TestContext) roundTrip(req *http.Request) (*http.Response, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.requests = append(tc.requests, req.Method+" "+req.URL.Path)

	path := req.URL.Path
	switch {
	case req.Method == http.MethodPost && strings.HasSuffix(path, "/callback"):
		var resp discordgo.InteractionResponse
		if err := json.NewDecoder(req.Body).Decode(&resp); err != nil {
			return nil, err
		}
		tc.responses = append(tc.responses, resp)
	case req.Method == http.MethodPatch && strings.HasSuffix(path, "/messages/@original"):
		edit, err := decodeEdit(req)
		if err != nil {
			return nil, err
		}
		tc.edits = append(tc.edits, edit)
		return jsonResponse(fmt.Sprintf(`{"id":%q,"channel_id":%q}`, testMessage, testChannel)), nil
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/v"):
		if strings.Contains(path, "/webhooks/") {
			var params discordgo.WebhookParams
			if err := json.NewDecoder(req.Body).Decode(&params); err != nil {
				return nil, err
			}
			tc.followups = append(tc.followups, params.Content)
		}
	}
	return jsonResponse("{}"), nil
}

// decodeEdit reads a JSON or multipart reply edit.
func decodeEdit(req *http.Request) (capturedEdit, error) {
	var edit capturedEdit
	mediaType, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		err := json.NewDecoder(req.Body).Decode(&edit)
		return edit, err
	}

	mr := multipart.NewReader(req.Body, params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return edit, nil
		}
		if err != nil {
			return edit, err
		}
		if part.FormName() == "payload_json" {
			if err := json.NewDecoder(part).Decode(&edit); err != nil {
				return edit, err
			}
			continue
		}
		edit.Files = append(edit.Files, part.FileName())
	}
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// Run dispatches a slash command through the registry.
func (tc *TestContext) Run(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) {
	tc.Registry.Handle(tc.Session, commandInteraction(name, opts...), tc.Services)
}

// LastReply returns the final content of the interaction reply.
func (tc *TestContext) LastReply(t *testing.T) capturedEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	require.NotEmpty(t, tc.edits, "no reply was sent")
	return tc.edits[len(tc.edits)-1]
}

func (tc *TestContext) Followups() []string {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]string(nil), tc.followups...)
}

func (tc *TestContext) Requests() []string {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]string(nil), tc.requests...)
}

func (tc *TestContext) AddItem(t *testing.T, id string, patch domain.ItemPatch) {
	t.Helper()
	_, _, err := tc.Services.Catalog.Upsert(context.Background(), testGuild, id, patch)
	require.NoError(t, err)
}

func (tc *TestContext) AddCharacter(t *testing.T, name, doc string) {
	t.Helper()
	_, _, err := tc.Services.Characters.Upload(context.Background(), testGuild, name, []byte(doc))
	require.NoError(t, err)
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "500",
		AppID:     testAppID,
		Token:     testToken,
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   testGuild,
		ChannelID: testChannel,
		Member: &discordgo.Member{
			User:        &discordgo.User{ID: testUser, Username: "owner"},
			Permissions: discordgo.PermissionManageMessages,
		},
		Data: discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
	}}
}

func subOpt(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Name:    name,
		Options: opts,
	}
}

func strOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionString,
		Name:  name,
		Value: value,
	}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionInteger,
		Name:  name,
		Value: float64(value),
	}
}

func boolOpt(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Name:  name,
		Value: value,
	}
}
