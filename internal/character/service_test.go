package character

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/concurrency"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/store"
	"github.com/osse101/RoleplayBot_Go/internal/validation"
)

const testGuild = "100"

type fakeBios map[string]BioLink

func (f fakeBios) LinkedBio(_, id string) (BioLink, bool) {
	link, ok := f[id]
	return link, ok
}

type failingBackend struct{}

func (failingBackend) Load(context.Context, string) (map[string]json.RawMessage, error) {
	return map[string]json.RawMessage{}, nil
}

func (failingBackend) Save(context.Context, string, map[string]json.RawMessage) error {
	return errors.New("disk full")
}

func newTestService(t *testing.T, backend store.Backend, bios BioSource) Service {
	t.Helper()
	ctx := context.Background()
	locks := concurrency.NewLockManager()
	validator := validation.MustSchemaValidator()

	items, err := store.Open[catalog.Catalog](ctx, store.NewMemory(), store.NamespaceItems)
	require.NoError(t, err)
	catalogSvc := catalog.NewService(items, locks, validator)
	_, _, err = catalogSvc.Upsert(ctx, testGuild, "sword", domain.ItemPatch{Name: ptr("Sword")})
	require.NoError(t, err)

	chars, err := store.Open[Roster](ctx, backend, store.NamespaceCharacters)
	require.NoError(t, err)
	return NewService(chars, catalogSvc, bios, locks, validator)
}

func TestGetOrCreate_Precedence(t *testing.T) {
	ctx := context.Background()
	bios := fakeBios{
		"aragorn": {Name: "Aragorn", Image: "https://img.test/bio.png", Author: 42},
	}
	svc := newTestService(t, store.NewMemory(), bios)

	_, _, err := svc.Upload(ctx, testGuild, "Boromir", []byte(`{"name":"Boromir","money":5}`))
	require.NoError(t, err)

	t.Run("stored record", func(t *testing.T) {
		id, c, err := svc.GetOrCreate(ctx, testGuild, "BOROMIR")
		require.NoError(t, err)
		assert.Equal(t, "boromir", id)
		assert.Equal(t, 5, c.Money)
	})

	t.Run("linked bio", func(t *testing.T) {
		id, c, err := svc.GetOrCreate(ctx, testGuild, "Aragorn")
		require.NoError(t, err)
		assert.Equal(t, "aragorn", id)
		assert.Equal(t, "Aragorn", c.Name)
		assert.Equal(t, "https://img.test/bio.png", c.Image)
		assert.Equal(t, domain.Snowflake(42), c.Owner)
		assert.NotNil(t, c.Inventory)

		ids := make([]string, 0)
		for _, e := range svc.List(testGuild) {
			ids = append(ids, e.ID)
		}
		assert.Contains(t, ids, "aragorn")
	})

	t.Run("neither", func(t *testing.T) {
		_, _, err := svc.GetOrCreate(ctx, testGuild, "Gimli")
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})
}

func TestGetOrCreate_TruncatesBioName(t *testing.T) {
	long := strings.Repeat("Aragorn ", 8)
	svc := newTestService(t, store.NewMemory(), fakeBios{"aragorn": {Name: long}})

	_, c, err := svc.GetOrCreate(context.Background(), testGuild, "Aragorn")

	require.NoError(t, err)
	assert.Equal(t, domain.MaxCharacterNameLength, utf8.RuneCountInString(c.Name))
	assert.Equal(t, long[:domain.MaxCharacterNameLength], c.Name)
}

func TestGetOrCreate_NoBioSource(t *testing.T) {
	svc := newTestService(t, store.NewMemory(), nil)

	_, _, err := svc.GetOrCreate(context.Background(), testGuild, "Aragorn")
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestUpdate_IsAtomic(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemory(), nil)
	_, _, err := svc.Upload(ctx, testGuild, "Bob", []byte(`{"name":"Bob","money":10}`))
	require.NoError(t, err)

	err = svc.Update(ctx, testGuild, func(b *Batch) error {
		_, c, err := b.Character("bob")
		if err != nil {
			return err
		}
		c.Money = 999
		Stack(&c.Inventory, domain.InventoryEntry{ItemID: "sword", Count: 1})
		return domain.PermissionError("nope")
	})
	require.Error(t, err)

	_, c, err := svc.GetOrCreate(ctx, testGuild, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 10, c.Money)
	assert.Empty(t, c.Inventory)
}

func TestUpdate_Commits(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemory(), nil)
	_, _, err := svc.Upload(ctx, testGuild, "Bob", []byte(`{"name":"Bob"}`))
	require.NoError(t, err)
	require.NoError(t, svc.Flush(ctx))
	assert.False(t, svc.Dirty())

	err = svc.Update(ctx, testGuild, func(b *Batch) error {
		_, c, err := b.Character("Bob")
		if err != nil {
			return err
		}
		Stack(&c.Inventory, domain.InventoryEntry{ItemID: "sword", Count: 2})
		return nil
	})
	require.NoError(t, err)
	assert.True(t, svc.Dirty())

	_, c, err := svc.GetOrCreate(ctx, testGuild, "bob")
	require.NoError(t, err)
	require.Len(t, c.Inventory, 1)
	assert.Equal(t, 2, c.Inventory[0].Count)
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemory(), nil)

	c, created, err := svc.Upload(ctx, testGuild, "Bob", []byte(`{"name":"Bob","inv":[{"name":"sword","count":1}]}`))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, c.Inventory, 1)

	_, created, err = svc.Upload(ctx, testGuild, "bob", []byte(`{"money":3}`))
	require.NoError(t, err)
	assert.False(t, created)

	_, _, err = svc.Upload(ctx, testGuild, "bob", []byte(`{"inv":[{"count":1}]}`))
	assert.ErrorIs(t, err, domain.ErrSyntax)

	_, _, err = svc.Upload(ctx, testGuild, "bob", []byte(`{"inv":[{"name":"gem","override":{"p_sell":"x"},"count":1}]}`))
	assert.ErrorIs(t, err, domain.ErrSyntax)

	_, got, err := svc.GetOrCreate(ctx, testGuild, "bob")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Money)
	assert.Empty(t, got.Inventory, "second upload replaced the record with template inventory")
}

func TestDelete_Suggestions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemory(), nil)
	for _, name := range []string{"Aragorn", "Gimli"} {
		_, _, err := svc.Upload(ctx, testGuild, name, []byte(`{"name":"`+name+`"}`))
		require.NoError(t, err)
	}

	_, err := svc.Delete(ctx, testGuild, "aragon")

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"aragorn"}, nf.Suggestions)

	c, err := svc.Delete(ctx, testGuild, "Aragorn")
	require.NoError(t, err)
	assert.Equal(t, "Aragorn", c.Name)

	_, _, err = svc.GetOrCreate(ctx, testGuild, "aragorn")
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestDump(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemory(), nil)
	_, _, err := svc.Upload(ctx, testGuild, "Bob", []byte(`{"name":"Bob","owner":7}`))
	require.NoError(t, err)

	id, data, err := svc.Dump(ctx, testGuild, "Bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", id)
	assert.JSONEq(t, `{"owner":7,"name":"Bob","image":"","money":0,"inv":[],"inv_key":[],"fields":[]}`, string(data))
}

func TestFlush(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemory()
	svc := newTestService(t, backend, nil)
	_, _, err := svc.Upload(ctx, testGuild, "Bob", []byte(`{"name":"Bob"}`))
	require.NoError(t, err)

	require.NoError(t, FlushJob{Service: svc}.Process(ctx))
	assert.False(t, svc.Dirty())

	reopened, err := store.Open[Roster](ctx, backend, store.NamespaceCharacters)
	require.NoError(t, err)
	roster, ok := reopened.Get(testGuild)
	require.True(t, ok)
	assert.Contains(t, roster, "bob")
}

func TestFlush_FailureStaysDirty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, failingBackend{}, nil)
	_, _, err := svc.Upload(ctx, testGuild, "Bob", []byte(`{"name":"Bob"}`))
	require.NoError(t, err)

	err = FlushJob{Service: svc}.Process(ctx)

	assert.Error(t, err)
	assert.True(t, svc.Dirty())
}

func TestReload_DropsUnsaved(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemory(), nil)
	_, _, err := svc.Upload(ctx, testGuild, "Bob", []byte(`{"name":"Bob"}`))
	require.NoError(t, err)

	require.NoError(t, svc.Reload(ctx))

	assert.False(t, svc.Dirty())
	_, _, err = svc.GetOrCreate(ctx, testGuild, "Bob")
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}
