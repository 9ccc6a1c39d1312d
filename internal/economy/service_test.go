package economy

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/character"
	"github.com/osse101/RoleplayBot_Go/internal/concurrency"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/event"
	"github.com/osse101/RoleplayBot_Go/internal/store"
	"github.com/osse101/RoleplayBot_Go/internal/validation"
)

const testGuild = "100"

func ptr[T any](v T) *T { return &v }

type fixture struct {
	svc   Service
	chars character.Service
	bus   *event.MemoryBus
	kinds []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	locks := concurrency.NewLockManager()
	validator := validation.MustSchemaValidator()

	itemStore, err := store.Open[catalog.Catalog](ctx, store.NewMemory(), store.NamespaceItems)
	require.NoError(t, err)
	items := catalog.NewService(itemStore, locks, validator)
	for id, patch := range map[string]domain.ItemPatch{
		"health_potion": {Name: ptr("Health Potion"), InShop: ptr(true), BuyPrice: ptr(34), SellPrice: ptr(10)},
		"mana_potion":   {Name: ptr("Mana Potion"), InShop: ptr(true), BuyPrice: ptr(20), SellPrice: ptr(5)},
		"sword":         {Name: ptr("Sword"), InShop: ptr(false), BuyPrice: ptr(500), SellPrice: ptr(50)},
		"gem":           {Name: ptr("Gem"), InShop: ptr(true), BuyPrice: ptr(0), SellPrice: ptr(0)},
	} {
		_, _, err := items.Upsert(ctx, testGuild, id, patch)
		require.NoError(t, err)
	}

	charStore, err := store.Open[character.Roster](ctx, store.NewMemory(), store.NamespaceCharacters)
	require.NoError(t, err)
	chars := character.NewService(charStore, items, nil, locks, validator)
	for name, doc := range map[string]string{
		"Bob":   `{"name":"Bob","money":100,"inv":[{"name":"sword","count":3},{"name":"gem","count":1}],"inv_key":[{"name":"sword","count":1}]}`,
		"Alice": `{"name":"Alice","money":10}`,
	} {
		_, _, err := chars.Upload(ctx, testGuild, name, []byte(doc))
		require.NoError(t, err)
	}

	f := &fixture{chars: chars, bus: event.NewMemoryBus()}
	f.bus.Subscribe(event.TransferCompleted, func(_ context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.TransferPayloadV1](evt.Payload)
		f.kinds = append(f.kinds, p.Kind)
		return err
	})
	f.svc = NewService(chars, items, f.bus)
	return f
}

func (f *fixture) character(t *testing.T, name string) domain.Character {
	t.Helper()
	_, c, err := f.chars.GetOrCreate(context.Background(), testGuild, name)
	require.NoError(t, err)
	return c
}

func TestBuyItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.BuyItem(ctx, testGuild, "Bob", "health potion", 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.ErrorIs(t, err, domain.ErrPermission)
	assert.Equal(t, 100, f.character(t, "Bob").Money, "rejected purchase must not debit")

	res, err := f.svc.BuyItem(ctx, testGuild, "Bob", "health potion", 2)
	require.NoError(t, err)
	assert.Equal(t, 68, res.Money)
	assert.Equal(t, "Health Potion", res.ItemName)

	bob := f.character(t, "Bob")
	assert.Equal(t, 32, bob.Money)
	assert.Equal(t, 2, character.Count(bob.Inventory, domain.InventoryEntry{ItemID: "health_potion"}))
	assert.Equal(t, []string{event.TransferBuy}, f.kinds)
}

func TestBuyItem_BalanceMustExceedCost(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.BuyItem(context.Background(), testGuild, "Bob", "mana_potion", 5)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestBuyItem_CostOverflow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, amount := range []int{1 << 62, math.MaxInt/34 + 1, math.MaxInt} {
		_, err := f.svc.BuyItem(ctx, testGuild, "Bob", "health_potion", amount)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds, "amount %d", amount)
	}

	bob := f.character(t, "Bob")
	assert.Equal(t, 100, bob.Money)
	assert.Zero(t, character.Count(bob.Inventory, domain.InventoryEntry{ItemID: "health_potion"}))
	assert.Empty(t, f.kinds)
}

func TestBalanceLimits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AdminGive(ctx, testGuild, "Bob", "money", math.MaxInt-100, false)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, f.character(t, "Bob").Money)

	_, err = f.svc.AdminGive(ctx, testGuild, "Bob", "money", 1, false)
	assert.ErrorIs(t, err, domain.ErrPermission)

	_, err = f.svc.SellItem(ctx, testGuild, "Bob", "sword", 1, false)
	assert.ErrorIs(t, err, domain.ErrPermission)
	assert.Equal(t, 3, character.Count(f.character(t, "Bob").Inventory, domain.InventoryEntry{ItemID: "sword"}))

	_, err = f.svc.Pay(ctx, testGuild, "Alice", "Bob", 10)
	assert.ErrorIs(t, err, domain.ErrPermission)
	assert.Equal(t, 10, f.character(t, "Alice").Money)

	_, err = f.svc.AdminTake(ctx, testGuild, "Alice", "money", math.MaxInt, false)
	require.NoError(t, err)
	_, err = f.svc.AdminTake(ctx, testGuild, "Alice", "money", math.MaxInt, false)
	assert.ErrorIs(t, err, domain.ErrPermission)
	assert.Equal(t, 10-math.MaxInt, f.character(t, "Alice").Money)

	_, err = f.svc.AdminGive(ctx, testGuild, "Bob", "sword", math.MaxInt, false)
	assert.ErrorIs(t, err, domain.ErrPermission)
	assert.Equal(t, 3, character.Count(f.character(t, "Bob").Inventory, domain.InventoryEntry{ItemID: "sword"}))
}

func TestBuyItem_NotForSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name            string
		query           string
		wantSuggestions []string
	}{
		{"not in shop", "sword", nil},
		{"no price", "gem", nil},
		{"ambiguous", "potion", []string{"Health Potion", "Mana Potion"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.BuyItem(ctx, testGuild, "Bob", tt.query, 1)

			var nf *domain.NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.ErrorIs(t, err, domain.ErrItemNotFound)
			assert.Equal(t, tt.wantSuggestions, nf.Suggestions)
		})
	}
}

func TestAmountPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, amount := range []int{0, -1} {
		_, err := f.svc.BuyItem(ctx, testGuild, "Bob", "health_potion", amount)
		assert.ErrorIs(t, err, domain.ErrSyntax)
		_, err = f.svc.SellItem(ctx, testGuild, "Bob", "sword", amount, false)
		assert.ErrorIs(t, err, domain.ErrSyntax)
		_, err = f.svc.GiveItem(ctx, testGuild, "Bob", "Alice", "sword", amount, false)
		assert.ErrorIs(t, err, domain.ErrSyntax)
		_, err = f.svc.Pay(ctx, testGuild, "Bob", "Alice", amount)
		assert.ErrorIs(t, err, domain.ErrSyntax)
		_, err = f.svc.AdminGive(ctx, testGuild, "Bob", "money", amount, false)
		assert.ErrorIs(t, err, domain.ErrSyntax)
		_, err = f.svc.AdminTake(ctx, testGuild, "Bob", "money", amount, false)
		assert.ErrorIs(t, err, domain.ErrSyntax)
	}
	assert.Empty(t, f.kinds)
}

func TestSellItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.SellItem(ctx, testGuild, "Bob", "Sword", 2, false)
	require.NoError(t, err)
	assert.False(t, res.NoBuyer)
	assert.Equal(t, 100, res.Money)

	bob := f.character(t, "Bob")
	assert.Equal(t, 200, bob.Money)
	assert.Equal(t, 1, character.Count(bob.Inventory, domain.InventoryEntry{ItemID: "sword"}))

	_, err = f.svc.SellItem(ctx, testGuild, "Bob", "sword", 2, false)
	assert.ErrorIs(t, err, domain.ErrPermission)

	_, err = f.svc.SellItem(ctx, testGuild, "Bob", "sword", 1, true)
	assert.ErrorIs(t, err, domain.ErrPermission)
}

func TestSellItem_NoBuyer(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.SellItem(context.Background(), testGuild, "Bob", "gem", 1, false)

	require.NoError(t, err)
	assert.True(t, res.NoBuyer)
	bob := f.character(t, "Bob")
	assert.Equal(t, 100, bob.Money)
	assert.Equal(t, 1, character.Count(bob.Inventory, domain.InventoryEntry{ItemID: "gem"}))
	assert.Empty(t, f.kinds)
}

func TestSellItem_OverridePrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.GiveCustom(ctx, testGuild, "Alice", []byte(`{"name":"gem","override":{"name":"Star Gem","p_sell":40},"count":1}`), false)
	require.NoError(t, err)

	res, err := f.svc.SellItem(ctx, testGuild, "Alice", "star gem", 1, false)

	require.NoError(t, err)
	assert.Equal(t, 40, res.Money)
	assert.Equal(t, "Star Gem", res.ItemName)
	assert.Equal(t, 50, f.character(t, "Alice").Money)
}

func TestGiveItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.GiveItem(ctx, testGuild, "Bob", "Alice", "1", 2, false)
	require.NoError(t, err)
	assert.Equal(t, "Sword", res.ItemName)
	assert.Equal(t, "Alice", res.Recipient)

	assert.Equal(t, 1, character.Count(f.character(t, "Bob").Inventory, domain.InventoryEntry{ItemID: "sword"}))
	assert.Equal(t, 2, character.Count(f.character(t, "Alice").Inventory, domain.InventoryEntry{ItemID: "sword"}))

	_, err = f.svc.GiveItem(ctx, testGuild, "Bob", "Alice", "sword", 5, false)
	assert.ErrorIs(t, err, domain.ErrPermission)

	_, err = f.svc.GiveItem(ctx, testGuild, "Bob", "Alice", "sword", 1, true)
	assert.ErrorIs(t, err, domain.ErrPermission)

	_, err = f.svc.GiveItem(ctx, testGuild, "Bob", "Nobody", "sword", 1, false)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	assert.Equal(t, 1, character.Count(f.character(t, "Bob").Inventory, domain.InventoryEntry{ItemID: "sword"}), "failed give must not remove items")
}

func TestPay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Pay(ctx, testGuild, "Alice", "Bob", 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	res, err := f.svc.Pay(ctx, testGuild, "Alice", "Bob", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Money)
	assert.Equal(t, 0, f.character(t, "Alice").Money)
	assert.Equal(t, 110, f.character(t, "Bob").Money)
}

func TestAdminGive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AdminGive(ctx, testGuild, "Alice", "MONEY", 15, false)
	require.NoError(t, err)
	assert.Equal(t, 25, f.character(t, "Alice").Money)

	res, err := f.svc.AdminGive(ctx, testGuild, "Alice", "helth potion", 2, true)
	require.NoError(t, err)
	assert.Equal(t, "Health Potion", res.ItemName)
	alice := f.character(t, "Alice")
	assert.Equal(t, 2, character.Count(alice.KeyInventory, domain.InventoryEntry{ItemID: "health_potion"}))
	assert.Empty(t, alice.Inventory)

	_, err = f.svc.AdminGive(ctx, testGuild, "Alice", "potion", 1, false)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.True(t, nf.HasSuggestions())
}

func TestAdminTake(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AdminTake(ctx, testGuild, "Alice", "money", 25, false)
	require.NoError(t, err)
	assert.Equal(t, -15, f.character(t, "Alice").Money)

	_, err = f.svc.AdminTake(ctx, testGuild, "Bob", "sword", 1, true)
	require.NoError(t, err)
	assert.Empty(t, f.character(t, "Bob").KeyInventory)

	_, err = f.svc.AdminTake(ctx, testGuild, "Bob", "sword", 4, false)
	assert.ErrorIs(t, err, domain.ErrPermission)

	_, err = f.svc.AdminTake(ctx, testGuild, "Bob", "2", 1, false)
	require.NoError(t, err)
	assert.Equal(t, 0, character.Count(f.character(t, "Bob").Inventory, domain.InventoryEntry{ItemID: "gem"}))

	_, err = f.svc.AdminTake(ctx, testGuild, "Bob", "axe", 1, false)
	assert.ErrorIs(t, err, domain.ErrInventoryItemNotFound)
}

func TestGiveCustom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.GiveCustom(ctx, testGuild, "Bob", []byte(`{"name":"sword","override":{"name":"Excalibur","fields":[["dmg","99"]]},"count":"2"}`), false)
	require.NoError(t, err)
	assert.Equal(t, "Excalibur", res.ItemName)
	assert.Equal(t, 2, res.Amount)

	bob := f.character(t, "Bob")
	require.Len(t, bob.Inventory, 3)
	assert.Equal(t, "Excalibur", *bob.Inventory[2].Override.Name)

	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown base", `{"name":"axe","override":{},"count":1}`, domain.ErrSyntax},
		{"bad override", `{"name":"sword","override":{"p_buy":"x"},"count":1}`, domain.ErrSyntax},
		{"missing count", `{"name":"sword","override":{}}`, domain.ErrSyntax},
		{"zero count", `{"name":"sword","override":{},"count":0}`, domain.ErrSyntax},
		{"not json", `{`, domain.ErrSyntax},
		{"unknown character", `{"name":"sword","count":1}`, domain.ErrCharacterNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "Bob"
			if tt.want == domain.ErrCharacterNotFound {
				target = "Nobody"
			}
			_, err := f.svc.GiveCustom(ctx, testGuild, target, []byte(tt.data), false)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

type mockBus struct {
	mock.Mock
}

func (m *mockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *mockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestTransferEventPayload(t *testing.T) {
	f := newFixture(t)
	bus := &mockBus{}
	svc := NewService(f.chars, nil, bus)

	bus.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
		p, ok := evt.Payload.(event.TransferPayloadV1)
		return ok && evt.Guild == testGuild && p.Kind == event.TransferPay &&
			p.Character == "Bob" && p.Recipient == "Alice" && p.Money == -7
	})).Return(nil).Once()

	_, err := svc.Pay(context.Background(), testGuild, "Bob", "Alice", 7)

	require.NoError(t, err)
	bus.AssertExpectations(t)
}
