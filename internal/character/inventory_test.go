package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		"sword": {Name: "Sword", SellPrice: 50, Fields: domain.Fields{{Name: "dmg", Value: "5"}}},
		"gem":   {Name: "Gem", SellPrice: 10, Fields: domain.Fields{}},
	}
}

func TestStack_SumsEqualStacks(t *testing.T) {
	var inv domain.Inventory

	Stack(&inv, domain.InventoryEntry{ItemID: "sword", Count: 2})
	Stack(&inv, domain.InventoryEntry{ItemID: "sword", Count: 3})

	require.Len(t, inv, 1)
	assert.Equal(t, 5, inv[0].Count)
}

func TestStack_OverridesSeparateStacks(t *testing.T) {
	var inv domain.Inventory
	custom := domain.ItemPatch{Name: ptr("Excalibur")}

	Stack(&inv, domain.InventoryEntry{ItemID: "sword", Count: 1})
	Stack(&inv, domain.InventoryEntry{ItemID: "sword", Override: custom, Count: 1})
	Stack(&inv, domain.InventoryEntry{ItemID: "sword", Override: domain.ItemPatch{Name: ptr("Excalibur")}, Count: 4})

	require.Len(t, inv, 2)
	assert.Equal(t, 1, inv[0].Count)
	assert.Equal(t, 5, inv[1].Count)
}

func TestStack_EmptyFieldsMatchNoFields(t *testing.T) {
	var inv domain.Inventory

	Stack(&inv, domain.InventoryEntry{ItemID: "gem", Count: 1})
	Stack(&inv, domain.InventoryEntry{ItemID: "gem", Override: domain.ItemPatch{Fields: domain.Fields{}}, Count: 1})

	require.Len(t, inv, 1)
	assert.Equal(t, 2, inv[0].Count)
}

func TestStack_NegativeCounts(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		delta     int
		wantCount int
		wantLen   int
	}{
		{"partial withdrawal", 5, -2, 3, 1},
		{"exact withdrawal removes", 5, -5, 0, 0},
		{"over withdrawal removes", 5, -9, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := domain.Inventory{{ItemID: "gem", Count: tt.start}}

			Stack(&inv, domain.InventoryEntry{ItemID: "gem", Count: tt.delta})

			require.Len(t, inv, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantCount, inv[0].Count)
			}
		})
	}
}

func TestStack_NewNonPositiveIsNoop(t *testing.T) {
	inv := domain.Inventory{}

	Stack(&inv, domain.InventoryEntry{ItemID: "gem", Count: 0})
	Stack(&inv, domain.InventoryEntry{ItemID: "gem", Count: -3})

	assert.Empty(t, inv)
}

func TestStack_KeepsOrderOnRemoval(t *testing.T) {
	inv := domain.Inventory{
		{ItemID: "a", Count: 1},
		{ItemID: "b", Count: 1},
		{ItemID: "c", Count: 1},
	}

	Stack(&inv, domain.InventoryEntry{ItemID: "b", Count: -1})

	require.Len(t, inv, 2)
	assert.Equal(t, "a", inv[0].ItemID)
	assert.Equal(t, "c", inv[1].ItemID)
}

func TestCount(t *testing.T) {
	inv := domain.Inventory{{ItemID: "gem", Count: 4}}

	assert.Equal(t, 4, Count(inv, domain.InventoryEntry{ItemID: "gem"}))
	assert.Equal(t, 0, Count(inv, domain.InventoryEntry{ItemID: "gem", Override: domain.ItemPatch{Name: ptr("x")}}))
}

func TestLookup(t *testing.T) {
	cat := testCatalog()
	inv := domain.Inventory{
		{ItemID: "sword", Count: 1},
		{ItemID: "gem", Count: 3},
		{ItemID: "sword", Override: domain.ItemPatch{Name: ptr("Excalibur")}, Count: 1},
		{ItemID: "sword", Override: domain.ItemPatch{Description: ptr("Rusty")}, Count: 1},
	}

	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{"position", "2", 1, false},
		{"position out of range", "5", -1, true},
		{"position zero", "0", -1, true},
		{"item id last match wins", "sword", 3, false},
		{"catalog name any case", "GEM", 1, false},
		{"overridden name", "excalibur", 2, false},
		{"unknown", "axe", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(inv, tt.query, cat)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInventoryItemNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffective_MergesOverride(t *testing.T) {
	base := domain.Item{Name: "Sword", SellPrice: 50, Fields: domain.Fields{{Name: "dmg", Value: "5"}}}
	override := domain.ItemPatch{Name: ptr("Excalibur"), Fields: domain.Fields{{Name: "dmg", Value: "99"}}}

	got := Effective(base, override)

	assert.Equal(t, "Excalibur", got.Name)
	assert.Equal(t, 50, got.SellPrice)
	assert.Equal(t, domain.Fields{{Name: "dmg", Value: "99"}}, got.Fields)
	assert.Equal(t, "Sword", base.Name, "base must not change")
}

func TestEffective_DropsEmptyFields(t *testing.T) {
	base := domain.Item{Name: "Sword", Fields: domain.Fields{{Name: "dmg", Value: "5"}, {Name: "wt", Value: "3"}}}
	override := domain.ItemPatch{Fields: domain.Fields{{Name: "dmg", Value: ""}, {Name: "lore", Value: "old"}}}

	got := Effective(base, override)

	assert.Equal(t, domain.Fields{{Name: "wt", Value: "3"}, {Name: "lore", Value: "old"}}, got.Fields)
}

func TestEmptyOverrideName_FallsBack(t *testing.T) {
	entry := domain.InventoryEntry{ItemID: "sword", Override: domain.ItemPatch{Name: ptr(""), Description: ptr("chipped")}, Count: 1}
	inv := domain.Inventory{{ItemID: "gem", Count: 1}, entry}

	assert.Equal(t, "Sword", DisplayName(entry, testCatalog()))
	assert.Equal(t, "Sword", listName(entry, testCatalog()))

	item, ok := EffectiveEntry(entry, testCatalog())
	require.True(t, ok)
	assert.Equal(t, "Sword", item.Name)
	assert.Equal(t, "chipped", item.Description)

	idx, err := Lookup(inv, "sword", testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestEffectiveEntry_UnknownItem(t *testing.T) {
	got, ok := EffectiveEntry(domain.InventoryEntry{ItemID: "relic", Count: 1}, testCatalog())

	assert.False(t, ok)
	assert.Equal(t, "relic", got.Name)
}

func TestLookupNameFirst(t *testing.T) {
	cat := catalog.Catalog{
		"2":   {Name: "Two"},
		"gem": {Name: "Gem"},
	}
	inv := domain.Inventory{
		{ItemID: "2", Count: 1},
		{ItemID: "gem", Count: 1},
	}

	idx, err := LookupNameFirst(inv, "2", cat)
	require.NoError(t, err)
	assert.Equal(t, 0, idx, "id match beats position")

	idx, err = Lookup(inv, "2", cat)
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "position beats id")

	idx, err = LookupNameFirst(inv, "1", cat)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = LookupNameFirst(inv, "axe", cat)
	assert.ErrorIs(t, err, domain.ErrInventoryItemNotFound)
}

func TestInventoryItem(t *testing.T) {
	c := domain.Character{
		Inventory:    domain.Inventory{{ItemID: "sword", Override: domain.ItemPatch{Name: ptr("Excalibur")}, Count: 1}},
		KeyInventory: domain.Inventory{{ItemID: "gem", Count: 2}},
	}

	entry, item, err := InventoryItem(c, "excalibur", false, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, "sword", entry.ItemID)
	assert.Equal(t, "Excalibur", item.Name)
	assert.Equal(t, 50, item.SellPrice)

	_, item, err = InventoryItem(c, "1", true, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, "Gem", item.Name)

	_, _, err = InventoryItem(c, "gem", false, testCatalog())
	assert.ErrorIs(t, err, domain.ErrInventoryItemNotFound)
}
