package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryEntry_Key(t *testing.T) {
	name := "Shiny"
	other := "Dull"

	plain := InventoryEntry{ItemID: "sword", Count: 1}
	plainEmptyFields := InventoryEntry{ItemID: "sword", Override: ItemPatch{Fields: Fields{}}, Count: 5}
	shiny := InventoryEntry{ItemID: "sword", Override: ItemPatch{Name: &name}}
	shinyToo := InventoryEntry{ItemID: "sword", Override: ItemPatch{Name: &name}, Count: 3}
	dull := InventoryEntry{ItemID: "sword", Override: ItemPatch{Name: &other}}
	axe := InventoryEntry{ItemID: "axe"}

	assert.Equal(t, plain.Key(), plainEmptyFields.Key())
	assert.Equal(t, shiny.Key(), shinyToo.Key())
	assert.NotEqual(t, plain.Key(), shiny.Key())
	assert.NotEqual(t, shiny.Key(), dull.Key())
	assert.NotEqual(t, plain.Key(), axe.Key())
}

func TestInventory_CloneIsDeep(t *testing.T) {
	inv := Inventory{{ItemID: "a", Override: ItemPatch{Fields: Fields{{"k", "v"}}}, Count: 1}}
	cp := inv.Clone()
	cp[0].Count = 9
	cp[0].Override.Fields[0].Value = "changed"

	assert.Equal(t, 1, inv[0].Count)
	assert.Equal(t, "v", inv[0].Override.Fields[0].Value)
	assert.Nil(t, Inventory(nil).Clone())
}

func TestInventoryEntry_PersistedLayout(t *testing.T) {
	data, err := json.Marshal(InventoryEntry{ItemID: "potion", Count: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"potion","override":{},"count":2}`, string(data))
}

func TestCharacter_DecodeLegacy(t *testing.T) {
	raw := `{"owner":"123456789012345678","name":"Aria","image":"","money":50,
		"inv":[{"name":"potion","override":{},"count":2}],"inv_key":[],"fields":{}}`
	var c Character
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, Snowflake(123456789012345678), c.Owner)
	assert.Equal(t, 50, c.Money)
	require.Len(t, c.Inventory, 1)
	assert.Equal(t, "potion", c.Inventory[0].ItemID)
	assert.NotNil(t, c.Fields)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"owner":123456789012345678`)
}

func TestCharacter_Normalize(t *testing.T) {
	var c Character
	c.Normalize()
	assert.NotNil(t, c.Inventory)
	assert.NotNil(t, c.KeyInventory)
	assert.NotNil(t, c.Fields)
	assert.Same(t, &c.KeyInventory, c.Inv(true))
	assert.Same(t, &c.Inventory, c.Inv(false))
}

func TestSnowflake(t *testing.T) {
	var s Snowflake
	require.NoError(t, json.Unmarshal([]byte(`42`), &s))
	assert.Equal(t, Snowflake(42), s)
	require.NoError(t, json.Unmarshal([]byte(`"43"`), &s))
	assert.Equal(t, "43", s.String())
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.True(t, s.IsZero())
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`-1`), &s))

	parsed, err := ParseSnowflake("")
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())
}
