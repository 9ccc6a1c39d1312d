package domain

import "encoding/json"

// StackKey identifies a stack: entries with equal keys merge.
type StackKey string

// InventoryEntry is one stack of an item, optionally overridden. The JSON
// "name" member holds the catalog item id.
type InventoryEntry struct {
	ItemID   string    `json:"name"`
	Override ItemPatch `json:"override"`
	Count    int       `json:"count"`
}

// Key returns the canonical stack identity of the entry.
func (e InventoryEntry) Key() StackKey {
	override := e.Override
	if len(override.Fields) == 0 {
		override.Fields = nil
	}
	// Marshalling a struct of scalars and string pairs cannot fail.
	data, _ := json.Marshal(override)
	return StackKey(e.ItemID + "\x00" + string(data))
}

// Inventory is an ordered list of stacks.
type Inventory []InventoryEntry

// Clone deep-copies the inventory. A nil inventory stays nil.
func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return nil
	}
	out := make(Inventory, len(inv))
	for i, e := range inv {
		e.Override.Fields = e.Override.Fields.Clone()
		out[i] = e
	}
	return out
}
