package character

import (
	"strconv"
	"strings"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

// Items resolves catalog definitions by id.
type Items interface {
	Get(id string) (domain.Item, bool)
}

// Stack adds entry.Count to the stack sharing entry's key. A stack whose
// count drops to zero or below is removed. A new stack is appended only
// for a positive count.
func Stack(inv *domain.Inventory, entry domain.InventoryEntry) {
	index := make(map[domain.StackKey]int, len(*inv))
	for i, e := range *inv {
		index[e.Key()] = i
	}

	pos, ok := index[entry.Key()]
	if !ok {
		if entry.Count > 0 {
			entry.Override.Fields = entry.Override.Fields.Clone()
			*inv = append(*inv, entry)
		}
		return
	}

	(*inv)[pos].Count += entry.Count
	if (*inv)[pos].Count <= 0 {
		*inv = append((*inv)[:pos], (*inv)[pos+1:]...)
	}
}

// Count returns the size of the stack matching entry's key.
func Count(inv domain.Inventory, entry domain.InventoryEntry) int {
	key := entry.Key()
	for _, e := range inv {
		if e.Key() == key {
			return e.Count
		}
	}
	return 0
}

// Lookup finds an entry by 1-based position, else by item id or effective
// display name. Name matching ignores case and the last match wins.
func Lookup(inv domain.Inventory, query string, items Items) (int, error) {
	query = strings.TrimSpace(query)
	if n, err := strconv.Atoi(query); err == nil {
		return byPosition(inv, query, n)
	}
	return byName(inv, query, items)
}

// LookupNameFirst is Lookup with the order reversed: id or name first,
// then position.
func LookupNameFirst(inv domain.Inventory, query string, items Items) (int, error) {
	query = strings.TrimSpace(query)
	idx, err := byName(inv, query, items)
	if err == nil {
		return idx, nil
	}
	if n, convErr := strconv.Atoi(query); convErr == nil {
		return byPosition(inv, query, n)
	}
	return -1, err
}

func byPosition(inv domain.Inventory, query string, n int) (int, error) {
	if n < 1 || n > len(inv) {
		return -1, domain.NewNotFoundError(domain.ErrInventoryItemNotFound, query, nil)
	}
	return n - 1, nil
}

func byName(inv domain.Inventory, query string, items Items) (int, error) {
	q := strings.ToLower(query)
	found := -1
	for i, e := range inv {
		if strings.ToLower(e.ItemID) == q || strings.ToLower(DisplayName(e, items)) == q {
			found = i
		}
	}
	if found < 0 {
		return -1, domain.NewNotFoundError(domain.ErrInventoryItemNotFound, query, nil)
	}
	return found, nil
}

// Effective merges an override onto a catalog definition. Unset override
// members fall through, as does an empty name; custom fields merge
// key-wise with the override winning and empty values dropped.
func Effective(base domain.Item, override domain.ItemPatch) domain.Item {
	if _, ok := overrideName(override); !ok {
		override.Name = nil
	}
	out := override.ApplyTo(base)
	out.Fields = base.Fields.Merge(override.Fields)
	return out
}

// EffectiveEntry resolves the entry's definition. An id missing from the
// catalog yields the base template named after the id; ok reports whether
// the catalog knew it.
func EffectiveEntry(e domain.InventoryEntry, items Items) (domain.Item, bool) {
	base, ok := items.Get(e.ItemID)
	if !ok {
		base = domain.BaseItem()
		base.Name = e.ItemID
	}
	return Effective(base, e.Override), ok
}

// DisplayName is the entry's effective name.
func DisplayName(e domain.InventoryEntry, items Items) string {
	if name, ok := overrideName(e.Override); ok {
		return name
	}
	if item, ok := items.Get(e.ItemID); ok {
		return item.Name
	}
	return e.ItemID
}

// InventoryItem resolves query in one of the character's inventories and
// returns the stored entry with its effective definition.
func InventoryItem(c domain.Character, query string, key bool, items Items) (domain.InventoryEntry, domain.Item, error) {
	inv := *c.Inv(key)
	idx, err := Lookup(inv, query, items)
	if err != nil {
		return domain.InventoryEntry{}, domain.Item{}, err
	}
	item, _ := EffectiveEntry(inv[idx], items)
	return inv[idx], item, nil
}

// overrideName reports the override's name. An empty name counts as unset.
func overrideName(o domain.ItemPatch) (string, bool) {
	if o.Name == nil || *o.Name == "" {
		return "", false
	}
	return *o.Name, true
}
