package character

import (
	"strconv"
	"strings"

	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// ValidateCharacter builds a record from a decoded upload. Members missing
// from raw are taken from template. Inventory entries with a count of zero
// or less are dropped; their overrides must still be valid.
func ValidateCharacter(raw any, template domain.Character) (domain.Character, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.Character{}, domain.SyntaxError(ErrMsgNotAnObject)
	}
	out := template.Clone()

	if v, ok := obj["name"]; ok {
		out.Name = utils.Truncate(catalog.Stringify(v), domain.MaxCharacterNameLength)
	}
	if v, ok := obj["image"]; ok {
		out.Image = catalog.Stringify(v)
	}
	if v, ok := obj["owner"]; ok {
		owner, err := parseOwner(v)
		if err != nil {
			return domain.Character{}, domain.SyntaxError(ErrMsgBadOwner)
		}
		out.Owner = owner
	}
	if v, ok := obj["money"]; ok {
		n, err := catalog.ParseInt(v)
		if err != nil {
			return domain.Character{}, domain.SyntaxError(ErrMsgBadMoney)
		}
		out.Money = utils.ClampMin(n, 0)
	}
	for _, target := range []struct {
		key string
		inv *domain.Inventory
	}{{"inv", &out.Inventory}, {"inv_key", &out.KeyInventory}} {
		v, ok := obj[target.key]
		if !ok {
			continue
		}
		entries, err := ValidateInventory(v)
		if err != nil {
			return domain.Character{}, err
		}
		*target.inv = entries
	}
	if v, ok := obj["fields"]; ok {
		fields, err := catalog.ValidateFields(v)
		if err != nil {
			return domain.Character{}, domain.SyntaxError(ErrMsgBadFields)
		}
		out.Fields = fields
	}

	out.Normalize()
	return out, nil
}

// ValidateInventory checks a decoded inventory list.
func ValidateInventory(v any) (domain.Inventory, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, domain.SyntaxError(ErrMsgNotAnObject)
	}
	out := domain.Inventory{}
	for i, raw := range list {
		entry, err := ValidateEntry(raw, i+1)
		if err != nil {
			return nil, err
		}
		if entry.Count > 0 {
			out = append(out, entry)
		}
	}
	return out, nil
}

// ValidateEntry checks one decoded inventory entry. pos is used in error
// messages only.
func ValidateEntry(raw any, pos int) (domain.InventoryEntry, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.InventoryEntry{}, domain.SyntaxError(ErrMsgBadEntryFmt, pos)
	}
	id, ok := obj["name"]
	if !ok || catalog.Stringify(id) == "" {
		return domain.InventoryEntry{}, domain.SyntaxError(ErrMsgBadEntryFmt, pos)
	}
	override, err := catalog.ValidatePatch(obj["override"])
	if err != nil {
		return domain.InventoryEntry{}, err
	}
	count, err := catalog.ParseInt(obj["count"])
	if err != nil {
		return domain.InventoryEntry{}, domain.SyntaxError(ErrMsgBadCountFmt, pos)
	}
	return domain.InventoryEntry{ItemID: catalog.Stringify(id), Override: override, Count: count}, nil
}

func parseOwner(v any) (domain.Snowflake, error) {
	if v == nil {
		return 0, nil
	}
	s := strings.TrimSpace(catalog.Stringify(v))
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return domain.Snowflake(id), nil
}
