package character

import (
	"fmt"
	"strings"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// Render builds the character sheet embed.
func Render(c domain.Character, items Items) domain.Embed {
	e := domain.Embed{
		Title:     c.Name,
		Color:     EmbedColor,
		Thumbnail: c.Image,
		Footer:    fmt.Sprintf(MoneyFooterFmt, c.Money),
	}
	for _, f := range c.Fields {
		e.AddField(f.Name, f.Value, false)
	}
	if listing := RenderInventory(c.KeyInventory, items); listing != "" {
		e.AddField(KeyItemsTitle, "```\n"+listing+"```", false)
	}
	if listing := RenderInventory(c.Inventory, items); listing != "" {
		e.AddField(ItemsTitle, "```\n"+listing+"```", false)
	}
	return e
}

// RenderInventory lists the first MaxListedEntries stacks one per line.
// Overridden names carry a trailing mark and ids unknown to the catalog
// are shown centred in dashes.
func RenderInventory(inv domain.Inventory, items Items) string {
	var b strings.Builder
	for i, entry := range inv {
		if i == MaxListedEntries {
			break
		}
		line := listName(entry, items)
		if entry.Count > 1 {
			fmt.Fprintf(&b, "%s×%5d\n", utils.PadRight(line, ListNameWidth), entry.Count)
		} else {
			b.WriteString(line + "\n")
		}
	}
	if len(inv) > MaxListedEntries {
		fmt.Fprintf(&b, MoreEntriesFmt, len(inv)-MaxListedEntries)
	}
	return b.String()
}

func listName(entry domain.InventoryEntry, items Items) string {
	item, ok := items.Get(entry.ItemID)
	if !ok {
		return utils.Center(utils.Truncate(entry.ItemID, ListNameWidth), ListNameWidth, '-')
	}
	if name, ok := overrideName(entry.Override); ok {
		return utils.Truncate(name, ListNameWidth-1) + OverrideMark
	}
	return utils.Truncate(item.Name, ListNameWidth)
}
