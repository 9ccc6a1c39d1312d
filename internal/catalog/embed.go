package catalog

import (
	"fmt"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

// ItemEmbed renders an item definition. custom marks an overridden item.
func ItemEmbed(item domain.Item, custom bool) domain.Embed {
	e := domain.Embed{
		Title:       item.Name,
		Description: fmt.Sprintf("%s\n\nPrice: %d/%d", item.Description, item.BuyPrice, item.SellPrice),
		Color:       EmbedColor,
		Thumbnail:   item.Image,
		Footer:      item.Category,
	}
	if custom {
		e.Title += CustomItemMark
	}
	for _, f := range item.Fields {
		e.AddField(f.Name, f.Value, false)
	}
	return e
}
