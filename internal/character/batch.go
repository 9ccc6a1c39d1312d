package character

import (
	"github.com/osse101/RoleplayBot_Go/internal/catalog"
	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// Batch is a working copy of one guild's characters handed to Update.
// Records returned by Character may be modified freely; they are written
// back only when the update function succeeds.
type Batch struct {
	guild   string
	roster  Roster
	items   catalog.Catalog
	bios    BioSource
	working map[string]*domain.Character
	created []string
}

// Guild returns the guild the batch belongs to.
func (b *Batch) Guild() string { return b.guild }

// Items returns the guild catalog at the start of the batch.
func (b *Batch) Items() catalog.Catalog { return b.items }

// Character resolves a record by name: stored record first, then a record
// seeded from the linked bio with the guild template for everything else.
func (b *Batch) Character(name string) (string, *domain.Character, error) {
	id := utils.FoldID(name)
	if id == "" {
		return "", nil, domain.SyntaxError(ErrMsgEmptyName)
	}
	if c, ok := b.working[id]; ok {
		return id, c, nil
	}

	if stored, ok := b.roster[id]; ok {
		c := stored.Clone()
		c.Normalize()
		b.working[id] = &c
		return id, &c, nil
	}

	if b.bios != nil {
		if link, ok := b.bios.LinkedBio(b.guild, id); ok {
			c := templateOf(b.roster)
			c.Name = utils.Truncate(link.Name, domain.MaxCharacterNameLength)
			c.Image = link.Image
			c.Owner = link.Author
			c.Normalize()
			b.working[id] = &c
			b.created = append(b.created, id)
			return id, &c, nil
		}
	}
	return "", nil, domain.NewNotFoundError(domain.ErrCharacterNotFound, name, nil)
}
