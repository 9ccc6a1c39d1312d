package domain

// Field limits for character records
const (
	MaxCharacterNameLength = 32
)

// DefaultCharacterID is the per-guild character template id.
const DefaultCharacterID = "default_char"

// Character is a roleplay character record.
type Character struct {
	Owner        Snowflake `json:"owner"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Money        int       `json:"money"`
	Inventory    Inventory `json:"inv"`
	KeyInventory Inventory `json:"inv_key"`
	Fields       Fields    `json:"fields"`
}

// BaseCharacter returns the built-in character template.
func BaseCharacter() Character {
	return Character{
		Name:         "Default Name",
		Inventory:    Inventory{},
		KeyInventory: Inventory{},
		Fields:       Fields{},
	}
}

// Clone returns a deep copy of the record.
func (c Character) Clone() Character {
	c.Inventory = c.Inventory.Clone()
	c.KeyInventory = c.KeyInventory.Clone()
	c.Fields = c.Fields.Clone()
	return c
}

// Normalize replaces nil collections with empty ones so the persisted
// layout always carries lists.
func (c *Character) Normalize() {
	if c.Inventory == nil {
		c.Inventory = Inventory{}
	}
	if c.KeyInventory == nil {
		c.KeyInventory = Inventory{}
	}
	if c.Fields == nil {
		c.Fields = Fields{}
	}
}

// Inv returns the key or general inventory.
func (c *Character) Inv(key bool) *Inventory {
	if key {
		return &c.KeyInventory
	}
	return &c.Inventory
}
