package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field limits for catalog items
const (
	MaxItemNameLength        = 24
	MaxItemCategoryLength    = 24
	MaxItemDescriptionLength = 1000
	MaxFieldNameLength       = 32
	MaxFieldValueLength      = 1024
)

// Reserved catalog ids
const (
	DefaultItemID = "default_item"
	DefaultGuild  = "default"
	ItemMoney     = "money"
)

// Item is a catalog item definition. JSON names match the persisted layout.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	InShop      bool   `json:"inshop"`
	BuyPrice    int    `json:"p_buy"`
	SellPrice   int    `json:"p_sell"`
	Fields      Fields `json:"fields"`
}

// BaseItem returns the built-in item template.
func BaseItem() Item {
	return Item{
		Name:        "Default Item",
		Description: "This item looks very generic",
		BuyPrice:    100,
		SellPrice:   100,
		Fields:      Fields{},
	}
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	i.Fields = i.Fields.Clone()
	return i
}

// ItemPatch is a partial item: nil members are unset. It is used both for
// partial uploads and for per-inventory-entry overrides.
type ItemPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Image       *string `json:"image,omitempty"`
	InShop      *bool   `json:"inshop,omitempty"`
	BuyPrice    *int    `json:"p_buy,omitempty"`
	SellPrice   *int    `json:"p_sell,omitempty"`
	Fields      Fields  `json:"fields,omitempty"`
}

// IsEmpty reports whether the patch sets nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil && p.Image == nil &&
		p.InShop == nil && p.BuyPrice == nil && p.SellPrice == nil && p.Fields == nil
}

// ApplyTo shallow-merges the patch over base. Fields are replaced wholesale.
func (p ItemPatch) ApplyTo(base Item) Item {
	out := base.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.InShop != nil {
		out.InShop = *p.InShop
	}
	if p.BuyPrice != nil {
		out.BuyPrice = *p.BuyPrice
	}
	if p.SellPrice != nil {
		out.SellPrice = *p.SellPrice
	}
	if p.Fields != nil {
		out.Fields = p.Fields.Clone()
	}
	return out
}

// Field is one custom display field, persisted as a [name, value] pair.
type Field struct {
	Name  string
	Value string
}

// MarshalJSON writes the field as a two element array.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{f.Name, f.Value})
}

// UnmarshalJSON accepts a two element array.
func (f *Field) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("field must be a [name, value] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("field must be a [name, value] pair, got %d values", len(pair))
	}
	f.Name, f.Value = pair[0], pair[1]
	return nil
}

// Fields is an ordered list of custom fields.
type Fields []Field

// Clone copies the list. A nil list stays nil.
func (fs Fields) Clone() Fields {
	if fs == nil {
		return nil
	}
	out := make(Fields, len(fs))
	copy(out, fs)
	return out
}

// UnmarshalJSON accepts a list of pairs or, for legacy templates, an object
// whose key order is preserved.
func (fs *Fields) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*fs = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return fs.unmarshalObject(trimmed)
	}
	var list []Field
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	if list == nil {
		list = []Field{}
	}
	*fs = list
	return nil
}

func (fs *Fields) unmarshalObject(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	out := Fields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		out = append(out, Field{Name: name, Value: value})
	}
	*fs = out
	return nil
}

// Merge overlays other onto fs key-wise. Keys keep their first position,
// other wins on conflict, and entries with an empty merged value are dropped.
func (fs Fields) Merge(other Fields) Fields {
	order := make([]string, 0, len(fs)+len(other))
	values := make(map[string]string, len(fs)+len(other))
	for _, src := range []Fields{fs, other} {
		for _, f := range src {
			if _, seen := values[f.Name]; !seen {
				order = append(order, f.Name)
			}
			values[f.Name] = f.Value
		}
	}
	out := make(Fields, 0, len(order))
	for _, name := range order {
		if v := values[name]; v != "" {
			out = append(out, Field{Name: name, Value: v})
		}
	}
	return out
}
