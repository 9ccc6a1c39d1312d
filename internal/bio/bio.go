// Package bio keeps character bios, their pinned posts and race roles.
package bio

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// Bio is a character description. Field order matches the persisted
// layout.
type Bio struct {
	Author      domain.Snowflake `json:"author"`
	Name        string           `json:"name"`
	Race        string           `json:"race"`
	Gender      string           `json:"gender"`
	Appearance  string           `json:"appearance"`
	Backstory   string           `json:"backstory"`
	Height      string           `json:"height"`
	Age         string           `json:"age"`
	Theme       string           `json:"theme"`
	Link        string           `json:"link"`
	Image       string           `json:"image"`
	Equipment   string           `json:"equipment"`
	Skills      string           `json:"skills"`
	Personality string           `json:"personality"`
	Interests   string           `json:"interests"`
}

// Fields lists the settable fields in display order.
var Fields = []string{
	"name", "race", "gender", "height", "age", "theme", "link", "image",
	"appearance", "equipment", "skills", "personality", "backstory", "interests",
}

var (
	summaryFields = []string{"race", "gender", "height", "age"}
	longFields    = []string{"appearance", "equipment", "skills", "personality", "backstory", "interests"}
	mandatory     = map[string]bool{"name": true, "race": true, "gender": true, "appearance": true, "backstory": true}
	short         = map[string]bool{"name": true, "race": true, "gender": true, "height": true, "age": true}
)

// New returns a blank bio with mandatory fields set to "undefined".
func New(author domain.Snowflake, name string) (Bio, error) {
	clean, err := NormalizeName(name)
	if err != nil {
		return Bio{}, err
	}
	b := Bio{Author: author}
	for f := range mandatory {
		*b.field(f) = Undefined
	}
	b.Name = clean
	return b, nil
}

// NormalizeName trims, drops line breaks, collapses whitespace and
// truncates to the short field limit.
func NormalizeName(name string) (string, error) {
	clean := utils.CollapseWhitespace(name)
	if clean == "" {
		return "", domain.SyntaxError(ErrMsgEmptyName)
	}
	return utils.Truncate(clean, MaxShortFieldLength), nil
}

// ID derives the lookup key of a bio name.
func ID(name string) (string, error) {
	clean, err := NormalizeName(name)
	if err != nil {
		return "", err
	}
	return utils.FoldID(clean), nil
}

// Label capitalizes a field name for messages and embeds.
func Label(field string) string {
	return cases.Title(language.English).String(field)
}

// Set assigns a field. An empty value resets it. Values over the field's
// limit are rejected rather than truncated.
func (b *Bio) Set(field, value string) error {
	f := strings.ToLower(field)
	ptr := b.field(f)
	if ptr == nil {
		return domain.SyntaxError(ErrMsgInvalidFieldFmt, f)
	}
	if value == "" {
		if mandatory[f] {
			*ptr = Undefined
		} else {
			*ptr = ""
		}
		return nil
	}

	limit := MaxLongFieldLength
	if short[f] {
		limit = MaxShortFieldLength
	}
	if utils.RuneLen(value) > limit {
		return domain.SyntaxError(ErrMsgFieldTooLongFmt, Label(f), limit)
	}
	if f == "name" {
		clean, err := NormalizeName(value)
		if err != nil {
			return err
		}
		value = clean
	}
	*ptr = value
	return nil
}

// Get reads a field by name.
func (b *Bio) Get(field string) string {
	if ptr := b.field(strings.ToLower(field)); ptr != nil {
		return *ptr
	}
	return ""
}

func (b *Bio) field(name string) *string {
	switch name {
	case "name":
		return &b.Name
	case "race":
		return &b.Race
	case "gender":
		return &b.Gender
	case "height":
		return &b.Height
	case "age":
		return &b.Age
	case "theme":
		return &b.Theme
	case "link":
		return &b.Link
	case "image":
		return &b.Image
	case "appearance":
		return &b.Appearance
	case "equipment":
		return &b.Equipment
	case "skills":
		return &b.Skills
	case "personality":
		return &b.Personality
	case "backstory":
		return &b.Backstory
	case "interests":
		return &b.Interests
	}
	return nil
}

// MarshalJSON tags the stored document with its class hint.
func (b Bio) MarshalJSON() ([]byte, error) {
	type plain Bio
	return utils.Marshal(struct {
		ClassHint string `json:"__classhint__"`
		plain
	}{ClassHint: ClassHint, plain: plain(b)})
}

// dump is the download layout: the display name moves to fullname, name
// carries the id and the author is omitted.
type dump struct {
	Name        string `json:"name"`
	Race        string `json:"race"`
	Gender      string `json:"gender"`
	Appearance  string `json:"appearance"`
	Backstory   string `json:"backstory"`
	Height      string `json:"height"`
	Age         string `json:"age"`
	Theme       string `json:"theme"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	Equipment   string `json:"equipment"`
	Skills      string `json:"skills"`
	Personality string `json:"personality"`
	Interests   string `json:"interests"`
	Fullname    string `json:"fullname"`
}

func (b Bio) dump(id string) dump {
	return dump{
		Name: id, Race: b.Race, Gender: b.Gender, Appearance: b.Appearance,
		Backstory: b.Backstory, Height: b.Height, Age: b.Age, Theme: b.Theme,
		Link: b.Link, Image: b.Image, Equipment: b.Equipment, Skills: b.Skills,
		Personality: b.Personality, Interests: b.Interests, Fullname: b.Name,
	}
}
