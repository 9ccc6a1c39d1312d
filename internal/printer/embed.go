package printer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// ValidURL reports whether s has a scheme, a host and a path.
func ValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != "" && u.Path != ""
}

// VerifyEmbed checks a decoded embed object against the platform limits
// and converts it. Error messages name the failing key.
func VerifyEmbed(raw any) (domain.Embed, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.Embed{}, fmt.Errorf(ErrMsgNotObjectFmt, "embed")
	}
	var e domain.Embed
	var err error

	if e.Title, err = text(obj, "title", "title", MaxTitleLength); err != nil {
		return domain.Embed{}, err
	}
	if e.Description, err = text(obj, "description", "description", MaxDescriptionLength); err != nil {
		return domain.Embed{}, err
	}
	if e.URL, err = link(obj, "url", "url"); err != nil {
		return domain.Embed{}, err
	}

	if sub, err := object(obj, "image"); err != nil {
		return domain.Embed{}, err
	} else if e.Image, err = link(sub, "url", "image[url]"); err != nil {
		return domain.Embed{}, err
	}
	if sub, err := object(obj, "thumbnail"); err != nil {
		return domain.Embed{}, err
	} else if e.Thumbnail, err = link(sub, "url", "thumbnail[url]"); err != nil {
		return domain.Embed{}, err
	}

	footer, err := object(obj, "footer")
	if err != nil {
		return domain.Embed{}, err
	}
	if e.Footer, err = text(footer, "text", "footer[text]", MaxFooterTextLength); err != nil {
		return domain.Embed{}, err
	}
	if e.FooterIcon, err = link(footer, "icon_url", "footer[icon_url]"); err != nil {
		return domain.Embed{}, err
	}

	author, err := object(obj, "author")
	if err != nil {
		return domain.Embed{}, err
	}
	if e.Author, err = text(author, "name", "author[name]", MaxAuthorNameLength); err != nil {
		return domain.Embed{}, err
	}
	if e.AuthorURL, err = link(author, "url", "author[url]"); err != nil {
		return domain.Embed{}, err
	}
	if e.AuthorIcon, err = link(author, "icon_url", "author[icon_url]"); err != nil {
		return domain.Embed{}, err
	}

	if v, ok := obj["color"]; ok {
		if e.Color, err = parseColor(v); err != nil {
			return domain.Embed{}, err
		}
	}

	if v, ok := obj["fields"]; ok {
		if e.Fields, err = verifyFields(v); err != nil {
			return domain.Embed{}, err
		}
	}
	return e, nil
}

func verifyFields(v any) ([]domain.EmbedField, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, errors.New(ErrMsgFieldsNotList)
	}
	out := make([]domain.EmbedField, 0, len(list))
	for i, item := range list {
		n := i + 1
		f, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf(ErrMsgFieldNotObjectFmt, n)
		}
		inline := false
		if v, present := f["inline"]; present {
			b, isBool := v.(bool)
			if !isBool {
				return nil, fmt.Errorf(ErrMsgFieldInlineFmt, n)
			}
			inline = b
		}
		name, value := display(f["name"]), display(f["value"])
		if utils.RuneLen(name) > MaxFieldNameLength {
			return nil, fmt.Errorf(ErrMsgFieldNameFmt, n)
		}
		if utils.RuneLen(value) > MaxFieldValueLength {
			return nil, fmt.Errorf(ErrMsgFieldValueFmt, n)
		}
		out = append(out, domain.EmbedField{Name: name, Value: value, Inline: inline})
	}
	return out, nil
}

// parseColor accepts an integer or a string with an optional 0x, 0o or 0b
// prefix.
func parseColor(v any) (int, error) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), nil
		}
	case float64:
		if t == math.Trunc(t) {
			return int(t), nil
		}
	case string:
		if n, err := strconv.ParseInt(t, 0, 64); err == nil {
			return int(n), nil
		}
	}
	return 0, errors.New(ErrMsgInvalidColor)
}

// object returns the nested object at key, or nil when absent.
func object(obj map[string]any, key string) (map[string]any, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf(ErrMsgNotObjectFmt, key)
	}
	return sub, nil
}

func text(obj map[string]any, key, label string, limit int) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf(ErrMsgNotTextFmt, label)
	}
	if utils.RuneLen(s) > limit {
		return "", fmt.Errorf(ErrMsgTooLongFmt, label, limit)
	}
	return s, nil
}

func link(obj map[string]any, key, label string) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok || !ValidURL(s) {
		return "", fmt.Errorf(ErrMsgInvalidURLFmt, label)
	}
	return s, nil
}

// display renders scalar JSON values the way they were written.
func display(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
