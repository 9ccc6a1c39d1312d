package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// ParsePatch decodes a JSON document and validates it with ValidatePatch.
func ParsePatch(data []byte) (domain.ItemPatch, error) {
	raw, err := DecodeLoose(data)
	if err != nil {
		return domain.ItemPatch{}, domain.SyntaxError("Not a valid JSON document: %v.", err)
	}
	return ValidatePatch(raw)
}

// DecodeLoose decodes JSON keeping numbers as json.Number so integer
// parsing can tell 3 from 3.5 and from "3".
func DecodeLoose(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidatePatch checks every present field of a decoded item or override
// and returns the normalized patch. Strings are truncated to their limits,
// prices are clamped at zero and inshop follows truthiness. Nothing is
// applied on error.
func ValidatePatch(raw any) (domain.ItemPatch, error) {
	var patch domain.ItemPatch
	if raw == nil {
		return patch, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return patch, domain.SyntaxError(ErrMsgNotAnObject)
	}

	if v, ok := obj["name"]; ok {
		s := utils.Truncate(Stringify(v), domain.MaxItemNameLength)
		patch.Name = &s
	}
	if v, ok := obj["category"]; ok {
		s := utils.Truncate(Stringify(v), domain.MaxItemCategoryLength)
		patch.Category = &s
	}
	if v, ok := obj["description"]; ok {
		s := utils.Truncate(Stringify(v), domain.MaxItemDescriptionLength)
		patch.Description = &s
	}
	if v, ok := obj["image"]; ok {
		var s string
		switch img := v.(type) {
		case nil:
		case string:
			s = img
		default:
			return domain.ItemPatch{}, domain.SyntaxError(ErrMsgBadImage)
		}
		patch.Image = &s
	}
	if v, ok := obj["inshop"]; ok {
		b := Truthy(v)
		patch.InShop = &b
	}
	if v, ok := obj["p_buy"]; ok {
		n, err := ParseInt(v)
		if err != nil {
			return domain.ItemPatch{}, domain.SyntaxError(ErrMsgBadBuyPriceFmt, Stringify(v))
		}
		n = utils.ClampMin(n, 0)
		patch.BuyPrice = &n
	}
	if v, ok := obj["p_sell"]; ok {
		n, err := ParseInt(v)
		if err != nil {
			return domain.ItemPatch{}, domain.SyntaxError(ErrMsgBadSellPriceFmt, Stringify(v))
		}
		n = utils.ClampMin(n, 0)
		patch.SellPrice = &n
	}
	if v, ok := obj["fields"]; ok {
		fields, err := ValidateFields(v)
		if err != nil {
			return domain.ItemPatch{}, domain.SyntaxError(ErrMsgBadFields)
		}
		patch.Fields = fields
	}
	return patch, nil
}

// ValidateFields accepts a list of two-element lists and truncates both
// sides to the field limits.
func ValidateFields(v any) (domain.Fields, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("fields must be a list, got %T", v)
	}
	out := make(domain.Fields, 0, len(list))
	for i, entry := range list {
		pair, ok := entry.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("field %d is not a pair", i)
		}
		out = append(out, domain.Field{
			Name:  utils.Truncate(Stringify(pair[0]), domain.MaxFieldNameLength),
			Value: utils.Truncate(Stringify(pair[1]), domain.MaxFieldValueLength),
		})
	}
	return out, nil
}

// ParseInt accepts integers, floats (truncated toward zero), numeric
// strings and booleans.
func ParseInt(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	case int:
		return n, nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("not an integer: %T", v)
	}
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1<<62 {
		return 0, fmt.Errorf("not a finite integer: %v", f)
	}
	return int(f), nil
}

// Truthy mirrors JSON truthiness: false, null, zero, "" and empty
// collections are false.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// Stringify renders a decoded JSON value as display text.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		data, err := utils.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	}
}
