package models

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// fieldSet marks modelled keys that were absent or unreadable in the source object.
type fieldSet uint8

const (
	fieldName fieldSet = 1 << iota
	fieldCategory
	fieldPrice
)

func (s fieldSet) has(f fieldSet) bool {
	return s&f != 0
}

const (
	keyName     = "name"
	keyCategory = "category"
	keyPrice    = "price"
	keySpicy    = "is_spicy"
	keySoup     = "has_soup"
)

var errNotObject = errors.New("catalog entry is not a JSON object")

// UnmarshalJSON accepts any JSON object. Values of the wrong type are kept
// in Extra instead of failing the whole catalog.
func (r *Restaurant) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errNotObject
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fmt.Errorf("failed to parse catalog entry: %w", err)
	}

	*r = Restaurant{}
	keep := func(key string, raw json.RawMessage) {
		if r.Extra == nil {
			r.Extra = make(map[string]json.RawMessage)
		}
		r.Extra[key] = raw
	}

	for key, raw := range fields {
		if isNull(raw) {
			keep(key, raw)
			if key == keyPrice {
				r.missing |= fieldPrice
			}
			continue
		}
		switch key {
		case keyName:
			if json.Unmarshal(raw, &r.Name) != nil {
				keep(key, raw)
			}
		case keyCategory:
			if json.Unmarshal(raw, &r.Category) != nil {
				keep(key, raw)
			}
		case keyPrice:
			if !r.readPrice(raw) {
				keep(key, raw)
			}
		case keySpicy:
			r.IsSpicy = readFlag(raw)
			if r.IsSpicy == nil {
				keep(key, raw)
			}
		case keySoup:
			r.HasSoup = readFlag(raw)
			if r.HasSoup == nil {
				keep(key, raw)
			}
		default:
			keep(key, raw)
		}
	}

	if _, ok := fields[keyName]; !ok || r.Extra[keyName] != nil {
		r.missing |= fieldName
	}
	if _, ok := fields[keyCategory]; !ok || r.Extra[keyCategory] != nil {
		r.missing |= fieldCategory
	}
	if _, ok := fields[keyPrice]; !ok {
		r.missing |= fieldPrice
	}
	return nil
}

// readPrice reports whether raw was an integer. Fractional prices are
// rounded up so that "price <= ceiling" keeps its meaning. Anything that is
// not a JSON number leaves the price unknown.
func (r *Restaurant) readPrice(raw json.RawMessage) bool {
	lit := string(bytes.TrimSpace(raw))
	if lit == "" || !(lit[0] == '-' || (lit[0] >= '0' && lit[0] <= '9')) {
		r.missing |= fieldPrice
		return false
	}
	if n, err := strconv.ParseInt(lit, 10, 0); err == nil {
		r.Price = int(n)
		return true
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil || f >= math.MaxInt64 || f <= math.MinInt64 {
		r.missing |= fieldPrice
		return false
	}
	r.Price = int(math.Ceil(f))
	return false
}

func readFlag(raw json.RawMessage) *bool {
	var b bool
	if json.Unmarshal(raw, &b) != nil {
		return nil
	}
	return &b
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// MarshalJSON writes modelled keys in a fixed order, then Extra keys sorted.
// Values held in Extra win over the typed fields.
func (r Restaurant) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	write := func(key string, v any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := encode(&buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if raw, ok := v.(json.RawMessage); ok {
			buf.Write(bytes.TrimSpace(raw))
			return nil
		}
		return encode(&buf, v)
	}

	modelled := []struct {
		key     string
		value   any
		missing bool
	}{
		{keyName, r.Name, r.missing.has(fieldName)},
		{keyCategory, r.Category, r.missing.has(fieldCategory)},
		{keyPrice, r.Price, r.missing.has(fieldPrice)},
		{keySpicy, r.IsSpicy, r.IsSpicy == nil},
		{keySoup, r.HasSoup, r.HasSoup == nil},
	}
	for _, m := range modelled {
		if raw, ok := r.Extra[m.key]; ok {
			if err := write(m.key, raw); err != nil {
				return nil, err
			}
			continue
		}
		if m.missing {
			continue
		}
		if err := write(m.key, m.value); err != nil {
			return nil, err
		}
	}

	extra := make([]string, 0, len(r.Extra))
	for key := range r.Extra {
		switch key {
		case keyName, keyCategory, keyPrice, keySpicy, keySoup:
			continue
		}
		extra = append(extra, key)
	}
	sort.Strings(extra)
	for _, key := range extra {
		if err := write(key, r.Extra[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encode writes v without HTML escaping and without the trailing newline.
func encode(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
