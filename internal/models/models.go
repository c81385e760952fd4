package models

import "github.com/goccy/go-json"

// Category labels used throughout the catalog.
const (
	Korean   = "한식"
	Chinese  = "중식"
	Japanese = "일식"
	Western  = "양식"
	Other    = "기타"
)

// Categories is the fixed set a new record can be filed under, in menu order.
var Categories = []string{Korean, Chinese, Japanese, Western, Other}

// Restaurant holds a single catalog entry.
// IsSpicy and HasSoup are pointers so that a flag missing from the data file
// stays distinguishable from an explicit false.
// JSON encoding is custom, see json.go.
type Restaurant struct {
	Name     string `validate:"required"`
	Category string `validate:"oneof=한식 중식 일식 양식 기타"`
	Price    int    `validate:"gt=0"`
	IsSpicy  *bool
	HasSoup  *bool

	// Extra keeps keys this type does not model, and modelled keys whose
	// stored value had an unexpected type. They are written back unchanged.
	Extra map[string]json.RawMessage `validate:"-"`

	missing fieldSet
}

// HasPrice reports whether the price was read as a number.
// Records built in code always have one.
func (r Restaurant) HasPrice() bool {
	return !r.missing.has(fieldPrice)
}

// Spicy reports the spicy flag, or fallback when it is absent.
func (r Restaurant) Spicy(fallback bool) bool {
	if r.IsSpicy == nil {
		return fallback
	}
	return *r.IsSpicy
}

// Soup reports the soup flag, or fallback when it is absent.
func (r Restaurant) Soup(fallback bool) bool {
	if r.HasSoup == nil {
		return fallback
	}
	return *r.HasSoup
}

// Flag returns a pointer to b, for building records in code.
func Flag(b bool) *bool {
	return &b
}

// Catalog is the in-memory list of restaurants for one session.
type Catalog struct {
	records []Restaurant
}

func NewCatalog(records []Restaurant) *Catalog {
	return &Catalog{records: records}
}

// Records returns the catalog in insertion order. Callers must not modify it.
func (c *Catalog) Records() []Restaurant {
	return c.records
}

func (c *Catalog) Append(r Restaurant) {
	c.records = append(c.records, r)
}

func (c *Catalog) Len() int {
	return len(c.records)
}
