// Package pagination implements page/limit parameters for list endpoints.
// It decides how qualifying rows are sliced into pages; which rows qualify
// and in what order is the query layer's concern.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the page size used when the client does not pass one.
	DefaultLimit = 6
	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
)

// Params holds normalized page/limit values. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// FromQuery parses "page" and "limit" query parameters, applying defaults
// and clamping. Malformed values fall back to defaults rather than erroring.
func FromQuery(q url.Values) Params {
	p := Params{Page: 1, Limit: DefaultLimit}

	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		p.Limit = v
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}

	return p
}

// Normalize applies the same defaults and clamping as FromQuery to
// values that did not come from a URL.
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns the number of rows to skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes a page relative to the total row count.
type Meta struct {
	Count   int
	Page    int
	Limit   int
	HasNext bool
	HasPrev bool
}

// NewMeta builds page metadata from the total count and the params used.
func NewMeta(count int, p Params) Meta {
	return Meta{
		Count:   count,
		Page:    p.Page,
		Limit:   p.Limit,
		HasNext: p.Offset()+p.Limit < count,
		HasPrev: p.Page > 1,
	}
}
