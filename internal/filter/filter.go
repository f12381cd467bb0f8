// Package filter holds the catalog narrowing state (category, free text,
// price range, page) and its canonical query-string form.
package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// AllCategories is the sentinel meaning "no category filter". It is never
// serialized into a query string.
const AllCategories = "All"

// State captures the user-selected catalog filters plus the current page.
// Price bounds stay as raw strings so they round-trip URL text untouched;
// the gateway parses them into numbers at the request boundary.
type State struct {
	Category string
	Search   string
	MinPrice string
	MaxPrice string
	Page     int
}

// Default returns the state of an unfiltered first page.
func Default() State {
	return State{Category: AllCategories, Page: 1}
}

// IsFiltered reports whether any narrowing criterion is active.
func (s State) IsFiltered() bool {
	return s.Search != "" ||
		(s.Category != "" && s.Category != AllCategories) ||
		s.MinPrice != "" || s.MaxPrice != ""
}

// Build encodes s into its canonical query string. Parameters appear in a
// fixed order: search, category, minPrice, maxPrice, page. Empty fields and
// the "All" category are omitted.
func Build(s State) string {
	var b strings.Builder

	emit := func(key, val string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(val))
	}

	if s.Search != "" {
		emit("search", s.Search)
	}
	if s.Category != "" && s.Category != AllCategories {
		emit("category", s.Category)
	}
	if s.MinPrice != "" {
		emit("minPrice", s.MinPrice)
	}
	if s.MaxPrice != "" {
		emit("maxPrice", s.MaxPrice)
	}

	page := s.Page
	if page < 1 {
		page = 1
	}
	emit("page", strconv.Itoa(page))

	return b.String()
}

// Parse decodes a query string back into a State. Missing fields take their
// defaults: category "All", page 1. Malformed input degrades to the defaults
// rather than failing; Parse(Build(Parse(q))) == Parse(q) for any q.
func Parse(raw string) State {
	s := Default()

	raw = strings.TrimPrefix(raw, "?")
	values, err := url.ParseQuery(raw)
	if err != nil {
		return s
	}

	if v := values.Get("search"); v != "" {
		s.Search = v
	}
	if v := values.Get("category"); v != "" {
		s.Category = v
	}
	if v := values.Get("minPrice"); v != "" {
		s.MinPrice = v
	}
	if v := values.Get("maxPrice"); v != "" {
		s.MaxPrice = v
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		s.Page = page
	}

	return s
}
