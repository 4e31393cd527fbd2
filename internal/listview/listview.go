// Package listview derives displayed pages from the store's collections:
// filter, then sort, then paginate, in that fixed order. Queries never
// mutate their input; they work on the copies the store hands out.
package listview

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Page sizes are fixed per resource kind.
const (
	UsersPerPage    = 8
	ProductsPerPage = 6
)

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// newCollator returns a collator for locale-aware string comparison.
// Collators are not safe for concurrent use, so each query gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// containsFold reports whether any of the fields contains term as a
// case-insensitive substring. An empty term matches everything.
func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// pageBounds returns the slice bounds for the requested page. Pages are
// 1-based; an out-of-range page yields an empty slice rather than an
// error, so a stale page after narrowing a search renders as no rows.
func pageBounds(page, perPage, total int) (int, int) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= total {
		return total, total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return start, end
}

// totalPages is the page count for total items at perPage each.
func totalPages(total, perPage int) int {
	return (total + perPage - 1) / perPage
}
