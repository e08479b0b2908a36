// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import "strconv"

const (
	// PageSize is the number of items on a page
	PageSize = 10

	// DefaultPage is used when the page parameter is absent or not an integer
	DefaultPage = 1
)

// ParsePage reads a 1-based page number from a query value. Empty or
// non-integer input yields DefaultPage; other integers pass through as-is.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPage
	}
	return page
}

// Page returns items[(page-1)*PageSize : page*PageSize], clipped to the
// collection. Pages below 1 or past the last page are empty.
func Page[T any](items []T, page int) []T {
	// Compare page counts before multiplying so huge pages cannot overflow
	pages := (len(items) + PageSize - 1) / PageSize
	if page < 1 || page > pages {
		return []T{}
	}

	start := (page - 1) * PageSize
	end := min(start+PageSize, len(items))
	return items[start:end]
}
