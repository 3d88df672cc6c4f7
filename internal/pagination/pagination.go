// Package pagination slices ordered result sets into fixed-size pages
// selected by a 1-based page index.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// DefaultPageSize is the fallback page size when none is configured.
const DefaultPageSize = 10

// Page returns the window [(page-1)*size, page*size) of items, clipped to
// the slice bounds. A page past the end of the data yields an empty slice,
// not an error. Page values below 1 are treated as 1.
func Page[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageFromQuery reads the "page" query parameter from the request.
// Missing or non-numeric values default to 1.
func PageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
