package shared

import (
	"net/http"
	"strconv"
)

// List endpoints share one page-size policy so dashboard views stay
// bounded regardless of which resource they hit.
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type Pagination struct {
	Limit  int
	Offset int
}

func ParsePagination(r *http.Request) Pagination {
	page := Pagination{Limit: DefaultPageSize}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page.Limit = v
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			page.Offset = v
		}
	}
	if page.Limit > MaxPageSize {
		page.Limit = MaxPageSize
	}
	return page
}
