package utils

import (
	"net/http"
	"strconv"
)

// Page sizes the shop UI may request.
var allowedPageSizes = map[int]bool{10: true, 15: true, 20: true, 25: true, 30: true, 50: true}

const DefaultPageSize = 20

// ValidPageSize reports whether the shop UI may request this page size.
func ValidPageSize(n int) bool {
	return allowedPageSizes[n]
}

type QueryOptions struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("perPage"))
	if !allowedPageSizes[limit] {
		limit = DefaultPageSize
	}

	return QueryOptions{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
	}
}
