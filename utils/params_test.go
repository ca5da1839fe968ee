package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products", nil)
	opts := ParseQueryOptions(r)

	if opts.Page != 1 {
		t.Errorf("expected page 1, got %d", opts.Page)
	}
	if opts.Limit != DefaultPageSize {
		t.Errorf("expected limit %d, got %d", DefaultPageSize, opts.Limit)
	}
}

func TestParseQueryOptionsAllowedPageSizes(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?perPage=50", nil)
	if got := ParseQueryOptions(r).Limit; got != 50 {
		t.Errorf("expected limit 50, got %d", got)
	}

	// sizes outside the enumerated set fall back to the default
	r = httptest.NewRequest("GET", "/api/products?perPage=17", nil)
	if got := ParseQueryOptions(r).Limit; got != DefaultPageSize {
		t.Errorf("expected limit %d, got %d", DefaultPageSize, got)
	}
}

func TestParseQueryOptionsBadPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?page=-3", nil)
	if got := ParseQueryOptions(r).Page; got != 1 {
		t.Errorf("expected page 1, got %d", got)
	}
}

func TestValidPageSize(t *testing.T) {
	for _, n := range []int{10, 15, 20, 25, 30, 50} {
		if !ValidPageSize(n) {
			t.Errorf("expected %d to be a valid page size", n)
		}
	}
	if ValidPageSize(17) {
		t.Error("did not expect 17 to be a valid page size")
	}
}
