package catalog

import (
	"sort"
	"strconv"

	"everbloom/models"
	"everbloom/utils"
)

// Filters narrows the catalog. Empty string fields are ignored; all set
// fields must match at once. PriceMax <= 0 means no upper bound.
type Filters struct {
	Occasion   string
	Fandom     string
	Type       string
	FlowerType string
	Size       string
	PriceMin   int64
	PriceMax   int64
	Search     string
}

func matchesSearch(p models.Product, q string) bool {
	fields := []string{p.Name, p.Type, p.FlowerType, p.Categories.Occasion, p.Categories.Fandom}
	for _, f := range fields {
		if f != "" && utils.ContainsIgnoreCase(f, q) {
			return true
		}
	}
	return false
}

func (f Filters) matches(p models.Product) bool {
	if f.Occasion != "" && p.Categories.Occasion != f.Occasion {
		return false
	}
	if f.Fandom != "" && p.Categories.Fandom != f.Fandom {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.FlowerType != "" && p.FlowerType != f.FlowerType {
		return false
	}
	if f.Size != "" && p.Size != f.Size {
		return false
	}
	if p.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	return true
}

// Apply returns the products that pass every active filter, preserving the
// input order.
func (f Filters) Apply(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Sort keys accepted by the shop listing.
const (
	SortFeatured    = "featured"
	SortBestSelling = "best-selling"
	SortNameAsc     = "a-z"
	SortNameDesc    = "z-a"
	SortPriceAsc    = "price-low-high"
	SortPriceDesc   = "price-high-low"
	SortDateOldNew  = "date-old-new"
	SortDateNewOld  = "date-new-old"
)

// numericID treats product ids as numbers where possible so "10" sorts after
// "9". Non-numeric ids sort last.
func numericID(p models.Product) int64 {
	n, err := strconv.ParseInt(p.ProductID, 10, 64)
	if err != nil {
		return 1<<63 - 1
	}
	return n
}

// SortProducts orders products in place by the given key. Unknown keys leave
// the order untouched. The id doubles as a creation-date proxy, so the date
// sorts and "featured" fall back to it, and "best-selling" uses price until
// real sales counts exist.
func SortProducts(products []models.Product, key string) {
	var less func(a, b models.Product) bool
	switch key {
	case SortFeatured, SortDateOldNew:
		less = func(a, b models.Product) bool { return numericID(a) < numericID(b) }
	case SortDateNewOld:
		less = func(a, b models.Product) bool { return numericID(a) > numericID(b) }
	case SortBestSelling, SortPriceDesc:
		less = func(a, b models.Product) bool { return a.Price > b.Price }
	case SortPriceAsc:
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case SortNameAsc:
		less = func(a, b models.Product) bool { return a.Name < b.Name }
	case SortNameDesc:
		less = func(a, b models.Product) bool { return a.Name > b.Name }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

// Paginate slices out page p (1-based) of size limit. Out-of-range pages
// return an empty, non-nil slice.
func Paginate(products []models.Product, page, limit int) []models.Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
