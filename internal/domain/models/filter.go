package models

import (
	"strconv"
	"strings"
)

// SortOrder enumerates the listing sort keys.
type SortOrder string

const (
	SortPriceAsc   SortOrder = "price_asc"
	SortPriceDesc  SortOrder = "price_desc"
	SortRatingDesc SortOrder = "rating_desc"
	SortRatingAsc  SortOrder = "rating_asc"
)

// ParseSortOrder maps the sort_by parameter onto a SortOrder, falling
// back to ascending price for absent or unrecognized values.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.TrimSpace(s)) {
	case SortPriceDesc:
		return SortPriceDesc
	case SortRatingDesc:
		return SortRatingDesc
	case SortRatingAsc:
		return SortRatingAsc
	default:
		return SortPriceAsc
	}
}

// CarFilter is the structured filter specification the listing view hands
// to storage. Empty equality fields and nil bounds apply no restriction.
type CarFilter struct {
	CarType  string
	FuelType string
	Brand    string
	MinPrice *int64
	MaxPrice *int64
	Sort     SortOrder
}

// ApplyPriceRange parses an enumerated range ("0-50", "51-100", "101-200",
// "200+") into inclusive cent bounds. Malformed strings are silently
// ignored, matching the storefront's historical permissiveness.
func (f *CarFilter) ApplyPriceRange(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if strings.HasSuffix(raw, "+") {
		min, err := strconv.ParseInt(strings.TrimSpace(strings.TrimSuffix(raw, "+")), 10, 64)
		if err != nil {
			return
		}
		cents := min * 100
		f.MinPrice = &cents
		return
	}
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return
	}
	min, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return
	}
	max, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return
	}
	minCents, maxCents := min*100, max*100
	f.MinPrice = &minCents
	f.MaxPrice = &maxCents
}

// Matches reports whether a car satisfies every active predicate. Used by
// in-memory stores and tests; SQL-backed stores translate the filter
// directly.
func (f CarFilter) Matches(c Car) bool {
	if f.CarType != "" && c.CarType != f.CarType {
		return false
	}
	if f.FuelType != "" && c.FuelType != f.FuelType {
		return false
	}
	if f.Brand != "" && c.Brand != f.Brand {
		return false
	}
	if f.MinPrice != nil && c.PricePerDay < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && c.PricePerDay > *f.MaxPrice {
		return false
	}
	return true
}
