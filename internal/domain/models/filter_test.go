package models

import "testing"

func TestParseSortOrderDefaultsToPriceAsc(t *testing.T) {
	cases := map[string]SortOrder{
		"":            SortPriceAsc,
		"price_asc":   SortPriceAsc,
		"price_desc":  SortPriceDesc,
		"rating_desc": SortRatingDesc,
		"rating_asc":  SortRatingAsc,
		"bogus":       SortPriceAsc,
		"PRICE_DESC":  SortPriceAsc, // case sensitive like the form values
	}
	for in, want := range cases {
		if got := ParseSortOrder(in); got != want {
			t.Fatalf("ParseSortOrder(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyPriceRangeBounded(t *testing.T) {
	var f CarFilter
	f.ApplyPriceRange("51-100")
	if f.MinPrice == nil || *f.MinPrice != 5100 {
		t.Fatalf("min bound wrong: %v", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 10000 {
		t.Fatalf("max bound wrong: %v", f.MaxPrice)
	}
}

func TestApplyPriceRangeOpenEnded(t *testing.T) {
	var f CarFilter
	f.ApplyPriceRange("200+")
	if f.MinPrice == nil || *f.MinPrice != 20000 {
		t.Fatalf("min bound wrong: %v", f.MinPrice)
	}
	if f.MaxPrice != nil {
		t.Fatalf("open range must not set a max, got %d", *f.MaxPrice)
	}
}

func TestApplyPriceRangeToleratesSpaces(t *testing.T) {
	var f CarFilter
	f.ApplyPriceRange("0 - 50")
	if f.MinPrice == nil || *f.MinPrice != 0 {
		t.Fatalf("min bound wrong: %v", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 5000 {
		t.Fatalf("max bound wrong: %v", f.MaxPrice)
	}
}

func TestApplyPriceRangeIgnoresMalformed(t *testing.T) {
	// Malformed ranges apply no filter at all; they never error.
	for _, in := range []string{"", "cheap", "a-b", "50-", "-50", "+", "12+34"} {
		var f CarFilter
		f.ApplyPriceRange(in)
		if f.MinPrice != nil || f.MaxPrice != nil {
			t.Fatalf("range %q should be ignored, got min=%v max=%v", in, f.MinPrice, f.MaxPrice)
		}
	}
}

func TestFilterMatches(t *testing.T) {
	car := Car{Brand: "Toyota", CarType: "SUV", FuelType: "Hybrid", PricePerDay: 9900}

	if !(CarFilter{}).Matches(car) {
		t.Fatal("empty filter must match everything")
	}
	if !(CarFilter{Brand: "Toyota", CarType: "SUV"}).Matches(car) {
		t.Fatal("matching equality filter rejected the car")
	}
	if (CarFilter{Brand: "Honda"}).Matches(car) {
		t.Fatal("brand mismatch should not match")
	}
	if (CarFilter{FuelType: "Diesel"}).Matches(car) {
		t.Fatal("fuel mismatch should not match")
	}

	min := int64(10000)
	if (CarFilter{MinPrice: &min}).Matches(car) {
		t.Fatal("price below min should not match")
	}
	max := int64(9900)
	if !(CarFilter{MaxPrice: &max}).Matches(car) {
		t.Fatal("inclusive max bound should match")
	}
}
