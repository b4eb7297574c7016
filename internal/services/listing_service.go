package services

import (
	"rentacar/internal/domain/models"
	"rentacar/internal/utils"
)

// SearchParams is the explicit parameter object carried from the request
// into the listing view. No handler reads the raw query twice.
type SearchParams struct {
	PickupLocation string
	StartDate      string
	EndDate        string
	CarType        string
	FuelType       string
	Brand          string
	PriceRange     string
	SortBy         string
}

// Normalize trims every field in place.
func (p *SearchParams) Normalize() {
	p.PickupLocation = utils.TrimOrEmpty(p.PickupLocation)
	p.StartDate = utils.TrimOrEmpty(p.StartDate)
	p.EndDate = utils.TrimOrEmpty(p.EndDate)
	p.CarType = utils.TrimOrEmpty(p.CarType)
	p.FuelType = utils.TrimOrEmpty(p.FuelType)
	p.Brand = utils.TrimOrEmpty(p.Brand)
	p.PriceRange = utils.TrimOrEmpty(p.PriceRange)
	p.SortBy = utils.TrimOrEmpty(p.SortBy)
}

// ListingService validates search parameters and queries storage through
// the structured filter.
type ListingService struct {
	Cars      CarStore
	RequestID string
}

func (s ListingService) cars() CarStore {
	return defaultCarStore(s.Cars)
}

// Validate returns every violation for the required search fields. An
// empty slice means the search may proceed. ISO dates compare the same
// lexicographically and chronologically, so the raw strings are compared
// when both are well-formed dates and as plain strings otherwise.
func (s ListingService) Validate(p SearchParams) []string {
	errs := []string{}
	if p.PickupLocation == "" {
		errs = append(errs, "Pickup location is required.")
	}
	if p.StartDate == "" {
		errs = append(errs, "Rental start date is required.")
	}
	if p.EndDate == "" {
		errs = append(errs, "Return date is required.")
	} else if p.StartDate != "" && p.EndDate < p.StartDate {
		errs = append(errs, "Return date must be after start date.")
	}
	return errs
}

// BuildFilter maps the optional parameters onto the filter specification.
func (s ListingService) BuildFilter(p SearchParams) models.CarFilter {
	f := models.CarFilter{
		CarType:  p.CarType,
		FuelType: p.FuelType,
		Brand:    p.Brand,
		Sort:     models.ParseSortOrder(p.SortBy),
	}
	f.ApplyPriceRange(p.PriceRange)
	return f
}

// Search runs the filtered, sorted listing query. Callers must have
// validated the params first; this method does not re-check them.
func (s ListingService) Search(p SearchParams) ([]models.Car, error) {
	return s.cars().List(s.BuildFilter(p))
}

// FilterOptions returns the distinct sets for the listing filter form.
// Best-effort, a failed column just renders an empty dropdown.
func (s ListingService) FilterOptions() (carTypes, fuelTypes, brands []string) {
	store := s.cars()
	var err error
	if carTypes, err = store.DistinctValues("car_type"); err != nil {
		utils.LogEvent(s.RequestID, "listing", "distinct_car_type", err.Error())
	}
	if fuelTypes, err = store.DistinctValues("fuel_type"); err != nil {
		utils.LogEvent(s.RequestID, "listing", "distinct_fuel_type", err.Error())
	}
	if brands, err = store.DistinctValues("brand"); err != nil {
		utils.LogEvent(s.RequestID, "listing", "distinct_brand", err.Error())
	}
	return carTypes, fuelTypes, brands
}
