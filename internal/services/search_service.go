package services

import (
	"fmt"

	"rentacar/internal/domain/models"
	"rentacar/internal/utils"
)

const featuredCarCount = 4

// SearchService feeds the landing page: distinct filter-option sets for
// display plus the top-rated cars.
type SearchService struct {
	Cars      CarStore
	RequestID string
}

type HomeData struct {
	CarTypes  []string
	FuelTypes []string
	Brands    []string
	Featured  []models.Car
}

func (s SearchService) cars() CarStore {
	return defaultCarStore(s.Cars)
}

// HomeData is best-effort: the landing page always renders, so storage
// hiccups degrade individual sections instead of failing the request.
func (s SearchService) HomeData() HomeData {
	store := s.cars()
	out := HomeData{}

	var err error
	if out.CarTypes, err = store.DistinctValues("car_type"); err != nil {
		utils.LogEvent(s.RequestID, "search", "distinct_car_type", err.Error())
	}
	if out.FuelTypes, err = store.DistinctValues("fuel_type"); err != nil {
		utils.LogEvent(s.RequestID, "search", "distinct_fuel_type", err.Error())
	}
	if out.Brands, err = store.DistinctValues("brand"); err != nil {
		utils.LogEvent(s.RequestID, "search", "distinct_brand", err.Error())
	}
	if out.Featured, err = store.TopRated(featuredCarCount); err != nil {
		utils.LogEvent(s.RequestID, "search", "top_rated", err.Error())
		out.Featured = []models.Car{}
	}
	if len(out.Featured) > 0 {
		utils.LogEvent(s.RequestID, "search", "home_data", fmt.Sprintf("featured=%d", len(out.Featured)))
	}
	return out
}
