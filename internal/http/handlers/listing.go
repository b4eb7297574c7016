package handlers

import (
	"net/http"

	"rentacar/internal/services"

	"github.com/gin-gonic/gin"
)

type listingView struct {
	Params    services.SearchParams
	CarTypes  []string
	FuelTypes []string
	Brands    []string
	Cars      []carCard
}

// GET /cars
// Required: pickup_location, start_date, end_date. Optional equality and
// range filters plus sort_by. Validation failure renders the error list
// and never touches storage.
func Listing(c *gin.Context) {
	params := services.SearchParams{
		PickupLocation: c.Query("pickup_location"),
		StartDate:      c.Query("start_date"),
		EndDate:        c.Query("end_date"),
		CarType:        c.Query("car_type"),
		FuelType:       c.Query("fuel_type"),
		Brand:          c.Query("brand"),
		PriceRange:     c.Query("price_range"),
		SortBy:         c.Query("sort_by"),
	}
	params.Normalize()

	svc := services.ListingService{RequestID: requestID(c)}

	if errs := svc.Validate(params); len(errs) > 0 {
		RenderErrorPage(c, http.StatusBadRequest, "Search Error", errs)
		return
	}

	cars, err := svc.Search(params)
	if err != nil {
		RenderErrorPage(c, http.StatusInternalServerError, "Search Error",
			[]string{"Something went wrong while searching for cars. Please try again."})
		return
	}

	carTypes, fuelTypes, brands := svc.FilterOptions()

	view := listingView{
		Params:    params,
		CarTypes:  carTypes,
		FuelTypes: fuelTypes,
		Brands:    brands,
		Cars:      make([]carCard, 0, len(cars)),
	}
	for _, car := range cars {
		view.Cars = append(view.Cars, newCarCard(car,
			bookingURL(car.ID, params.PickupLocation, params.StartDate, params.EndDate)))
	}

	c.HTML(http.StatusOK, "listing.tmpl", view)
}
