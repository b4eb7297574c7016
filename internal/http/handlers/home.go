package handlers

import (
	"net/http"

	"rentacar/internal/services"

	"github.com/gin-gonic/gin"
)

type homeView struct {
	CarTypes  []string
	FuelTypes []string
	Brands    []string
	Featured  []carCard
}

// GET /
// The landing page always renders: filter options are informational and
// the featured grid degrades to empty on storage trouble.
func Home(c *gin.Context) {
	svc := services.SearchService{RequestID: requestID(c)}
	data := svc.HomeData()

	view := homeView{
		CarTypes:  data.CarTypes,
		FuelTypes: data.FuelTypes,
		Brands:    data.Brands,
		Featured:  make([]carCard, 0, len(data.Featured)),
	}
	for _, car := range data.Featured {
		view.Featured = append(view.Featured, newCarCard(car, ""))
	}

	c.HTML(http.StatusOK, "home.tmpl", view)
}
