package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"rentacar/internal/domain/models"
	"rentacar/internal/http/middleware"
	"rentacar/internal/utils"

	"github.com/gin-gonic/gin"
)

// errorView backs the terminal error page: a list of messages plus a
// link back to the search form.
type errorView struct {
	Title   string
	Errors  []string
	BackURL string
}

// RenderErrorPage shows the terminal error template. All storefront
// failures are communicated synchronously in the response body.
func RenderErrorPage(c *gin.Context, status int, title string, errs []string) {
	c.HTML(status, "error.tmpl", errorView{
		Title:   title,
		Errors:  errs,
		BackURL: "/",
	})
}

// carCard is the per-car view model shared by the landing and listing
// grids. Money and rating are preformatted so templates stay dumb.
type carCard struct {
	ID            int64
	Title         string
	Description   string
	Image         string
	PricePerDay   string
	RatingDisplay string
	BookURL       string
}

const cardDescriptionLimit = 100

func newCarCard(car models.Car, bookURL string) carCard {
	desc := car.Description
	if len(desc) > cardDescriptionLimit {
		desc = strings.TrimSpace(desc[:cardDescriptionLimit]) + "..."
	}
	return carCard{
		ID:            car.ID,
		Title:         car.Title(),
		Description:   desc,
		Image:         car.Image,
		PricePerDay:   utils.FormatMoney(car.PricePerDay),
		RatingDisplay: strconv.FormatFloat(car.Rating, 'f', 1, 64),
		BookURL:       bookURL,
	}
}

// bookingURL carries car_id plus the original search parameters forward
// to the booking view.
func bookingURL(carID int64, pickup, start, end string) string {
	q := url.Values{}
	q.Set("car_id", strconv.FormatInt(carID, 10))
	q.Set("pickup_location", pickup)
	q.Set("start_date", start)
	q.Set("end_date", end)
	return "/booking?" + q.Encode()
}

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}
