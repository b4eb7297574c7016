package handlers

import (
	"net/http"
	"strconv"

	"rentacar/internal/domain"
	"rentacar/internal/domain/models"
	"rentacar/internal/services"
	"rentacar/internal/utils"

	"github.com/gin-gonic/gin"
)

type bookingView struct {
	Car            carCard
	PickupLocation string
	StartDate      string
	EndDate        string
	Days           int64
	TotalPrice     string
	ActionURL      string

	Errors        []string
	CustomerName  string
	CustomerEmail string

	Confirmed    bool
	Confirmation confirmationView
}

type confirmationView struct {
	CustomerName string
	CarTitle     string
	StartDate    string
	EndDate      string
	TotalPrice   string
	VoucherURL   string
}

// GET /booking
// Renders the car summary, computed quote and the contact form.
func BookingForm(c *gin.Context) {
	in := bookingInput(c)
	svc := services.BookingService{RequestID: requestID(c)}

	car, quote, err := svc.LoadContext(in)
	if err != nil {
		renderBookingError(c, err)
		return
	}

	c.HTML(http.StatusOK, "booking.tmpl", bookingViewFor(car, quote, in))
}

// POST /booking
// Validates the contact fields and persists exactly one booking row.
// Validation or storage failure re-renders the form with prior input.
func BookingSubmit(c *gin.Context) {
	in := bookingInput(c)
	in.CustomerName = utils.TrimOrEmpty(c.PostForm("customer_name"))
	in.CustomerEmail = utils.TrimOrEmpty(c.PostForm("customer_email"))

	svc := services.BookingService{RequestID: requestID(c)}

	car, quote, err := svc.LoadContext(in)
	if err != nil {
		renderBookingError(c, err)
		return
	}

	booking, violations, err := svc.Submit(in)
	if err != nil {
		if domain.IsStorageWrite(err) {
			view := bookingViewFor(car, quote, in)
			view.Errors = []string{"Failed to save your booking. Please try again."}
			c.HTML(http.StatusInternalServerError, "booking.tmpl", view)
			return
		}
		renderBookingError(c, err)
		return
	}
	if len(violations) > 0 {
		view := bookingViewFor(car, quote, in)
		view.Errors = violations
		c.HTML(http.StatusOK, "booking.tmpl", view)
		return
	}

	view := bookingViewFor(car, quote, in)
	view.Confirmed = true
	view.Confirmation = confirmationView{
		CustomerName: booking.CustomerName,
		CarTitle:     car.Title(),
		StartDate:    booking.RentalStart,
		EndDate:      booking.RentalEnd,
		TotalPrice:   utils.FormatMoney(booking.TotalPrice),
		VoucherURL:   "/booking/" + strconv.FormatInt(booking.ID, 10) + "/voucher",
	}
	c.HTML(http.StatusOK, "booking.tmpl", view)
}

func bookingInput(c *gin.Context) services.BookingInput {
	carID, _ := strconv.ParseInt(utils.TrimOrEmpty(c.Query("car_id")), 10, 64)
	return services.BookingInput{
		CarID:          carID,
		PickupLocation: utils.TrimOrEmpty(c.Query("pickup_location")),
		StartDate:      utils.TrimOrEmpty(c.Query("start_date")),
		EndDate:        utils.TrimOrEmpty(c.Query("end_date")),
	}
}

func bookingViewFor(car models.Car, quote models.Quote, in services.BookingInput) bookingView {
	return bookingView{
		Car:            newCarCard(car, ""),
		PickupLocation: in.PickupLocation,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Days:           quote.Days,
		TotalPrice:     utils.FormatMoney(quote.TotalPrice),
		ActionURL:      bookingURL(car.ID, in.PickupLocation, in.StartDate, in.EndDate),
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
	}
}

func renderBookingError(c *gin.Context, err error) {
	switch {
	case domain.IsMissingParameter(err):
		RenderErrorPage(c, http.StatusBadRequest, "Booking Error",
			[]string{"Missing booking details. Please start your booking from the search page."})
	case domain.IsNotFound(err):
		RenderErrorPage(c, http.StatusNotFound, "Booking Error",
			[]string{"Car not found."})
	case domain.IsValidation(err):
		RenderErrorPage(c, http.StatusBadRequest, "Booking Error",
			[]string{err.Error()})
	default:
		RenderErrorPage(c, http.StatusInternalServerError, "Booking Error",
			[]string{"Something went wrong. Please try again."})
	}
}
