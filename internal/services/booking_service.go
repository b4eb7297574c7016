package services

import (
	"database/sql"
	"errors"
	"fmt"

	"rentacar/internal/domain"
	"rentacar/internal/domain/models"
	"rentacar/internal/utils"
)

// BookingInput is everything a booking request carries: the context
// forwarded from the listing plus the contact fields on submit.
type BookingInput struct {
	CarID          int64
	PickupLocation string
	StartDate      string
	EndDate        string
	CustomerName   string
	CustomerEmail  string
}

// BookingService loads the quoted car, validates contact fields and
// persists exactly one booking row per successful submission.
type BookingService struct {
	Cars      CarStore
	Bookings  BookingStore
	RequestID string
}

func (s BookingService) cars() CarStore {
	return defaultCarStore(s.Cars)
}

func (s BookingService) bookings() BookingStore {
	return defaultBookingStore(s.Bookings)
}

// LoadContext resolves the car and computes the quote for the booking
// page. Terminal conditions (missing params, unknown car, unparseable
// dates) come back as typed domain errors.
func (s BookingService) LoadContext(in BookingInput) (models.Car, models.Quote, error) {
	var zero models.Car
	switch {
	case in.CarID <= 0:
		return zero, models.Quote{}, domain.MissingParameterError{Param: "car_id"}
	case utils.TrimOrEmpty(in.PickupLocation) == "":
		return zero, models.Quote{}, domain.MissingParameterError{Param: "pickup_location"}
	case utils.TrimOrEmpty(in.StartDate) == "":
		return zero, models.Quote{}, domain.MissingParameterError{Param: "start_date"}
	case utils.TrimOrEmpty(in.EndDate) == "":
		return zero, models.Quote{}, domain.MissingParameterError{Param: "end_date"}
	}

	start, err := utils.ParseDate(in.StartDate)
	if err != nil {
		return zero, models.Quote{}, domain.ValidationError{Field: "start_date", Msg: "must be a valid date (YYYY-MM-DD)"}
	}
	end, err := utils.ParseDate(in.EndDate)
	if err != nil {
		return zero, models.Quote{}, domain.ValidationError{Field: "end_date", Msg: "must be a valid date (YYYY-MM-DD)"}
	}

	car, err := s.cars().GetByID(in.CarID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, models.Quote{}, domain.NotFoundError{Resource: "car", Err: err}
		}
		return zero, models.Quote{}, domain.InternalError{Err: err}
	}

	// Zero or negative spans clamp to one billable day instead of failing.
	days := utils.RentalDays(start, end)
	quote := models.Quote{
		Days:       days,
		TotalPrice: days * car.PricePerDay,
	}
	return car, quote, nil
}

// ValidateContact accumulates every contact-field violation; it never
// stops at the first failure.
func (s BookingService) ValidateContact(name, email string) []string {
	errs := []string{}
	if utils.TrimOrEmpty(name) == "" {
		errs = append(errs, "Please enter your name.")
	}
	if utils.TrimOrEmpty(email) == "" {
		errs = append(errs, "Please enter your email.")
	} else if !utils.IsValidEmail(email) {
		errs = append(errs, "Please enter a valid email address.")
	}
	return errs
}

// Submit validates the contact fields and, when clean, inserts one
// booking with the snapshotted total. The violations slice is non-empty
// exactly when nothing was written.
func (s BookingService) Submit(in BookingInput) (models.Booking, []string, error) {
	car, quote, err := s.LoadContext(in)
	if err != nil {
		return models.Booking{}, nil, err
	}

	if violations := s.ValidateContact(in.CustomerName, in.CustomerEmail); len(violations) > 0 {
		return models.Booking{}, violations, nil
	}

	booking := models.Booking{
		CarID:          car.ID,
		CustomerName:   utils.TrimOrEmpty(in.CustomerName),
		CustomerEmail:  utils.TrimOrEmpty(in.CustomerEmail),
		PickupLocation: utils.TrimOrEmpty(in.PickupLocation),
		RentalStart:    utils.TrimOrEmpty(in.StartDate),
		RentalEnd:      utils.TrimOrEmpty(in.EndDate),
		TotalPrice:     quote.TotalPrice,
	}

	id, err := s.bookings().Insert(booking)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "insert_failed", err.Error())
		return models.Booking{}, nil, domain.StorageWriteError{Err: err}
	}
	booking.ID = id

	utils.LogEvent(s.RequestID, "booking", "created",
		fmt.Sprintf("booking_id=%d car_id=%d total=%s", id, car.ID, utils.FormatMoney(booking.TotalPrice)))
	return booking, nil, nil
}
