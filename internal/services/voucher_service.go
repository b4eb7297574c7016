package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"rentacar/internal/domain"
	"rentacar/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// VoucherService renders a confirmed booking as a downloadable PDF.
type VoucherService struct {
	Cars      CarStore
	Bookings  BookingStore
	RequestID string
}

func (s VoucherService) cars() CarStore {
	return defaultCarStore(s.Cars)
}

func (s VoucherService) bookings() BookingStore {
	return defaultBookingStore(s.Bookings)
}

// Generate builds the voucher PDF for one booking and a filename to
// serve it under.
func (s VoucherService) Generate(bookingID int64) ([]byte, string, error) {
	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.NotFoundError{Resource: "booking", Err: err}
		}
		return nil, "", domain.InternalError{Err: err}
	}

	carTitle := fmt.Sprintf("Car #%d", booking.CarID)
	if car, err := s.cars().GetByID(booking.CarID); err == nil {
		carTitle = car.Title()
	}

	utils.LogEvent(s.RequestID, "voucher", "generate", fmt.Sprintf("booking_id=%d", bookingID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RENTACAR BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref    : RC-%d", booking.ID),
		fmt.Sprintf("Customer       : %s", safe(booking.CustomerName, "-")),
		fmt.Sprintf("Email          : %s", safe(booking.CustomerEmail, "-")),
		fmt.Sprintf("Vehicle        : %s", safe(carTitle, "-")),
		fmt.Sprintf("Pickup         : %s", safe(booking.PickupLocation, "-")),
		fmt.Sprintf("Rental Start   : %s", safe(booking.RentalStart, "-")),
		fmt.Sprintf("Rental End     : %s", safe(booking.RentalEnd, "-")),
		fmt.Sprintf("Total Price    : $%s", utils.FormatMoney(booking.TotalPrice)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher together with a valid driving licence at the pickup desk.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	filename := fmt.Sprintf("VOUCHER_RC-%d_%s.pdf", booking.ID, safeFilenamePart(booking.CustomerName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
