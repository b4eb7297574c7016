package repositories

import (
	"errors"
	"testing"

	"rentacar/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func sampleBooking() models.Booking {
	return models.Booking{
		CarID:          7,
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		PickupLocation: "Lisbon Airport",
		RentalStart:    "2024-06-01",
		RentalEnd:      "2024-06-04",
		TotalPrice:     13500,
	}
}

func expectBookingsTablePresent(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`information_schema\.tables`).WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bookings"))
}

func TestBookingInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectBookingsTablePresent(mock)
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(int64(7), "Jane Doe", "jane@example.com", "Lisbon Airport", "2024-06-01", "2024-06-04", "135.00").
		WillReturnResult(sqlmock.NewResult(11, 1))

	repo := BookingRepository{DB: db}
	id, err := repo.Insert(sampleBooking())
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if id != 11 {
		t.Fatalf("id = %d, want 11", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingInsertProvisionsMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`information_schema\.tables`).WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS bookings`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := BookingRepository{DB: db}
	if _, err := repo.Insert(sampleBooking()); err != nil {
		t.Fatalf("insert error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingInsertSurfacesWriteFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectBookingsTablePresent(mock)
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnError(errors.New("connection reset"))

	repo := BookingRepository{DB: db}
	if _, err := repo.Insert(sampleBooking()); err == nil {
		t.Fatal("expected insert failure to surface")
	}
}

func TestBookingGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "car_id", "customer_name", "customer_email", "pickup_location", "rental_start", "rental_end", "total_price"}
	mock.ExpectQuery(`FROM bookings WHERE id = \? LIMIT 1`).WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, 7, "Jane Doe", "jane@example.com", "Lisbon Airport", "2024-06-01", "2024-06-04", "135.00"))

	repo := BookingRepository{DB: db}
	b, err := repo.GetByID(11)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if b.TotalPrice != 13500 {
		t.Fatalf("total parsed to %d, want 13500", b.TotalPrice)
	}
	if b.CarID != 7 || b.CustomerName != "Jane Doe" {
		t.Fatalf("unexpected booking: %+v", b)
	}
}
