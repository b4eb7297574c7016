package repositories

import (
	"database/sql"
	"fmt"

	"rentacar/internal/config"
	intdb "rentacar/internal/db"
	"rentacar/internal/domain/models"
	"rentacar/internal/utils"
)

// BookingRepository wraps write access to the bookings table. The table
// is provisioned lazily so a fresh schema only needs seeded cars.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// Insert stores one booking row and returns its id. TotalPrice is the
// snapshot computed at quote time; it is written as-is.
func (r BookingRepository) Insert(b models.Booking) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, fmt.Errorf("db not available")
	}
	if err := r.ensureTable(); err != nil {
		return 0, err
	}

	res, err := db.Exec(`
		INSERT INTO bookings
			(car_id, customer_name, customer_email, pickup_location, rental_start, rental_end, total_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.CarID,
		b.CustomerName,
		b.CustomerEmail,
		b.PickupLocation,
		b.RentalStart,
		b.RentalEnd,
		utils.FormatMoney(b.TotalPrice),
	)
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// GetByID loads one booking, e.g. for the voucher download.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, sql.ErrNoRows
	}
	var b models.Booking
	var total string
	err := r.db().QueryRow(`
		SELECT
			id,
			car_id,
			COALESCE(customer_name,''),
			COALESCE(customer_email,''),
			COALESCE(pickup_location,''),
			COALESCE(rental_start,''),
			COALESCE(rental_end,''),
			CAST(total_price AS CHAR)
		FROM bookings WHERE id = ? LIMIT 1`, id).Scan(
		&b.ID,
		&b.CarID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.PickupLocation,
		&b.RentalStart,
		&b.RentalEnd,
		&total,
	)
	if err != nil {
		return models.Booking{}, err
	}
	cents, err := utils.ParseMoney(total)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %d has bad total %q: %w", b.ID, total, err)
	}
	b.TotalPrice = cents
	return b, nil
}

func (r BookingRepository) ensureTable() error {
	db := r.db()
	if intdb.HasTable(db, "bookings") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	car_id BIGINT NOT NULL,
	customer_name VARCHAR(255) NOT NULL,
	customer_email VARCHAR(255) NOT NULL,
	pickup_location VARCHAR(255) NOT NULL,
	rental_start DATE NOT NULL,
	rental_end DATE NOT NULL,
	total_price DECIMAL(10,2) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_car (car_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}
