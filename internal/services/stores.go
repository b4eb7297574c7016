package services

import (
	"rentacar/internal/domain/models"
	"rentacar/internal/repositories"
)

// CarStore is the read capability the views need from storage. The SQL
// repository implements it; tests substitute in-memory fakes.
type CarStore interface {
	GetByID(id int64) (models.Car, error)
	List(f models.CarFilter) ([]models.Car, error)
	TopRated(limit int) ([]models.Car, error)
	DistinctValues(column string) ([]string, error)
}

// BookingStore is the booking persistence capability.
type BookingStore interface {
	Insert(b models.Booking) (int64, error)
	GetByID(id int64) (models.Booking, error)
}

func defaultCarStore(s CarStore) CarStore {
	if s != nil {
		return s
	}
	return repositories.CarRepository{}
}

func defaultBookingStore(s BookingStore) BookingStore {
	if s != nil {
		return s
	}
	return repositories.BookingRepository{}
}
