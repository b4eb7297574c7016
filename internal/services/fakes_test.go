package services

import (
	"database/sql"
	"fmt"
	"sort"

	"rentacar/internal/domain/models"
)

// fakeCarStore is the in-memory CarStore used across service tests. It
// records calls so tests can assert which queries a view issued.
type fakeCarStore struct {
	cars []models.Car

	listCalls     int
	lastFilter    models.CarFilter
	topRatedCalls int
	distinctCalls []string
	getCalls      int

	failAll bool
}

func (f *fakeCarStore) GetByID(id int64) (models.Car, error) {
	f.getCalls++
	if f.failAll {
		return models.Car{}, fmt.Errorf("store down")
	}
	for _, c := range f.cars {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Car{}, sql.ErrNoRows
}

func (f *fakeCarStore) List(filter models.CarFilter) ([]models.Car, error) {
	f.listCalls++
	f.lastFilter = filter
	if f.failAll {
		return nil, fmt.Errorf("store down")
	}
	out := []models.Car{}
	for _, c := range f.cars {
		if filter.Matches(c) {
			out = append(out, c)
		}
	}
	sortCars(out, filter.Sort)
	return out, nil
}

func (f *fakeCarStore) TopRated(limit int) ([]models.Car, error) {
	f.topRatedCalls++
	if f.failAll {
		return nil, fmt.Errorf("store down")
	}
	out := append([]models.Car{}, f.cars...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCarStore) DistinctValues(column string) ([]string, error) {
	f.distinctCalls = append(f.distinctCalls, column)
	if f.failAll {
		return nil, fmt.Errorf("store down")
	}
	seen := map[string]bool{}
	out := []string{}
	for _, c := range f.cars {
		var v string
		switch column {
		case "car_type":
			v = c.CarType
		case "fuel_type":
			v = c.FuelType
		case "brand":
			v = c.Brand
		}
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeCarStore) totalCalls() int {
	return f.listCalls + f.topRatedCalls + f.getCalls + len(f.distinctCalls)
}

func sortCars(cars []models.Car, order models.SortOrder) {
	sort.SliceStable(cars, func(i, j int) bool {
		a, b := cars[i], cars[j]
		switch order {
		case models.SortPriceDesc:
			return a.PricePerDay > b.PricePerDay
		case models.SortRatingDesc:
			return a.Rating > b.Rating
		case models.SortRatingAsc:
			return a.Rating < b.Rating
		default:
			return a.PricePerDay < b.PricePerDay
		}
	})
}

// fakeBookingStore records inserted bookings.
type fakeBookingStore struct {
	inserted   []models.Booking
	nextID     int64
	failInsert bool
}

func (f *fakeBookingStore) Insert(b models.Booking) (int64, error) {
	if f.failInsert {
		return 0, fmt.Errorf("insert failed")
	}
	f.nextID++
	b.ID = f.nextID
	f.inserted = append(f.inserted, b)
	return f.nextID, nil
}

func (f *fakeBookingStore) GetByID(id int64) (models.Booking, error) {
	for _, b := range f.inserted {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, sql.ErrNoRows
}
