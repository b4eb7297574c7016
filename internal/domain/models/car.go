package models

// Car is a rentable vehicle row. Views only read it; pricing is carried
// as integer cents.
type Car struct {
	ID          int64
	Brand       string
	Model       string
	Description string
	Image       string
	CarType     string
	FuelType    string
	PricePerDay int64
	Rating      float64
}

// Title is the display name used across pages ("Toyota Corolla").
func (c Car) Title() string {
	if c.Brand == "" {
		return c.Model
	}
	if c.Model == "" {
		return c.Brand
	}
	return c.Brand + " " + c.Model
}
