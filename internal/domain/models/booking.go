package models

// Booking is a persisted reservation. TotalPrice is snapshotted in cents
// at booking time and never re-derived.
type Booking struct {
	ID             int64
	CarID          int64
	CustomerName   string
	CustomerEmail  string
	PickupLocation string
	RentalStart    string
	RentalEnd      string
	TotalPrice     int64
}

// Quote is the computed day count and total shown before confirmation.
type Quote struct {
	Days       int64
	TotalPrice int64
}
