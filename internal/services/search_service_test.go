package services

import (
	"testing"

	"rentacar/internal/domain/models"
)

func TestHomeDataReturnsTopFourByRating(t *testing.T) {
	store := &fakeCarStore{cars: []models.Car{
		{ID: 1, Brand: "Toyota", Model: "Corolla", Rating: 4.2, CarType: "Sedan", FuelType: "Petrol"},
		{ID: 2, Brand: "Tesla", Model: "Model 3", Rating: 4.8, CarType: "Sedan", FuelType: "Electric"},
		{ID: 3, Brand: "Toyota", Model: "RAV4", Rating: 4.5, CarType: "SUV", FuelType: "Hybrid"},
		{ID: 4, Brand: "Ford", Model: "Fiesta", Rating: 3.9, CarType: "Hatchback", FuelType: "Petrol"},
		{ID: 5, Brand: "Kia", Model: "Rio", Rating: 4.0, CarType: "Hatchback", FuelType: "Petrol"},
	}}
	svc := SearchService{Cars: store}

	data := svc.HomeData()
	if len(data.Featured) != 4 {
		t.Fatalf("expected 4 featured cars, got %d", len(data.Featured))
	}
	if data.Featured[0].ID != 2 {
		t.Fatalf("highest rated car should lead, got %+v", data.Featured[0])
	}
	if len(data.Brands) != 4 {
		t.Fatalf("expected 4 distinct brands, got %v", data.Brands)
	}
	if len(data.CarTypes) != 3 {
		t.Fatalf("expected 3 distinct car types, got %v", data.CarTypes)
	}
}

func TestHomeDataDegradesOnStorageFailure(t *testing.T) {
	store := &fakeCarStore{failAll: true}
	svc := SearchService{Cars: store}

	// The landing page always renders; failures leave sections empty.
	data := svc.HomeData()
	if len(data.Featured) != 0 || len(data.Brands) != 0 {
		t.Fatalf("expected empty sections, got %+v", data)
	}
}
