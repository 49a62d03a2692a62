package store

import (
	"testing"

	"github.com/shopspring/decimal"

	"autohub/internal/models"
)

func TestVehicleCRUD(t *testing.T) {
	db := testDB(t)
	d := testDealership(t, db)
	cleanVehicles(t, db, "TST0A01")
	t.Cleanup(func() { cleanVehicles(t, db, "TST0A01") })

	s := NewVehicleStore(db)

	created, err := s.Create(&models.Vehicle{
		DealershipID:    d.ID,
		Make:            "Fiat",
		Model:           "Pulse",
		Version:         "Drive 1.3",
		YearManufacture: 2023,
		YearModel:       2024,
		SellingPrice:    decimal.RequireFromString("98900.00"),
		Mileage:         15000,
		Color:           "Vermelho",
		Fuel:            "Flex",
		Transmission:    "CVT",
		Plate:           "TST0A01",
		Status:          models.VehicleAvailable,
		Images:          []string{"https://cdn.example.com/pulse.jpg"},
		Options:         []string{"Central multimídia"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.String() == "" {
		t.Fatal("expected assigned ID")
	}
	if len(created.Images) != 1 {
		t.Errorf("images did not round-trip: %+v", created.Images)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Model != "Pulse" {
		t.Fatalf("expected Pulse, got %+v", found)
	}
	if !found.SellingPrice.Equal(decimal.RequireFromString("98900.00")) {
		t.Errorf("selling price: got %s", found.SellingPrice)
	}

	// Filtered list picks it up by search term.
	items, err := s.List(d.ID, models.VehicleAvailable, "pulse")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) == 0 {
		t.Error("expected search to match the created vehicle")
	}

	if err := s.UpdateStatus(created.ID, models.VehicleReserved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	found, _ = s.FindByID(created.ID)
	if found.Status != models.VehicleReserved {
		t.Errorf("status: got %s, want reserved", found.Status)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	found, err = s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if found != nil {
		t.Error("expected nil after delete")
	}
}
