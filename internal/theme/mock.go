package theme

import (
	"github.com/shopspring/decimal"

	"autohub/internal/models"
)

// MockVehicles backs the public site and editor preview when the
// inventory is empty, so a fresh install still shows a populated site.
func MockVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			Make:            "Toyota",
			Model:           "Corolla",
			YearManufacture: 2022,
			YearModel:       2023,
			SellingPrice:    decimal.RequireFromString("145900"),
			Mileage:         28000,
			Fuel:            "Flex",
		},
		{
			Make:            "Honda",
			Model:           "Civic",
			YearManufacture: 2021,
			YearModel:       2022,
			SellingPrice:    decimal.RequireFromString("159900"),
			Mileage:         41000,
			Fuel:            "Gasolina",
		},
		{
			Make:            "Jeep",
			Model:           "Compass",
			YearManufacture: 2023,
			YearModel:       2023,
			SellingPrice:    decimal.RequireFromString("172500"),
			Mileage:         12000,
			Fuel:            "Flex",
		},
	}
}
