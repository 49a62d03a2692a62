// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehicle lifecycle states.
const (
	VehicleAvailable   = "available"
	VehicleReserved    = "reserved"
	VehicleSold        = "sold"
	VehicleMaintenance = "maintenance"
	VehicleTransit     = "transit"
)

// ValidVehicleStatus reports whether s is a known vehicle status.
func ValidVehicleStatus(s string) bool {
	switch s {
	case VehicleAvailable, VehicleReserved, VehicleSold, VehicleMaintenance, VehicleTransit:
		return true
	}
	return false
}

// Vehicle is one unit of dealership inventory. Prices are decimals
// because they participate in finance arithmetic; images and options are
// stored as JSONB arrays.
type Vehicle struct {
	ID              uuid.UUID       `json:"id"`
	DealershipID    uuid.UUID       `json:"dealership_id"`
	Make            string          `json:"make"`
	Model           string          `json:"model"`
	Version         string          `json:"version"`
	YearManufacture int             `json:"year_manufacture"`
	YearModel       int             `json:"year_model"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	FipePrice       decimal.Decimal `json:"fipe_price"`
	Mileage         int             `json:"mileage"`
	Color           string          `json:"color"`
	Fuel            string          `json:"fuel"`
	Transmission    string          `json:"transmission"`
	Engine          string          `json:"engine,omitempty"`
	Plate           string          `json:"plate,omitempty"`
	PlateEnd        string          `json:"plate_end,omitempty"`
	Status          string          `json:"status"`
	Description     string          `json:"description,omitempty"`
	Images          []string        `json:"images"`
	Options         []string        `json:"options"`
	CreatedAt       time.Time       `json:"created_at"`
}
