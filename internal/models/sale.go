// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale ties a vehicle to the lead that bought it. Recording one also
// marks the vehicle sold, the lead won, and books the income entry.
type Sale struct {
	ID           uuid.UUID       `json:"id"`
	DealershipID uuid.UUID       `json:"dealership_id"`
	VehicleID    uuid.UUID       `json:"vehicle_id"`
	LeadID       uuid.UUID       `json:"lead_id"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	CreatedAt    time.Time       `json:"created_at"`
}
