// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Dealership is the tenant every other record hangs off. The application
// runs single-tenant and lazily creates one on first save.
type Dealership struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultDealershipName is used when a save has to create the tenant row.
const DefaultDealershipName = "Minha Loja"
