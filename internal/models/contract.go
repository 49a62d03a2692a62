// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContractTemplate is a reusable Markdown document with {{nome}} and
// {{data}} placeholders filled at generation time.
type ContractTemplate struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Contract statuses.
const (
	ContractActive   = "active"
	ContractArchived = "archived"
)

// Contract is a generated document: a template with its placeholders
// resolved for one customer.
type Contract struct {
	ID           uuid.UUID `json:"id"`
	DealershipID uuid.UUID `json:"dealership_id"`
	Title        string    `json:"title"`
	CustomerName string    `json:"customer_name"`
	Content      string    `json:"content"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
