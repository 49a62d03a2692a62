// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead pipeline stages, in kanban order.
const (
	LeadNew         = "new"
	LeadContact     = "contact"
	LeadProposal    = "proposal"
	LeadNegotiation = "negotiation"
	LeadWon         = "won"
	LeadLost        = "lost"
)

// Lead temperatures.
const (
	TempCold = "cold"
	TempWarm = "warm"
	TempHot  = "hot"
)

// ValidLeadStatus reports whether s is a known pipeline stage.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadNew, LeadContact, LeadProposal, LeadNegotiation, LeadWon, LeadLost:
		return true
	}
	return false
}

// Lead is a sales prospect moving through the CRM pipeline.
type Lead struct {
	ID              uuid.UUID `json:"id"`
	DealershipID    uuid.UUID `json:"dealership_id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email,omitempty"`
	Source          string    `json:"source"`
	VehicleInterest string    `json:"vehicle_interest,omitempty"`
	Status          string    `json:"status"`
	Temperature     string    `json:"temperature"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
