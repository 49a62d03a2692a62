// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction kinds and states.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"

	TransactionPending   = "pending"
	TransactionCompleted = "completed"
)

// Transaction is one entry of the dealership's finance ledger.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	DealershipID uuid.UUID       `json:"dealership_id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	Date         time.Time       `json:"date"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FinanceSummary aggregates a month of ledger entries.
type FinanceSummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}
