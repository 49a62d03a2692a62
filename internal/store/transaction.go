// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"autohub/internal/models"
)

// TransactionStore handles the finance ledger.
type TransactionStore struct {
	db *sql.DB
}

// NewTransactionStore creates a new TransactionStore.
func NewTransactionStore(db *sql.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// transactionColumns lists the columns selected in ledger queries.
const transactionColumns = `id, dealership_id, description, amount, type, category, date, status, created_at`

// scanTransaction scans a ledger row from the result set.
func scanTransaction(scanner interface{ Scan(...any) error }) (*models.Transaction, error) {
	var t models.Transaction
	err := scanner.Scan(
		&t.ID, &t.DealershipID, &t.Description, &t.Amount, &t.Type,
		&t.Category, &t.Date, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByMonth returns a month of ledger entries, most recent date first.
func (s *TransactionStore) ListByMonth(dealershipID uuid.UUID, year, month int) ([]models.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT `+transactionColumns+`
		FROM financial_transactions
		WHERE dealership_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date DESC, created_at DESC
	`, dealershipID, year, month)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var items []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// Create inserts a ledger entry and returns it with the generated ID.
func (s *TransactionStore) Create(t *models.Transaction) (*models.Transaction, error) {
	if t.Status == "" {
		t.Status = models.TransactionCompleted
	}

	row := s.db.QueryRow(`
		INSERT INTO financial_transactions (dealership_id, description, amount, type, category, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+transactionColumns,
		t.DealershipID, t.Description, t.Amount, t.Type, t.Category, t.Date, t.Status,
	)
	created, err := scanTransaction(row)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return created, nil
}

// Delete removes a ledger entry.
func (s *TransactionStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM financial_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("transaction not found")
	}
	return nil
}

// Summary aggregates one month of the ledger into income, expense and
// balance. Amounts sum as exact decimals, never floats.
func (s *TransactionStore) Summary(dealershipID uuid.UUID, year, month int) (*models.FinanceSummary, error) {
	rows, err := s.db.Query(`
		SELECT type, COALESCE(SUM(amount), 0)
		FROM financial_transactions
		WHERE dealership_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		GROUP BY type
	`, dealershipID, year, month)
	if err != nil {
		return nil, fmt.Errorf("summarize transactions: %w", err)
	}
	defer rows.Close()

	summary := &models.FinanceSummary{}
	for rows.Next() {
		var kind string
		var total decimal.Decimal
		if err := rows.Scan(&kind, &total); err != nil {
			return nil, fmt.Errorf("scan transaction summary: %w", err)
		}
		switch kind {
		case models.TransactionIncome:
			summary.Income = total
		case models.TransactionExpense:
			summary.Expense = total
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	summary.Balance = summary.Income.Sub(summary.Expense)
	return summary, nil
}
