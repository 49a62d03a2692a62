// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"autohub/internal/models"
)

// SaleStore records completed sales.
type SaleStore struct {
	db *sql.DB
}

// NewSaleStore creates a new SaleStore.
func NewSaleStore(db *sql.DB) *SaleStore {
	return &SaleStore{db: db}
}

const saleColumns = `id, dealership_id, vehicle_id, lead_id, sale_price, created_at`

func scanSale(scanner interface{ Scan(...any) error }) (*models.Sale, error) {
	var s models.Sale
	err := scanner.Scan(&s.ID, &s.DealershipID, &s.VehicleID, &s.LeadID, &s.SalePrice, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all sales for a dealership, newest first.
func (s *SaleStore) List(dealershipID uuid.UUID) ([]models.Sale, error) {
	rows, err := s.db.Query(`
		SELECT `+saleColumns+`
		FROM sales
		WHERE dealership_id = $1
		ORDER BY created_at DESC
	`, dealershipID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var items []models.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		items = append(items, *sale)
	}
	return items, rows.Err()
}

// Record books a sale atomically: the sale row is inserted, the vehicle
// is marked sold, the lead is moved to won, and the sale price lands in
// the finance ledger as income. All four writes share one transaction.
func (s *SaleStore) Record(sale *models.Sale, description string) (*models.Sale, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		INSERT INTO sales (dealership_id, vehicle_id, lead_id, sale_price)
		VALUES ($1, $2, $3, $4)
		RETURNING `+saleColumns,
		sale.DealershipID, sale.VehicleID, sale.LeadID, sale.SalePrice,
	)
	created, err := scanSale(row)
	if err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}

	result, err := tx.Exec(`UPDATE vehicles SET status = $1 WHERE id = $2`, models.VehicleSold, sale.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("mark vehicle sold: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, fmt.Errorf("vehicle not found")
	}

	result, err = tx.Exec(`UPDATE leads SET status = $1 WHERE id = $2`, models.LeadWon, sale.LeadID)
	if err != nil {
		return nil, fmt.Errorf("mark lead won: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, fmt.Errorf("lead not found")
	}

	_, err = tx.Exec(`
		INSERT INTO financial_transactions (dealership_id, description, amount, type, category, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, sale.DealershipID, description, sale.SalePrice, models.TransactionIncome,
		"venda", time.Now(), models.TransactionCompleted)
	if err != nil {
		return nil, fmt.Errorf("book sale income: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sale: %w", err)
	}
	return created, nil
}
