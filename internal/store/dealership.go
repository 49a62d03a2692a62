// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all AutoHub
// entities using raw SQL via database/sql.
package store

import (
	"database/sql"
	"fmt"

	"autohub/internal/models"
)

// DealershipStore handles dealership database operations.
type DealershipStore struct {
	db *sql.DB
}

// NewDealershipStore creates a new DealershipStore.
func NewDealershipStore(db *sql.DB) *DealershipStore {
	return &DealershipStore{db: db}
}

// Default returns the first dealership, or nil if none exists yet.
// The application runs single-tenant, so "first" is "the" dealership.
func (s *DealershipStore) Default() (*models.Dealership, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at FROM dealerships ORDER BY created_at LIMIT 1
	`)
	var d models.Dealership
	err := row.Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find default dealership: %w", err)
	}
	return &d, nil
}

// Create inserts a dealership and returns it with the generated ID.
func (s *DealershipStore) Create(name string) (*models.Dealership, error) {
	var d models.Dealership
	err := s.db.QueryRow(`
		INSERT INTO dealerships (name) VALUES ($1)
		RETURNING id, name, created_at
	`, name).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create dealership: %w", err)
	}
	return &d, nil
}
