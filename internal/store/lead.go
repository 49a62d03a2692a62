// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"autohub/internal/models"
)

// LeadStore handles all lead database operations.
type LeadStore struct {
	db *sql.DB
}

// NewLeadStore creates a new LeadStore.
func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{db: db}
}

// leadColumns lists the columns selected in lead queries.
const leadColumns = `id, dealership_id, name, phone, email, source,
	vehicle_interest, status, temperature, notes, created_at`

// scanLead scans a lead row from the result set.
func scanLead(scanner interface{ Scan(...any) error }) (*models.Lead, error) {
	var l models.Lead
	err := scanner.Scan(
		&l.ID, &l.DealershipID, &l.Name, &l.Phone, &l.Email, &l.Source,
		&l.VehicleInterest, &l.Status, &l.Temperature, &l.Notes, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns all leads for a dealership, newest first.
func (s *LeadStore) List(dealershipID uuid.UUID) ([]models.Lead, error) {
	rows, err := s.db.Query(`
		SELECT `+leadColumns+`
		FROM leads
		WHERE dealership_id = $1
		ORDER BY created_at DESC
	`, dealershipID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var items []models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

// FindByID retrieves a lead by its UUID. Returns nil if not found.
func (s *LeadStore) FindByID(id uuid.UUID) (*models.Lead, error) {
	row := s.db.QueryRow(`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	l, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lead by id: %w", err)
	}
	return l, nil
}

// Create inserts a new lead and returns it with the generated ID. New
// leads default to the first pipeline stage and manual source.
func (s *LeadStore) Create(l *models.Lead) (*models.Lead, error) {
	if l.Status == "" {
		l.Status = models.LeadNew
	}
	if l.Source == "" {
		l.Source = "manual"
	}
	if l.Temperature == "" {
		l.Temperature = models.TempWarm
	}

	row := s.db.QueryRow(`
		INSERT INTO leads (dealership_id, name, phone, email, source, vehicle_interest, status, temperature, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+leadColumns,
		l.DealershipID, l.Name, l.Phone, l.Email, l.Source, l.VehicleInterest,
		l.Status, l.Temperature, l.Notes,
	)
	created, err := scanLead(row)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return created, nil
}

// Update rewrites a lead's contact details and qualification.
func (s *LeadStore) Update(l *models.Lead) error {
	result, err := s.db.Exec(`
		UPDATE leads SET name = $1, phone = $2, email = $3, source = $4,
			vehicle_interest = $5, status = $6, temperature = $7, notes = $8
		WHERE id = $9
	`, l.Name, l.Phone, l.Email, l.Source, l.VehicleInterest, l.Status, l.Temperature, l.Notes, l.ID)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("lead not found")
	}
	return nil
}

// UpdateStatus moves a lead to a new pipeline stage (the kanban drag).
func (s *LeadStore) UpdateStatus(id uuid.UUID, status string) error {
	result, err := s.db.Exec(`UPDATE leads SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("lead not found")
	}
	return nil
}

// Delete removes a lead.
func (s *LeadStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("lead not found")
	}
	return nil
}

// CountByStatus returns the number of leads per pipeline stage.
func (s *LeadStore) CountByStatus(dealershipID uuid.UUID) (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT status, COUNT(*) FROM leads WHERE dealership_id = $1 GROUP BY status
	`, dealershipID)
	if err != nil {
		return nil, fmt.Errorf("count leads by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan lead count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
