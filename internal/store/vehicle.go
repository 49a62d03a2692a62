// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"autohub/internal/models"
)

// VehicleStore handles all vehicle database operations.
type VehicleStore struct {
	db *sql.DB
}

// NewVehicleStore creates a new VehicleStore.
func NewVehicleStore(db *sql.DB) *VehicleStore {
	return &VehicleStore{db: db}
}

// vehicleColumns lists the columns selected in vehicle queries.
const vehicleColumns = `id, dealership_id, make, model, version, year_manufacture,
	year_model, selling_price, purchase_price, fipe_price, mileage, color, fuel,
	transmission, engine, plate, plate_end, status, description, images, options, created_at`

// scanVehicle scans a vehicle row from the result set, decoding the
// JSONB image and option arrays.
func scanVehicle(scanner interface{ Scan(...any) error }) (*models.Vehicle, error) {
	var v models.Vehicle
	var images, options []byte
	err := scanner.Scan(
		&v.ID, &v.DealershipID, &v.Make, &v.Model, &v.Version, &v.YearManufacture,
		&v.YearModel, &v.SellingPrice, &v.PurchasePrice, &v.FipePrice, &v.Mileage,
		&v.Color, &v.Fuel, &v.Transmission, &v.Engine, &v.Plate, &v.PlateEnd,
		&v.Status, &v.Description, &images, &options, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &v.Images); err != nil {
		return nil, fmt.Errorf("decode vehicle images: %w", err)
	}
	if err := json.Unmarshal(options, &v.Options); err != nil {
		return nil, fmt.Errorf("decode vehicle options: %w", err)
	}
	return &v, nil
}

// List returns vehicles for a dealership, newest first. Status filters to
// one lifecycle state when non-empty; search matches make, model and
// version case-insensitively.
func (s *VehicleStore) List(dealershipID uuid.UUID, status, search string) ([]models.Vehicle, error) {
	rows, err := s.db.Query(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE dealership_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR make ILIKE '%' || $3 || '%' OR model ILIKE '%' || $3 || '%' OR version ILIKE '%' || $3 || '%')
		ORDER BY created_at DESC
	`, dealershipID, status, search)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var items []models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		items = append(items, *v)
	}
	return items, rows.Err()
}

// FindByID retrieves a vehicle by its UUID. Returns nil if not found.
func (s *VehicleStore) FindByID(id uuid.UUID) (*models.Vehicle, error) {
	row := s.db.QueryRow(`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	v, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find vehicle by id: %w", err)
	}
	return v, nil
}

// Create inserts a new vehicle and returns it with the generated ID.
func (s *VehicleStore) Create(v *models.Vehicle) (*models.Vehicle, error) {
	images, err := json.Marshal(emptyIfNil(v.Images))
	if err != nil {
		return nil, fmt.Errorf("encode vehicle images: %w", err)
	}
	options, err := json.Marshal(emptyIfNil(v.Options))
	if err != nil {
		return nil, fmt.Errorf("encode vehicle options: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO vehicles (dealership_id, make, model, version, year_manufacture,
			year_model, selling_price, purchase_price, fipe_price, mileage, color,
			fuel, transmission, engine, plate, plate_end, status, description, images, options)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING `+vehicleColumns,
		v.DealershipID, v.Make, v.Model, v.Version, v.YearManufacture,
		v.YearModel, v.SellingPrice, v.PurchasePrice, v.FipePrice, v.Mileage, v.Color,
		v.Fuel, v.Transmission, v.Engine, v.Plate, v.PlateEnd, v.Status, v.Description,
		images, options,
	)
	created, err := scanVehicle(row)
	if err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return created, nil
}

// Update rewrites all mutable vehicle fields.
func (s *VehicleStore) Update(v *models.Vehicle) error {
	images, err := json.Marshal(emptyIfNil(v.Images))
	if err != nil {
		return fmt.Errorf("encode vehicle images: %w", err)
	}
	options, err := json.Marshal(emptyIfNil(v.Options))
	if err != nil {
		return fmt.Errorf("encode vehicle options: %w", err)
	}

	result, err := s.db.Exec(`
		UPDATE vehicles SET make = $1, model = $2, version = $3, year_manufacture = $4,
			year_model = $5, selling_price = $6, purchase_price = $7, fipe_price = $8,
			mileage = $9, color = $10, fuel = $11, transmission = $12, engine = $13,
			plate = $14, plate_end = $15, status = $16, description = $17,
			images = $18, options = $19
		WHERE id = $20
	`, v.Make, v.Model, v.Version, v.YearManufacture, v.YearModel, v.SellingPrice,
		v.PurchasePrice, v.FipePrice, v.Mileage, v.Color, v.Fuel, v.Transmission,
		v.Engine, v.Plate, v.PlateEnd, v.Status, v.Description, images, options, v.ID)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("vehicle not found")
	}
	return nil
}

// UpdateStatus moves a vehicle to a new lifecycle state.
func (s *VehicleStore) UpdateStatus(id uuid.UUID, status string) error {
	result, err := s.db.Exec(`UPDATE vehicles SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("vehicle not found")
	}
	return nil
}

// Delete removes a vehicle.
func (s *VehicleStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("vehicle not found")
	}
	return nil
}

// CountByStatus returns the number of vehicles per lifecycle state.
func (s *VehicleStore) CountByStatus(dealershipID uuid.UUID) (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT status, COUNT(*) FROM vehicles WHERE dealership_id = $1 GROUP BY status
	`, dealershipID)
	if err != nil {
		return nil, fmt.Errorf("count vehicles by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan vehicle count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// emptyIfNil keeps JSONB columns as [] instead of null for nil slices.
func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
