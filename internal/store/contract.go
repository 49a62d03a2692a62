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

// ContractTemplateStore handles reusable contract template operations.
type ContractTemplateStore struct {
	db *sql.DB
}

// NewContractTemplateStore creates a new ContractTemplateStore.
func NewContractTemplateStore(db *sql.DB) *ContractTemplateStore {
	return &ContractTemplateStore{db: db}
}

const templateColumns = `id, title, content, type, created_at`

func scanContractTemplate(scanner interface{ Scan(...any) error }) (*models.ContractTemplate, error) {
	var t models.ContractTemplate
	err := scanner.Scan(&t.ID, &t.Title, &t.Content, &t.Type, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all templates ordered by creation date descending.
func (s *ContractTemplateStore) List() ([]models.ContractTemplate, error) {
	rows, err := s.db.Query(`SELECT ` + templateColumns + ` FROM contract_templates ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contract templates: %w", err)
	}
	defer rows.Close()

	var items []models.ContractTemplate
	for rows.Next() {
		t, err := scanContractTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract template: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a template by its UUID. Returns nil if not found.
func (s *ContractTemplateStore) FindByID(id uuid.UUID) (*models.ContractTemplate, error) {
	row := s.db.QueryRow(`SELECT `+templateColumns+` FROM contract_templates WHERE id = $1`, id)
	t, err := scanContractTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contract template by id: %w", err)
	}
	return t, nil
}

// Create inserts a template and returns it with the generated ID.
func (s *ContractTemplateStore) Create(t *models.ContractTemplate) (*models.ContractTemplate, error) {
	row := s.db.QueryRow(`
		INSERT INTO contract_templates (title, content, type)
		VALUES ($1, $2, $3)
		RETURNING `+templateColumns,
		t.Title, t.Content, t.Type,
	)
	created, err := scanContractTemplate(row)
	if err != nil {
		return nil, fmt.Errorf("create contract template: %w", err)
	}
	return created, nil
}

// Update modifies a template's title, content and type.
func (s *ContractTemplateStore) Update(id uuid.UUID, title, content, kind string) error {
	result, err := s.db.Exec(`
		UPDATE contract_templates SET title = $1, content = $2, type = $3 WHERE id = $4
	`, title, content, kind, id)
	if err != nil {
		return fmt.Errorf("update contract template: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("contract template not found")
	}
	return nil
}

// Delete removes a template.
func (s *ContractTemplateStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM contract_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract template: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("contract template not found")
	}
	return nil
}

// ContractStore handles generated contract documents.
type ContractStore struct {
	db *sql.DB
}

// NewContractStore creates a new ContractStore.
func NewContractStore(db *sql.DB) *ContractStore {
	return &ContractStore{db: db}
}

const contractColumns = `id, dealership_id, title, customer_name, content, status, created_at`

func scanContract(scanner interface{ Scan(...any) error }) (*models.Contract, error) {
	var c models.Contract
	err := scanner.Scan(&c.ID, &c.DealershipID, &c.Title, &c.CustomerName, &c.Content, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all contracts for a dealership, newest first.
func (s *ContractStore) List(dealershipID uuid.UUID) ([]models.Contract, error) {
	rows, err := s.db.Query(`
		SELECT `+contractColumns+`
		FROM contracts
		WHERE dealership_id = $1
		ORDER BY created_at DESC
	`, dealershipID)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var items []models.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a contract by its UUID. Returns nil if not found.
func (s *ContractStore) FindByID(id uuid.UUID) (*models.Contract, error) {
	row := s.db.QueryRow(`SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id)
	c, err := scanContract(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contract by id: %w", err)
	}
	return c, nil
}

// Create inserts a generated contract and returns it with the generated ID.
func (s *ContractStore) Create(c *models.Contract) (*models.Contract, error) {
	if c.Status == "" {
		c.Status = models.ContractActive
	}

	row := s.db.QueryRow(`
		INSERT INTO contracts (dealership_id, title, customer_name, content, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+contractColumns,
		c.DealershipID, c.Title, c.CustomerName, c.Content, c.Status,
	)
	created, err := scanContract(row)
	if err != nil {
		return nil, fmt.Errorf("create contract: %w", err)
	}
	return created, nil
}

// Delete removes a contract.
func (s *ContractStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("contract not found")
	}
	return nil
}
