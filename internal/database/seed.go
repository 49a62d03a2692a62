package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: the default
// dealership, a handful of vehicles, a couple of leads, and the standard
// contract templates. Safe to call repeatedly — it only inserts when the
// dealerships table is empty.
func Seed(db *sql.DB) error {
	// Check if a dealership exists already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM dealerships").Scan(&count); err != nil {
		return fmt.Errorf("seed check dealerships: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	var dealershipID string
	err := db.QueryRow(`
		INSERT INTO dealerships (name) VALUES ($1) RETURNING id
	`, "Minha Loja").Scan(&dealershipID)
	if err != nil {
		return fmt.Errorf("seed insert dealership: %w", err)
	}

	vehicles := []struct {
		make, model, version   string
		yearMan, yearModel, km int
		price                  string
		color, fuel, trans     string
	}{
		{"Toyota", "Corolla", "XEi 2.0", 2022, 2023, 28000, "145900.00", "Prata", "Flex", "Automático"},
		{"Honda", "Civic", "Touring 1.5 Turbo", 2021, 2022, 41000, "159900.00", "Preto", "Gasolina", "CVT"},
		{"Jeep", "Compass", "Longitude T270", 2023, 2023, 12000, "172500.00", "Branco", "Flex", "Automático"},
		{"Volkswagen", "Polo", "Highline 1.0 TSI", 2022, 2022, 35000, "89900.00", "Cinza", "Flex", "Manual"},
	}
	for _, v := range vehicles {
		_, err := db.Exec(`
			INSERT INTO vehicles (dealership_id, make, model, version, year_manufacture,
				year_model, mileage, selling_price, color, fuel, transmission, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'available')
		`, dealershipID, v.make, v.model, v.version, v.yearMan, v.yearModel, v.km, v.price, v.color, v.fuel, v.trans)
		if err != nil {
			return fmt.Errorf("seed insert vehicle: %w", err)
		}
	}

	leads := []struct {
		name, phone, interest, temp string
	}{
		{"Carlos Souza", "(11) 98888-1234", "Toyota Corolla", "hot"},
		{"Ana Lima", "(11) 97777-4321", "Jeep Compass", "warm"},
	}
	for _, l := range leads {
		_, err := db.Exec(`
			INSERT INTO leads (dealership_id, name, phone, vehicle_interest, status, temperature, source)
			VALUES ($1, $2, $3, $4, 'new', $5, 'manual')
		`, dealershipID, l.name, l.phone, l.interest, l.temp)
		if err != nil {
			return fmt.Errorf("seed insert lead: %w", err)
		}
	}

	_, err = db.Exec(`
		INSERT INTO contract_templates (title, content, type) VALUES
		($1, $2, 'sale'),
		($3, $4, 'consignment')
	`,
		"Contrato de Compra e Venda",
		"# Contrato de Compra e Venda\n\nPelo presente instrumento, **{{nome}}** adquire o veículo descrito abaixo na data de {{data}}.\n\n## Condições\n\n1. O veículo é vendido no estado em que se encontra.\n2. A garantia legal é de 90 dias.\n",
		"Contrato de Consignação",
		"# Contrato de Consignação\n\n**{{nome}}** entrega o veículo em consignação nesta data, {{data}}, pelo prazo de 30 dias.\n",
	)
	if err != nil {
		return fmt.Errorf("seed insert contract templates: %w", err)
	}

	slog.Info("database seeded with demo dealership data", "dealership_id", dealershipID)

	return nil
}
