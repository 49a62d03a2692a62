// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"autohub/internal/models"
)

func TestSalesRecordClosesDeal(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/vehicles", strings.NewReader(`{
		"make": "Fiat", "model": "Pulse", "selling_price": "98000"
	}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed vehicle: status %d", rec.Code)
	}
	var vehicle models.Vehicle
	json.Unmarshal(rec.Body.Bytes(), &vehicle)

	rec = env.do(t, http.MethodPost, "/api/leads", strings.NewReader(`{"name": "Bia", "phone": "(11) 91111-2222"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed lead: status %d", rec.Code)
	}
	var lead models.Lead
	json.Unmarshal(rec.Body.Bytes(), &lead)

	rec = env.do(t, http.MethodPost, "/api/sales", strings.NewReader(`{
		"vehicle_id": "`+vehicle.ID.String()+`",
		"lead_id": "`+lead.ID.String()+`",
		"sale_price": "95000"
	}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("record sale: status %d, body %s", rec.Code, rec.Body.String())
	}
	var sale models.Sale
	if err := json.Unmarshal(rec.Body.Bytes(), &sale); err != nil {
		t.Fatalf("decode sale: %v", err)
	}
	if !sale.SalePrice.Equal(decimal.RequireFromString("95000")) {
		t.Errorf("sale price = %s, want 95000", sale.SalePrice)
	}

	// Vehicle is sold, lead is won, income is booked.
	rec = env.do(t, http.MethodGet, "/api/vehicles/"+vehicle.ID.String(), nil)
	var soldVehicle models.Vehicle
	json.Unmarshal(rec.Body.Bytes(), &soldVehicle)
	if soldVehicle.Status != models.VehicleSold {
		t.Errorf("vehicle status = %q, want sold", soldVehicle.Status)
	}

	rec = env.do(t, http.MethodGet, "/api/leads", nil)
	var leads []models.Lead
	json.Unmarshal(rec.Body.Bytes(), &leads)
	if len(leads) != 1 || leads[0].Status != models.LeadWon {
		t.Errorf("lead should be won after the sale")
	}

	rec = env.do(t, http.MethodGet, "/api/transactions", nil)
	var resp struct {
		Summary models.FinanceSummary `json:"summary"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.Summary.Income.Equal(decimal.RequireFromString("95000")) {
		t.Errorf("month income = %s, want 95000 from the sale", resp.Summary.Income)
	}

	// Selling the same vehicle again is rejected.
	rec = env.do(t, http.MethodPost, "/api/sales", strings.NewReader(`{
		"vehicle_id": "`+vehicle.ID.String()+`",
		"lead_id": "`+lead.ID.String()+`",
		"sale_price": "95000"
	}`))
	if rec.Code != http.StatusConflict {
		t.Errorf("resell: status %d, want 409", rec.Code)
	}
}

func TestSalesRecordValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/sales", strings.NewReader(`{"sale_price": "100"}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing ids: status %d, want 400", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/api/sales", strings.NewReader(`{
		"vehicle_id": "00000000-0000-0000-0000-000000000001",
		"lead_id": "00000000-0000-0000-0000-000000000002",
		"sale_price": "-5"
	}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative price: status %d, want 400", rec.Code)
	}
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/vehicles", strings.NewReader(`{"make": "VW", "model": "Polo"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed vehicle: status %d", rec.Code)
	}
	rec = env.do(t, http.MethodPost, "/api/leads", strings.NewReader(`{"name": "Leo", "phone": "(11) 95555-4444"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed lead: status %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: status %d", rec.Code)
	}

	var stats struct {
		Vehicles map[string]int `json:"vehicles"`
		Leads    map[string]int `json:"leads"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Vehicles[models.VehicleAvailable] != 1 {
		t.Errorf("available vehicles = %d, want 1", stats.Vehicles[models.VehicleAvailable])
	}
	if stats.Leads[models.LeadNew] != 1 {
		t.Errorf("new leads = %d, want 1", stats.Leads[models.LeadNew])
	}
}
