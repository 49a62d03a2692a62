// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"autohub/internal/models"
)

// SalesList returns all recorded sales, newest first.
func (a *API) SalesList(w http.ResponseWriter, r *http.Request) {
	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	items, err := a.sales.List(d.ID)
	if err != nil {
		slog.Error("list sales failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if items == nil {
		items = []models.Sale{}
	}
	writeJSON(w, http.StatusOK, items)
}

// SalesRecord closes a deal: inserts the sale, marks the vehicle sold,
// moves the lead to won and books the income, all in one transaction.
func (a *API) SalesRecord(w http.ResponseWriter, r *http.Request) {
	var body struct {
		VehicleID uuid.UUID       `json:"vehicle_id"`
		LeadID    uuid.UUID       `json:"lead_id"`
		SalePrice decimal.Decimal `json:"sale_price"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.VehicleID == uuid.Nil || body.LeadID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "vehicle_id and lead_id are required")
		return
	}
	if body.SalePrice.Sign() <= 0 {
		writeError(w, http.StatusBadRequest, "sale_price must be positive")
		return
	}

	vehicle, err := a.vehicles.FindByID(body.VehicleID)
	if err != nil {
		slog.Error("find vehicle failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if vehicle == nil {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	if vehicle.Status == models.VehicleSold {
		writeError(w, http.StatusConflict, "vehicle already sold")
		return
	}

	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	sale := &models.Sale{
		DealershipID: d.ID,
		VehicleID:    body.VehicleID,
		LeadID:       body.LeadID,
		SalePrice:    body.SalePrice,
	}
	description := fmt.Sprintf("Venda %s", strings.TrimSpace(vehicle.Make+" "+vehicle.Model))

	created, err := a.sales.Record(sale, description)
	if err != nil {
		slog.Error("record sale failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
