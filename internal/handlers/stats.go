// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// Stats returns the dashboard aggregates: vehicles and leads per status
// plus the current month's finance totals.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	vehicleCounts, err := a.vehicles.CountByStatus(d.ID)
	if err != nil {
		slog.Error("count vehicles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	leadCounts, err := a.leads.CountByStatus(d.ID)
	if err != nil {
		slog.Error("count leads failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	now := time.Now()
	summary, err := a.transactions.Summary(d.ID, now.Year(), int(now.Month()))
	if err != nil {
		slog.Error("summarize transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"vehicles": vehicleCounts,
		"leads":    leadCounts,
		"finance":  summary,
	})
}
