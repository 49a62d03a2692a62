// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"autohub/internal/models"
)

// monthFromQuery reads ?year= and ?month=, defaulting to the current month.
func monthFromQuery(r *http.Request) (int, int, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if y := r.URL.Query().Get("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil || n < 2000 || n > 2200 {
			return 0, 0, false
		}
		year = n
	}
	if m := r.URL.Query().Get("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			return 0, 0, false
		}
		month = n
	}
	return year, month, true
}

// TransactionsList returns one month of the ledger plus its totals.
func (a *API) TransactionsList(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthFromQuery(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid year or month")
		return
	}

	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	items, err := a.transactions.ListByMonth(d.ID, year, month)
	if err != nil {
		slog.Error("list transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if items == nil {
		items = []models.Transaction{}
	}

	summary, err := a.transactions.Summary(d.ID, year, month)
	if err != nil {
		slog.Error("summarize transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": items,
		"summary":      summary,
		"year":         year,
		"month":        month,
	})
}

// TransactionsCreate books a manual ledger entry.
func (a *API) TransactionsCreate(w http.ResponseWriter, r *http.Request) {
	var t models.Transaction
	if err := decodeJSON(w, r, &t); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateTransaction(&t); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	t.DealershipID = d.ID
	if t.Date.IsZero() {
		t.Date = time.Now()
	}

	created, err := a.transactions.Create(&t)
	if err != nil {
		slog.Error("create transaction failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// TransactionsDelete removes a ledger entry.
func (a *API) TransactionsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := a.transactions.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
