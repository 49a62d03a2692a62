// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"autohub/internal/models"
)

// LeadsList returns all leads for the kanban board, newest first.
func (a *API) LeadsList(w http.ResponseWriter, r *http.Request) {
	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	items, err := a.leads.List(d.ID)
	if err != nil {
		slog.Error("list leads failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if items == nil {
		items = []models.Lead{}
	}
	writeJSON(w, http.StatusOK, items)
}

// LeadsCreate registers a new prospect.
func (a *API) LeadsCreate(w http.ResponseWriter, r *http.Request) {
	var l models.Lead
	if err := decodeJSON(w, r, &l); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateLead(&l); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	l.DealershipID = d.ID

	created, err := a.leads.Create(&l)
	if err != nil {
		slog.Error("create lead failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// LeadsUpdate rewrites a lead's contact details and qualification.
func (a *API) LeadsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var l models.Lead
	if err := decodeJSON(w, r, &l); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateLead(&l); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if l.Status != "" && !models.ValidLeadStatus(l.Status) {
		writeError(w, http.StatusBadRequest, "unknown lead status")
		return
	}

	existing, err := a.leads.FindByID(id)
	if err != nil {
		slog.Error("find lead failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}

	l.ID = id
	if l.Status == "" {
		l.Status = existing.Status
	}
	if l.Source == "" {
		l.Source = existing.Source
	}
	if l.Temperature == "" {
		l.Temperature = existing.Temperature
	}
	if err := a.leads.Update(&l); err != nil {
		slog.Error("update lead failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	updated, err := a.leads.FindByID(id)
	if err != nil || updated == nil {
		slog.Error("reload lead failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// LeadsUpdateStatus moves a lead between kanban columns.
func (a *API) LeadsUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidLeadStatus(body.Status) {
		writeError(w, http.StatusBadRequest, "unknown lead status")
		return
	}

	if err := a.leads.UpdateStatus(id, body.Status); err != nil {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": body.Status})
}

// LeadsDelete removes a lead.
func (a *API) LeadsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	if err := a.leads.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
