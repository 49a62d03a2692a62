// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"autohub/internal/models"
)

func TestLeadsPipeline(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/leads", strings.NewReader(`{
		"name": "Carlos Silva", "phone": "(11) 98888-7777",
		"vehicle_interest": "Corolla 2022"
	}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", rec.Code, rec.Body.String())
	}
	var lead models.Lead
	if err := json.Unmarshal(rec.Body.Bytes(), &lead); err != nil {
		t.Fatalf("decode lead: %v", err)
	}
	if lead.Status != models.LeadNew {
		t.Errorf("new lead status = %q, want new", lead.Status)
	}
	if lead.Temperature != models.TempWarm {
		t.Errorf("new lead temperature = %q, want warm", lead.Temperature)
	}

	// Kanban drag: new -> negotiation.
	rec = env.do(t, http.MethodPatch, "/api/leads/"+lead.ID.String()+"/status",
		strings.NewReader(`{"status": "negotiation"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status: status %d, body %s", rec.Code, rec.Body.String())
	}

	// Unknown stage is rejected.
	rec = env.do(t, http.MethodPatch, "/api/leads/"+lead.ID.String()+"/status",
		strings.NewReader(`{"status": "teleported"}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad status: status %d, want 400", rec.Code)
	}

	// Update contact details; unset enums keep their stored values.
	rec = env.do(t, http.MethodPut, "/api/leads/"+lead.ID.String(), strings.NewReader(`{
		"name": "Carlos Silva", "phone": "(11) 90000-0000", "temperature": "hot"
	}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", rec.Code, rec.Body.String())
	}
	var updated models.Lead
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated lead: %v", err)
	}
	if updated.Status != models.LeadNegotiation {
		t.Errorf("status after update = %q, want negotiation preserved", updated.Status)
	}
	if updated.Temperature != models.TempHot {
		t.Errorf("temperature = %q, want hot", updated.Temperature)
	}

	rec = env.do(t, http.MethodDelete, "/api/leads/"+lead.ID.String(), nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", rec.Code)
	}
}

func TestLeadsCreateRequiresName(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/leads", strings.NewReader(`{"phone": "(11) 1234"}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}
