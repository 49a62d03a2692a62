// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"autohub/internal/markdown"
	"autohub/internal/models"
)

// ContractTemplatesList returns all reusable contract templates.
func (a *API) ContractTemplatesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.contractTemplates.List()
	if err != nil {
		slog.Error("list contract templates failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if items == nil {
		items = []models.ContractTemplate{}
	}
	writeJSON(w, http.StatusOK, items)
}

// ContractTemplatesCreate adds a Markdown template.
func (a *API) ContractTemplatesCreate(w http.ResponseWriter, r *http.Request) {
	var t models.ContractTemplate
	if err := decodeJSON(w, r, &t); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateContractTemplate(t.Title, t.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.contractTemplates.Create(&t)
	if err != nil {
		slog.Error("create contract template failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ContractTemplatesUpdate rewrites a template.
func (a *API) ContractTemplatesUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	var t models.ContractTemplate
	if err := decodeJSON(w, r, &t); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateContractTemplate(t.Title, t.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.contractTemplates.Update(id, t.Title, t.Content, t.Type); err != nil {
		writeError(w, http.StatusNotFound, "contract template not found")
		return
	}

	updated, err := a.contractTemplates.FindByID(id)
	if err != nil || updated == nil {
		slog.Error("reload contract template failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ContractTemplatesDelete removes a template.
func (a *API) ContractTemplatesDelete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	if err := a.contractTemplates.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "contract template not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ContractsList returns all generated contracts, newest first.
func (a *API) ContractsList(w http.ResponseWriter, r *http.Request) {
	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	items, err := a.contracts.List(d.ID)
	if err != nil {
		slog.Error("list contracts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if items == nil {
		items = []models.Contract{}
	}
	writeJSON(w, http.StatusOK, items)
}

// ContractsGenerate fills a template's placeholders for one customer and
// stores the resulting document.
func (a *API) ContractsGenerate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TemplateID   uuid.UUID `json:"template_id"`
		CustomerName string    `json:"customer_name"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(body.CustomerName) == "" {
		writeError(w, http.StatusBadRequest, "customer_name is required")
		return
	}

	tmpl, err := a.contractTemplates.FindByID(body.TemplateID)
	if err != nil {
		slog.Error("find contract template failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if tmpl == nil {
		writeError(w, http.StatusNotFound, "contract template not found")
		return
	}

	d, err := a.defaultDealership()
	if err != nil {
		slog.Error("resolve dealership failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	contract := &models.Contract{
		DealershipID: d.ID,
		Title:        tmpl.Title,
		CustomerName: strings.TrimSpace(body.CustomerName),
		Content:      fillPlaceholders(tmpl.Content, body.CustomerName, time.Now()),
	}

	created, err := a.contracts.Create(contract)
	if err != nil {
		slog.Error("create contract failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ContractsDelete removes a generated contract.
func (a *API) ContractsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contract id")
		return
	}

	if err := a.contracts.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "contract not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ContractsPrint renders a contract's Markdown content as a printable
// HTML page.
func (a *API) ContractsPrint(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contract id")
		return
	}

	contract, err := a.contracts.FindByID(id)
	if err != nil {
		slog.Error("find contract failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if contract == nil {
		writeError(w, http.StatusNotFound, "contract not found")
		return
	}

	rendered, err := markdown.ToHTML(contract.Content)
	if err != nil {
		slog.Error("render contract failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>` + html.EscapeString(contract.Title) + `</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-white text-slate-900" onload="window.print()">
<main class="prose max-w-3xl mx-auto py-12 px-6">
` + rendered + `
</main>
</body>
</html>`))
}

// fillPlaceholders resolves the {{nome}} and {{data}} template markers.
// Dates render in the Brazilian dd/mm/yyyy convention.
func fillPlaceholders(content, customerName string, at time.Time) string {
	content = strings.ReplaceAll(content, "{{nome}}", strings.TrimSpace(customerName))
	content = strings.ReplaceAll(content, "{{data}}", at.Format("02/01/2006"))
	return content
}
