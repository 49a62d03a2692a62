// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP layer: the JSON management API
// consumed by the dealership back office, and the public pages rendered
// by the theme package.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"autohub/internal/cache"
	"autohub/internal/chat"
	"autohub/internal/models"
	"autohub/internal/storage"
	"autohub/internal/store"
)

// maxJSONBody caps JSON request bodies (1 MB).
const maxJSONBody = 1 << 20

// API groups the JSON management endpoints and their dependencies.
// pageCache and storageClient may be nil when Valkey or S3 are not
// configured.
type API struct {
	dealerships       *store.DealershipStore
	vehicles          *store.VehicleStore
	leads             *store.LeadStore
	transactions      *store.TransactionStore
	contractTemplates *store.ContractTemplateStore
	contracts         *store.ContractStore
	sales             *store.SaleStore
	chat              *chat.Service
	pageCache         *cache.PageCache
	storageClient     *storage.Client
	siteBaseURL       string
}

// NewAPI creates the API handler group.
func NewAPI(
	dealerships *store.DealershipStore,
	vehicles *store.VehicleStore,
	leads *store.LeadStore,
	transactions *store.TransactionStore,
	contractTemplates *store.ContractTemplateStore,
	contracts *store.ContractStore,
	sales *store.SaleStore,
	chatSvc *chat.Service,
	pageCache *cache.PageCache,
	storageClient *storage.Client,
	siteBaseURL string,
) *API {
	return &API{
		dealerships:       dealerships,
		vehicles:          vehicles,
		leads:             leads,
		transactions:      transactions,
		contractTemplates: contractTemplates,
		contracts:         contracts,
		sales:             sales,
		chat:              chatSvc,
		pageCache:         pageCache,
		storageClient:     storageClient,
		siteBaseURL:       siteBaseURL,
	}
}

// defaultDealership resolves the single tenant, creating it on first use.
func (a *API) defaultDealership() (*models.Dealership, error) {
	d, err := a.dealerships.Default()
	if err != nil {
		return nil, err
	}
	if d == nil {
		return a.dealerships.Create(models.DefaultDealershipName)
	}
	return d, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errors.New("request body too large")
		}
		if err == io.EOF {
			return errors.New("empty request body")
		}
		return errors.New("invalid JSON")
	}
	return nil
}

// urlID parses the {id} URL parameter as a UUID.
func urlID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
