// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"autohub/internal/cache"
	"autohub/internal/models"
	"autohub/internal/store"
	"autohub/internal/theme"
)

// Public serves the customer-facing dealership site rendered by the
// theme package. It checks the Valkey page cache before rendering and
// stores results on miss. pageCache may be nil when Valkey is not
// configured; every request then renders fresh.
type Public struct {
	siteConfigs *store.SiteConfigStore
	vehicles    *store.VehicleStore
	dealerships *store.DealershipStore
	pageCache   *cache.PageCache
}

// NewPublic creates the public handler group.
func NewPublic(siteConfigs *store.SiteConfigStore, vehicles *store.VehicleStore, dealerships *store.DealershipStore, pageCache *cache.PageCache) *Public {
	return &Public{
		siteConfigs: siteConfigs,
		vehicles:    vehicles,
		dealerships: dealerships,
		pageCache:   pageCache,
	}
}

// Home renders the landing page.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, theme.PageHome)
}

// Inventory renders the vehicle listing page.
func (p *Public) Inventory(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, theme.PageInventory)
}

// About renders the about page.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, theme.PageAbout)
}

func (p *Public) page(w http.ResponseWriter, r *http.Request, page string) {
	ctx := r.Context()

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, cache.PageKey(page)); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	// An unconfigured site still renders, with the default design.
	cfg, err := p.siteConfigs.Load(ctx)
	if err != nil {
		slog.Error("load site config failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if cfg == nil {
		def := models.DefaultSiteConfig()
		cfg = &def
	}

	vehicles := p.availableVehicles(cfg)

	rendered, err := theme.Render(*cfg, vehicles, page)
	if err != nil {
		slog.Error("render page failed", "error", err, "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, cache.PageKey(page), rendered)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(rendered)
}

// availableVehicles returns the sellable inventory for the site. An
// empty or unreachable inventory falls back to the showcase vehicles so
// a fresh install still renders a populated showroom.
func (p *Public) availableVehicles(cfg *models.SiteConfig) []models.Vehicle {
	dealershipID := cfg.DealershipID
	if dealershipID == uuid.Nil {
		d, err := p.dealerships.Default()
		if err != nil || d == nil {
			return theme.MockVehicles()
		}
		dealershipID = d.ID
	}

	vehicles, err := p.vehicles.List(dealershipID, models.VehicleAvailable, "")
	if err != nil {
		slog.Warn("list vehicles for public site failed", "error", err)
		return theme.MockVehicles()
	}
	if len(vehicles) == 0 {
		return theme.MockVehicles()
	}
	return vehicles
}
