// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"autohub/internal/models"
)

// SiteConfigStore persists the website editor's config, including the
// chat transcript. It takes a context on every method because the editor
// saves from background goroutines with their own deadlines.
//
// Writes are last-writer-wins: there is no concurrency token, so two
// interleaved saves resolve to whichever commits second. Acceptable for
// the single-editor sessions the dashboard produces.
type SiteConfigStore struct {
	db *sql.DB
}

// NewSiteConfigStore creates a new SiteConfigStore.
func NewSiteConfigStore(db *sql.DB) *SiteConfigStore {
	return &SiteConfigStore{db: db}
}

// siteConfigColumns lists the columns selected in site config queries.
const siteConfigColumns = `id, dealership_id, template_id, primary_color, button_color,
	font_family, border_radius, style_overrides, chat_history, hero_title, hero_subtitle,
	contact_phone, contact_address, social_instagram, logo_url, banner_url,
	show_hero, show_features, show_inventory, show_about, seo_title, seo_description,
	created_at, updated_at`

// scanSiteConfig scans a site config row, decoding the JSONB overrides
// and chat history.
func scanSiteConfig(scanner interface{ Scan(...any) error }) (*models.SiteConfig, error) {
	var c models.SiteConfig
	var overrides, history []byte
	err := scanner.Scan(
		&c.ID, &c.DealershipID, &c.TemplateID, &c.PrimaryColor, &c.ButtonColor,
		&c.FontFamily, &c.BorderRadius, &overrides, &history, &c.HeroTitle, &c.HeroSubtitle,
		&c.ContactPhone, &c.ContactAddress, &c.SocialInstagram, &c.LogoURL, &c.BannerURL,
		&c.ShowHero, &c.ShowFeatures, &c.ShowInventory, &c.ShowAbout, &c.SEOTitle, &c.SEODescription,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(overrides, &c.StyleOverrides); err != nil {
		return nil, fmt.Errorf("decode style overrides: %w", err)
	}
	if err := json.Unmarshal(history, &c.ChatHistory); err != nil {
		return nil, fmt.Errorf("decode chat history: %w", err)
	}
	return &c, nil
}

// Load returns the stored site config, or nil if nothing has been saved
// yet. The single-tenant setup means there is at most one row.
func (s *SiteConfigStore) Load(ctx context.Context) (*models.SiteConfig, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+siteConfigColumns+` FROM site_configs ORDER BY created_at LIMIT 1
	`)
	c, err := scanSiteConfig(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load site config: %w", err)
	}
	return c, nil
}

// Save persists the config. A config with a zero ID is inserted — the
// default dealership is resolved, or created when missing, so the first
// save of a fresh install needs no setup step. A config with an ID is
// updated in place.
func (s *SiteConfigStore) Save(ctx context.Context, cfg models.SiteConfig) (*models.SiteConfig, error) {
	overrides, err := json.Marshal(cfg.StyleOverrides)
	if err != nil {
		return nil, fmt.Errorf("encode style overrides: %w", err)
	}
	history := cfg.ChatHistory
	if history == nil {
		history = []models.ChatMessage{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("encode chat history: %w", err)
	}

	if cfg.ID == uuid.Nil {
		return s.insert(ctx, cfg, overrides, historyJSON)
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE site_configs SET template_id = $1, primary_color = $2, button_color = $3,
			font_family = $4, border_radius = $5, style_overrides = $6, chat_history = $7,
			hero_title = $8, hero_subtitle = $9, contact_phone = $10, contact_address = $11,
			social_instagram = $12, logo_url = $13, banner_url = $14, show_hero = $15,
			show_features = $16, show_inventory = $17, show_about = $18,
			seo_title = $19, seo_description = $20, updated_at = NOW()
		WHERE id = $21
		RETURNING `+siteConfigColumns,
		cfg.TemplateID, cfg.PrimaryColor, cfg.ButtonColor, cfg.FontFamily, cfg.BorderRadius,
		overrides, historyJSON, cfg.HeroTitle, cfg.HeroSubtitle, cfg.ContactPhone,
		cfg.ContactAddress, cfg.SocialInstagram, cfg.LogoURL, cfg.BannerURL, cfg.ShowHero,
		cfg.ShowFeatures, cfg.ShowInventory, cfg.ShowAbout, cfg.SEOTitle, cfg.SEODescription,
		cfg.ID,
	)
	saved, err := scanSiteConfig(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("site config not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update site config: %w", err)
	}
	return saved, nil
}

// insert creates the site config row, resolving the dealership first.
func (s *SiteConfigStore) insert(ctx context.Context, cfg models.SiteConfig, overrides, history []byte) (*models.SiteConfig, error) {
	dealershipID := cfg.DealershipID
	if dealershipID == uuid.Nil {
		err := s.db.QueryRowContext(ctx, `
			SELECT id FROM dealerships ORDER BY created_at LIMIT 1
		`).Scan(&dealershipID)
		if err == sql.ErrNoRows {
			err = s.db.QueryRowContext(ctx, `
				INSERT INTO dealerships (name) VALUES ($1) RETURNING id
			`, models.DefaultDealershipName).Scan(&dealershipID)
		}
		if err != nil {
			return nil, fmt.Errorf("resolve dealership: %w", err)
		}
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO site_configs (dealership_id, template_id, primary_color, button_color,
			font_family, border_radius, style_overrides, chat_history, hero_title,
			hero_subtitle, contact_phone, contact_address, social_instagram, logo_url,
			banner_url, show_hero, show_features, show_inventory, show_about,
			seo_title, seo_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING `+siteConfigColumns,
		dealershipID, cfg.TemplateID, cfg.PrimaryColor, cfg.ButtonColor, cfg.FontFamily,
		cfg.BorderRadius, overrides, history, cfg.HeroTitle, cfg.HeroSubtitle,
		cfg.ContactPhone, cfg.ContactAddress, cfg.SocialInstagram, cfg.LogoURL, cfg.BannerURL,
		cfg.ShowHero, cfg.ShowFeatures, cfg.ShowInventory, cfg.ShowAbout,
		cfg.SEOTitle, cfg.SEODescription,
	)
	saved, err := scanSiteConfig(row)
	if err != nil {
		return nil, fmt.Errorf("insert site config: %w", err)
	}
	return saved, nil
}
