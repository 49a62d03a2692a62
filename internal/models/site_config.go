// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Template identifiers accepted by the theme renderer. The editor's rule
// engine only ever assigns luxury, modern, sport, minimal and bold, but
// the remaining identifiers are valid stored values and render with the
// default visual bundle.
const (
	TemplateModern  = "modern"
	TemplateClassic = "classic"
	TemplateMinimal = "minimal"
	TemplateBold    = "bold"
	TemplateLuxury  = "luxury"
	TemplateSport   = "sport"
	TemplateUrban   = "urban"
	TemplateEco     = "eco"
)

// Font families the site can render.
const (
	FontSans  = "sans"
	FontSerif = "serif"
	FontMono  = "mono"
)

// ChatMessage is one entry of the editor conversation, persisted as part
// of the site config's chat_history JSONB column.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"` // "user" or "ai"
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// Chat message roles.
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// StyleOverrides holds fine-grained style tweaks layered on top of the
// template bundle. Stored as JSONB; all fields optional.
type StyleOverrides struct {
	HeroTitleSize     string `json:"hero_title_size,omitempty"`
	HeroPadding       string `json:"hero_padding,omitempty"`
	SectionSpacing    string `json:"section_spacing,omitempty"`
	ButtonBorderWidth string `json:"button_border_width,omitempty"`
	CardShadow        string `json:"card_shadow,omitempty"`
}

// SiteConfig is the complete description of a dealership's public site:
// design tokens, content, section visibility, SEO strings, and the full
// editor chat transcript. One row per dealership.
type SiteConfig struct {
	ID           uuid.UUID `json:"id"`
	DealershipID uuid.UUID `json:"dealership_id"`

	// Design tokens
	TemplateID   string `json:"template_id"`
	PrimaryColor string `json:"primary_color"` // Tailwind background token, e.g. "bg-indigo-600"
	ButtonColor  string `json:"button_color"`
	FontFamily   string `json:"font_family"`
	BorderRadius string `json:"border_radius"`

	StyleOverrides StyleOverrides `json:"style_overrides"`
	ChatHistory    []ChatMessage  `json:"chat_history"`

	// Content
	HeroTitle       string `json:"hero_title"`
	HeroSubtitle    string `json:"hero_subtitle"`
	ContactPhone    string `json:"contact_phone"`
	ContactAddress  string `json:"contact_address"`
	SocialInstagram string `json:"social_instagram"`

	// Assets
	LogoURL   string `json:"logo_url,omitempty"`
	BannerURL string `json:"banner_url,omitempty"`

	// Visibility
	ShowHero      bool `json:"show_hero"`
	ShowFeatures  bool `json:"show_features"`
	ShowInventory bool `json:"show_inventory"`
	ShowAbout     bool `json:"show_about"`

	// SEO
	SEOTitle       string `json:"seo_title,omitempty"`
	SEODescription string `json:"seo_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSiteConfig returns the config a dealership starts from before
// anything has been saved.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		TemplateID:      TemplateModern,
		PrimaryColor:    "bg-indigo-600",
		ButtonColor:     "bg-indigo-600",
		FontFamily:      FontSans,
		BorderRadius:    "rounded-xl",
		HeroTitle:       "AutoPremium Motors",
		HeroSubtitle:    "Os melhores veículos da região estão aqui.",
		ContactPhone:    "(11) 99999-9999",
		ContactAddress:  "Av. Principal, 1000",
		SocialInstagram: "@autopremium",
		ShowHero:        true,
		ShowFeatures:    true,
		ShowInventory:   true,
		ShowAbout:       true,
	}
}
