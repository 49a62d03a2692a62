// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"autohub/internal/models"
)

// Pages the public site serves. Each renders through the same template
// with a different active section.
const (
	PageHome      = "home"
	PageInventory = "estoque"
	PageAbout     = "sobre"
)

// VehicleCard is one inventory entry as the template consumes it, with
// prices and mileage pre-formatted.
type VehicleCard struct {
	Name     string
	Year     string
	Price    string
	Mileage  string
	Fuel     string
	Image    string
	Featured bool
}

// View is everything the site template can reference. Built from a
// SiteConfig by buildView; the class strings bake in the per-template
// visual bundle so the template itself stays free of logic.
type View struct {
	Page      string
	Title     string
	SEOTitle  string
	MetaDesc  string
	HeroTitle string
	Subtitle  string

	ShowHero      bool
	ShowFeatures  bool
	ShowInventory bool
	ShowAbout     bool

	Features     []string
	FeatureClass string

	ContactPhone    string
	ContactAddress  string
	SocialInstagram string
	LogoURL         string
	BannerURL       string
	LogoInitials    string

	PrimaryColor string
	BorderRadius string

	BodyClass   string
	HeaderClass string
	HeroClass   string
	AccentClass string
	ButtonClass string
	CardClass   string
	FooterClass string
	SkewFix     string

	Vehicles []VehicleCard
	Year     int
}

// buildView derives the complete view from a config. All visual
// decisions happen here: template bundles, the safe text color, fonts
// and radii.
func buildView(cfg models.SiteConfig, vehicles []models.Vehicle, page string) View {
	isLuxury := cfg.TemplateID == models.TemplateLuxury
	isSport := cfg.TemplateID == models.TemplateSport
	isMinimal := cfg.TemplateID == models.TemplateMinimal
	isBold := cfg.TemplateID == models.TemplateBold

	font := "font-sans"
	switch cfg.FontFamily {
	case models.FontSerif:
		font = "font-serif"
	case models.FontMono:
		font = "font-mono"
	}

	body := []string{"min-h-screen flex flex-col", font}
	header := []string{"sticky top-0 z-30 border-b backdrop-blur-md"}
	footer := []string{"mt-auto border-t py-10 text-sm"}
	if isLuxury {
		body = append(body, "bg-slate-950 text-slate-100")
		header = append(header, "bg-slate-950/90 border-slate-800")
		footer = append(footer, "border-slate-800 text-slate-400")
	} else {
		body = append(body, "bg-white text-slate-900")
		header = append(header, "bg-white/90 border-slate-100")
		footer = append(footer, "border-slate-100 text-slate-500")
	}

	button := []string{"px-6 py-3 font-bold text-white shadow-lg inline-flex items-center justify-center gap-2", cfg.ButtonColor, cfg.BorderRadius}
	skewFix := ""
	switch {
	case isSport:
		button = append(button, "-skew-x-12 uppercase tracking-wider")
		skewFix = "skew-x-12 inline-block"
	case isMinimal:
		button = []string{"px-6 py-3 font-bold border border-current bg-transparent shadow-none", cfg.BorderRadius}
	case isBold:
		button = append(button, "text-lg uppercase")
	}

	card := []string{"overflow-hidden border shadow-sm", cfg.BorderRadius}
	if isLuxury {
		card = append(card, "bg-slate-900 border-slate-800")
	} else {
		card = append(card, "bg-white border-slate-100")
	}

	hero := []string{"py-20 px-6 text-center"}
	if cfg.StyleOverrides.HeroPadding != "" {
		hero = []string{cfg.StyleOverrides.HeroPadding, "px-6 text-center"}
	}

	feature := []string{"p-4 rounded-xl flex flex-col items-center text-center gap-2 border"}
	if isLuxury {
		feature = append(feature, "bg-slate-900 border-slate-800")
	} else {
		feature = append(feature, "bg-slate-50 border-slate-100")
	}

	initials := "AP"
	if title := strings.TrimSpace(cfg.HeroTitle); title != "" {
		runes := []rune(title)
		if len(runes) > 2 {
			runes = runes[:2]
		}
		initials = strings.ToUpper(string(runes))
	}

	title := cfg.SEOTitle
	if title == "" {
		title = cfg.HeroTitle
	}

	cards := make([]VehicleCard, 0, len(vehicles))
	for _, v := range vehicles {
		name := strings.TrimSpace(v.Make + " " + v.Model)
		year := ""
		if v.YearModel > 0 {
			year = fmt.Sprintf("%d/%d", v.YearManufacture, v.YearModel)
		}
		image := ""
		if len(v.Images) > 0 {
			image = v.Images[0]
		}
		cards = append(cards, VehicleCard{
			Name:    name,
			Year:    year,
			Price:   FormatBRL(v.SellingPrice),
			Mileage: FormatKM(v.Mileage),
			Fuel:    v.Fuel,
			Image:   image,
		})
	}

	return View{
		Page:      page,
		Title:     title,
		SEOTitle:  cfg.SEOTitle,
		MetaDesc:  cfg.SEODescription,
		HeroTitle: cfg.HeroTitle,
		Subtitle:  cfg.HeroSubtitle,

		ShowHero:      cfg.ShowHero,
		ShowFeatures:  cfg.ShowFeatures,
		ShowInventory: cfg.ShowInventory,
		ShowAbout:     cfg.ShowAbout,

		Features:     []string{"Qualidade", "Garantia", "Procedência"},
		FeatureClass: strings.Join(feature, " "),

		ContactPhone:    cfg.ContactPhone,
		ContactAddress:  cfg.ContactAddress,
		SocialInstagram: cfg.SocialInstagram,
		LogoURL:         cfg.LogoURL,
		BannerURL:       cfg.BannerURL,
		LogoInitials:    initials,

		PrimaryColor: cfg.PrimaryColor,
		BorderRadius: cfg.BorderRadius,

		BodyClass:   strings.Join(body, " "),
		HeaderClass: strings.Join(header, " "),
		HeroClass:   strings.Join(hero, " "),
		AccentClass: SafeTextColor(cfg.PrimaryColor),
		ButtonClass: strings.Join(button, " "),
		CardClass:   strings.Join(card, " "),
		FooterClass: strings.Join(footer, " "),
		SkewFix:     skewFix,

		Vehicles: cards,
		Year:     time.Now().Year(),
	}
}

// siteTemplate is compiled once at startup. The markup leans on the
// Tailwind CDN so the generated classes need no build step.
var siteTemplate = template.Must(template.New("site").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .MetaDesc}}<meta name="description" content="{{.MetaDesc}}">{{end}}
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="{{.BodyClass}}">
<header class="{{.HeaderClass}}">
<div class="max-w-6xl mx-auto px-6 h-16 flex items-center justify-between">
<a href="/" class="flex items-center gap-2">
{{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.HeroTitle}}" class="h-8 w-auto">{{else}}<div class="w-8 h-8 flex items-center justify-center font-bold text-white {{.PrimaryColor}} {{.BorderRadius}}">{{.LogoInitials}}</div>{{end}}
<span class="text-lg font-bold tracking-tight">{{.HeroTitle}}</span>
</a>
<nav class="hidden md:flex gap-6 text-xs font-bold uppercase tracking-wider">
<a href="/" class="{{.AccentClass}} hover:opacity-70">Home</a>
{{if .ShowInventory}}<a href="/estoque" class="hover:opacity-70">Estoque</a>{{end}}
{{if .ShowAbout}}<a href="/sobre" class="hover:opacity-70">Sobre Nós</a>{{end}}
</nav>
<a href="tel:{{.ContactPhone}}" class="text-xs {{.ButtonClass}} py-2 px-4"><span class="{{.SkewFix}}">Fale Conosco</span></a>
</div>
</header>
{{if and .ShowHero (eq .Page "home")}}
<section id="hero" class="{{.HeroClass}}">
{{if .BannerURL}}<img src="{{.BannerURL}}" alt="" class="mx-auto mb-8 max-h-72 w-full max-w-4xl object-cover">{{end}}
<h1 class="text-4xl md:text-6xl font-bold tracking-tight">{{.HeroTitle}}</h1>
<p class="mt-4 text-lg opacity-80">{{.Subtitle}}</p>
{{if .ShowInventory}}<a href="/estoque" class="mt-8 {{.ButtonClass}}"><span class="{{.SkewFix}}">Ver Estoque</span></a>{{end}}
</section>
{{end}}
{{if and .ShowFeatures (eq .Page "home")}}
<section id="features" class="py-12 px-6">
<div class="max-w-6xl mx-auto grid md:grid-cols-3 gap-4">
{{range .Features}}
<div class="{{$.FeatureClass}}">
<div class="w-10 h-10 rounded-full flex items-center justify-center text-white shadow-md {{$.PrimaryColor}}">&#9733;</div>
<h3 class="font-bold text-sm">{{.}}</h3>
</div>
{{end}}
</div>
</section>
{{end}}
{{if and .ShowInventory (or (eq .Page "home") (eq .Page "estoque"))}}
<section id="inventory" class="py-16 px-6">
<div class="max-w-6xl mx-auto">
<h2 class="text-2xl font-bold mb-8"><span class="{{.AccentClass}}">Nosso</span> Estoque</h2>
<div class="grid md:grid-cols-3 gap-6">
{{range .Vehicles}}
<article class="{{$.CardClass}}">
{{if .Image}}<img src="{{.Image}}" alt="{{.Name}}" class="h-44 w-full object-cover">{{else}}<div class="h-44 bg-slate-200"></div>{{end}}
<div class="p-4">
<h3 class="font-bold">{{.Name}}</h3>
<p class="text-xs opacity-70">{{.Year}} · {{.Mileage}}{{if .Fuel}} · {{.Fuel}}{{end}}</p>
<p class="mt-2 text-lg font-bold {{$.AccentClass}}">{{.Price}}</p>
</div>
</article>
{{else}}
<p class="opacity-70">Nenhum veículo disponível no momento.</p>
{{end}}
</div>
</div>
</section>
{{end}}
{{if and .ShowAbout (or (eq .Page "home") (eq .Page "sobre"))}}
<section id="about" class="py-16 px-6">
<div class="max-w-3xl mx-auto text-center">
<h2 class="text-2xl font-bold mb-4"><span class="{{.AccentClass}}">Sobre</span> Nós</h2>
<p class="opacity-80">{{.Subtitle}}</p>
<p class="mt-6 text-sm opacity-70">{{.ContactAddress}}</p>
</div>
</section>
{{end}}
<footer class="{{.FooterClass}}">
<div class="max-w-6xl mx-auto px-6 flex flex-col md:flex-row items-center justify-between gap-4">
<span>&copy; {{.Year}} {{.HeroTitle}}</span>
<div class="flex gap-6">
<span>{{.ContactPhone}}</span>
<span>{{.ContactAddress}}</span>
<span>{{.SocialInstagram}}</span>
</div>
</div>
</footer>
</body>
</html>`))

// Render produces the complete HTML for one public page.
func Render(cfg models.SiteConfig, vehicles []models.Vehicle, page string) ([]byte, error) {
	view := buildView(cfg, vehicles, page)

	var buf bytes.Buffer
	if err := siteTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render site: %w", err)
	}
	return buf.Bytes(), nil
}
