// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package rules implements the design assistant's command interpreter.
// A chat instruction is matched against keyword rule tables and turned
// into a new site config plus a confirmation message in Portuguese.
// Apply is pure apart from the injected randomness and always returns a
// usable config, so the caller never needs an error path.
package rules

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"autohub/internal/models"
)

// DefaultResponse is returned when no rule matches the instruction.
const DefaultResponse = "Entendi! Apliquei as alterações."

// quotedText captures the first single- or double-quoted span.
var quotedText = regexp.MustCompile(`["']([^"']+)["']`)

// bundle is a complete visual identity applied in one shot.
type bundle struct {
	template string
	primary  string
	button   string
	font     string
	radius   string
	message  string
}

// presetRules map explicit theme requests to bundles. Evaluated in
// order, first match wins.
var presetRules = []struct {
	keywords []string
	bundle   bundle
}{
	{
		keywords: []string{"luxo", "premium", "sofisticado"},
		bundle: bundle{
			template: models.TemplateLuxury,
			primary:  "bg-amber-500",
			button:   "bg-amber-600",
			font:     models.FontSerif,
			radius:   "rounded-sm",
			message:  "Apliquei o tema Luxo (Elite). Tons escuros, dourado e fontes serifadas.",
		},
	},
	{
		keywords: []string{"moderno", "tech", "clean"},
		bundle: bundle{
			template: models.TemplateModern,
			primary:  "bg-indigo-600",
			button:   "bg-indigo-600",
			font:     models.FontSans,
			radius:   "rounded-2xl",
			message:  "Apliquei o tema Moderno. Visual limpo, arredondado e cores vibrantes.",
		},
	},
	{
		keywords: []string{"esportivo", "agressivo", "rápido"},
		bundle: bundle{
			template: models.TemplateSport,
			primary:  "bg-red-600",
			button:   "bg-red-600",
			font:     models.FontSans,
			radius:   "rounded-none",
			message:  "Tema Esportivo ativado! Ângulos retos e cores quentes.",
		},
	},
	{
		keywords: []string{"minimalista", "simples"},
		bundle: bundle{
			template: models.TemplateMinimal,
			primary:  "bg-slate-900",
			button:   "bg-slate-900",
			font:     models.FontSans,
			radius:   "rounded-lg",
			message:  "Tema Minimalista. Foco total no conteúdo, sem distrações.",
		},
	},
}

// surpriseKeywords trigger a random full redesign when no explicit
// preset matched.
var surpriseKeywords = []string{"novo design", "refazer", "criar site", "mudar tudo", "surpreenda"}

// surpriseBundles are the candidates for a random redesign. The current
// template is excluded so a surprise always looks different.
var surpriseBundles = []bundle{
	{models.TemplateLuxury, "bg-amber-500", "bg-amber-500", models.FontSerif, "rounded-sm", "Criei um design Luxuoso e exclusivo."},
	{models.TemplateModern, "bg-indigo-600", "bg-indigo-600", models.FontSans, "rounded-2xl", "Gerei um design Moderno e limpo."},
	{models.TemplateSport, "bg-red-600", "bg-red-600", models.FontSans, "rounded-none", "Apliquei um visual Esportivo."},
	{models.TemplateBold, "bg-slate-900", "bg-slate-900", models.FontSans, "rounded-xl", "Apliquei um tema Bold de alto impacto."},
}

// colorRules override the primary and button colors. Evaluated after
// presets so an instruction like "tema luxo azul" ends up blue.
var colorRules = []struct {
	keywords []string
	primary  string
	button   string
	message  string
}{
	{[]string{"azul"}, "bg-blue-600", "bg-blue-600", "Mudei a cor principal para Azul."},
	{[]string{"vermelho"}, "bg-red-600", "bg-red-600", "Mudei a cor principal para Vermelho."},
	{[]string{"verde"}, "bg-emerald-600", "bg-emerald-600", "Mudei a cor principal para Verde."},
	{[]string{"roxo", "violeta"}, "bg-violet-600", "bg-violet-600", "Mudei a cor principal para Violeta."},
	{[]string{"laranja", "amber", "dourado"}, "bg-amber-500", "bg-amber-600", "Mudei a cor principal para Dourado/Laranja."},
	{[]string{"preto", "escuro"}, "bg-slate-900", "bg-slate-900", "Mudei a cor principal para Preto/Escuro."},
	{[]string{"rosa", "pink"}, "bg-pink-600", "bg-pink-600", "Mudei a cor principal para Rosa."},
}

// shapeRules adjust the corner radius token.
var shapeRules = []struct {
	keywords []string
	radius   string
	message  string
}{
	{[]string{"arredondado", "redondo"}, "rounded-3xl", "Aumentei o arredondamento das bordas."},
	{[]string{"quadrado", "reto"}, "rounded-none", "Removi o arredondamento das bordas."},
}

// fontRules switch the font family.
var fontRules = []struct {
	keywords []string
	font     string
	message  string
}{
	{[]string{"serifa", "clássica"}, models.FontSerif, "Alterei a fonte para Serifa (Clássica)."},
	{[]string{"sans", "moderna"}, models.FontSans, "Alterei a fonte para Sans-Serif (Moderna)."},
}

// hideRules and showRules toggle section visibility. Within a group the
// first matching section wins.
var hideTriggers = []string{"esconder", "ocultar", "remover"}
var showTriggers = []string{"mostrar", "exibir", "adicionar"}

// Engine interprets chat instructions. The random source drives the
// surprise redesign and is injectable so tests can pin its choices.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns an Engine with the given random source. A nil source
// falls back to a time-seeded one.
func New(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Apply interprets one instruction against the current config and
// returns the updated config with a confirmation message. Rule groups
// run independently in a fixed order (preset, color, shape, font,
// title, visibility); every group that fires overwrites the message, so
// the last firing group names the change the user hears about. The
// config is copied — the caller's value is never mutated.
func (e *Engine) Apply(instruction string, current models.SiteConfig) (models.SiteConfig, string) {
	next := current
	lower := strings.ToLower(instruction)
	response := DefaultResponse

	// Theme presets, then the random redesign as a fallback branch.
	if b, msg, ok := e.matchPreset(lower, current.TemplateID); ok {
		next.TemplateID = b.template
		next.PrimaryColor = b.primary
		next.ButtonColor = b.button
		next.FontFamily = b.font
		next.BorderRadius = b.radius
		response = msg
	}

	// Colors win over preset bundle colors.
	for _, r := range colorRules {
		if containsAny(lower, r.keywords) {
			next.PrimaryColor = r.primary
			next.ButtonColor = r.button
			response = r.message
			break
		}
	}

	for _, r := range shapeRules {
		if containsAny(lower, r.keywords) {
			next.BorderRadius = r.radius
			response = r.message
			break
		}
	}

	for _, r := range fontRules {
		if containsAny(lower, r.keywords) {
			next.FontFamily = r.font
			response = r.message
			break
		}
	}

	// Title rewrite needs the raw instruction: the quoted text keeps
	// its original casing.
	if strings.Contains(lower, "título") || strings.Contains(lower, "nome") {
		if m := quotedText.FindStringSubmatch(instruction); m != nil {
			next.HeroTitle = m[1]
			response = fmt.Sprintf("Atualizei o título para %q.", m[1])
		}
	}

	if containsAny(lower, hideTriggers) {
		switch {
		case strings.Contains(lower, "banner") || strings.Contains(lower, "hero"):
			next.ShowHero = false
			response = "Ocultei o banner principal."
		case strings.Contains(lower, "estoque") || strings.Contains(lower, "veículos"):
			next.ShowInventory = false
			response = "Ocultei a seção de estoque."
		case strings.Contains(lower, "sobre"):
			next.ShowAbout = false
			response = "Ocultei a seção Sobre."
		}
	} else if containsAny(lower, showTriggers) {
		switch {
		case strings.Contains(lower, "banner") || strings.Contains(lower, "hero"):
			next.ShowHero = true
			response = "Exibi o banner principal."
		case strings.Contains(lower, "estoque") || strings.Contains(lower, "veículos"):
			next.ShowInventory = true
			response = "Exibi a seção de estoque."
		}
	}

	return next, response
}

// matchPreset resolves the preset group: explicit presets first, then
// the random redesign keywords.
func (e *Engine) matchPreset(lower, currentTemplate string) (bundle, string, bool) {
	for _, r := range presetRules {
		if containsAny(lower, r.keywords) {
			return r.bundle, r.bundle.message, true
		}
	}

	if containsAny(lower, surpriseKeywords) {
		candidates := make([]bundle, 0, len(surpriseBundles))
		for _, b := range surpriseBundles {
			if b.template != currentTemplate {
				candidates = append(candidates, b)
			}
		}
		if len(candidates) == 0 {
			candidates = surpriseBundles
		}
		e.mu.Lock()
		pick := candidates[e.rng.Intn(len(candidates))]
		e.mu.Unlock()
		return pick, pick.message, true
	}

	return bundle{}, "", false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
