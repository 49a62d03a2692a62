package theme

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"autohub/internal/models"
)

func TestSafeTextColor(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"bg-indigo-600", "text-indigo-600"},
		{"bg-amber-500", "text-amber-500"},
		{"bg-pink-600", "text-pink-600"},
		{"bg-slate-900", "text-slate-900"},
		{"bg-nonexistent-123", "text-indigo-600"}, // fallback
		{"", "text-indigo-600"},                   // fallback
	}

	for _, tt := range tests {
		t.Run(tt.bg, func(t *testing.T) {
			if got := SafeTextColor(tt.bg); got != tt.want {
				t.Errorf("SafeTextColor(%q) = %q, want %q", tt.bg, got, tt.want)
			}
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"9.9", "R$ 9,90"},
		{"1234.56", "R$ 1.234,56"},
		{"145900", "R$ 145.900,00"},
		{"1000000", "R$ 1.000.000,00"},
		{"-250.25", "-R$ 250,25"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := FormatBRL(decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Errorf("FormatBRL(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatKM(t *testing.T) {
	if got := FormatKM(28000); got != "28.000 km" {
		t.Errorf("FormatKM(28000) = %q", got)
	}
	if got := FormatKM(950); got != "950 km" {
		t.Errorf("FormatKM(950) = %q", got)
	}
}

func TestRenderSectionVisibility(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.SiteConfig)
		page    string
		wantIDs []string
		omitIDs []string
	}{
		{
			name:    "all sections on home",
			mutate:  func(c *models.SiteConfig) {},
			page:    PageHome,
			wantIDs: []string{`id="hero"`, `id="features"`, `id="inventory"`, `id="about"`},
		},
		{
			name:    "hero hidden",
			mutate:  func(c *models.SiteConfig) { c.ShowHero = false },
			page:    PageHome,
			wantIDs: []string{`id="inventory"`, `id="about"`},
			omitIDs: []string{`id="hero"`},
		},
		{
			name:    "features hidden",
			mutate:  func(c *models.SiteConfig) { c.ShowFeatures = false },
			page:    PageHome,
			wantIDs: []string{`id="hero"`, `id="inventory"`},
			omitIDs: []string{`id="features"`},
		},
		{
			name:    "inventory hidden",
			mutate:  func(c *models.SiteConfig) { c.ShowInventory = false },
			page:    PageHome,
			wantIDs: []string{`id="hero"`},
			omitIDs: []string{`id="inventory"`, `href="/estoque"`},
		},
		{
			name:    "about hidden",
			mutate:  func(c *models.SiteConfig) { c.ShowAbout = false },
			page:    PageHome,
			omitIDs: []string{`id="about"`, `href="/sobre"`},
		},
		{
			name:    "inventory page skips hero",
			mutate:  func(c *models.SiteConfig) {},
			page:    PageInventory,
			wantIDs: []string{`id="inventory"`},
			omitIDs: []string{`id="hero"`, `id="features"`, `id="about"`},
		},
		{
			name:    "about page",
			mutate:  func(c *models.SiteConfig) {},
			page:    PageAbout,
			wantIDs: []string{`id="about"`},
			omitIDs: []string{`id="hero"`, `id="features"`, `id="inventory"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultSiteConfig()
			tt.mutate(&cfg)

			out, err := Render(cfg, MockVehicles(), tt.page)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			html := string(out)

			for _, want := range tt.wantIDs {
				if !strings.Contains(html, want) {
					t.Errorf("expected %q in output", want)
				}
			}
			for _, omit := range tt.omitIDs {
				if strings.Contains(html, omit) {
					t.Errorf("did not expect %q in output", omit)
				}
			}
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	cfg := models.DefaultSiteConfig()
	a, err := Render(cfg, MockVehicles(), PageHome)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := Render(cfg, MockVehicles(), PageHome)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(a) != string(b) {
		t.Error("same config produced different HTML")
	}
}

func TestRenderTemplateBundles(t *testing.T) {
	t.Run("luxury goes dark", func(t *testing.T) {
		cfg := models.DefaultSiteConfig()
		cfg.TemplateID = models.TemplateLuxury
		cfg.FontFamily = models.FontSerif
		out, err := Render(cfg, nil, PageHome)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		html := string(out)
		if !strings.Contains(html, "bg-slate-950") {
			t.Error("luxury should use the dark body background")
		}
		if !strings.Contains(html, "font-serif") {
			t.Error("serif font class missing")
		}
	})

	t.Run("sport skews buttons", func(t *testing.T) {
		cfg := models.DefaultSiteConfig()
		cfg.TemplateID = models.TemplateSport
		cfg.BorderRadius = "rounded-none"
		out, err := Render(cfg, nil, PageHome)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !strings.Contains(string(out), "-skew-x-12") {
			t.Error("sport buttons should be skewed")
		}
	})

	t.Run("minimal outlines buttons", func(t *testing.T) {
		cfg := models.DefaultSiteConfig()
		cfg.TemplateID = models.TemplateMinimal
		out, err := Render(cfg, nil, PageHome)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !strings.Contains(string(out), "border border-current bg-transparent") {
			t.Error("minimal buttons should be outlined")
		}
	})
}

func TestRenderContent(t *testing.T) {
	cfg := models.DefaultSiteConfig()
	cfg.HeroTitle = "Carros do João"
	cfg.SEOTitle = "Carros do João — Seminovos"
	cfg.ContactPhone = "(11) 91234-5678"

	out, err := Render(cfg, MockVehicles(), PageHome)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<title>Carros do João — Seminovos</title>") {
		t.Error("SEO title should win the <title> tag")
	}
	if !strings.Contains(html, "Carros do João") {
		t.Error("hero title missing")
	}
	if !strings.Contains(html, "(11) 91234-5678") {
		t.Error("contact phone missing")
	}
	// Prices are formatted as BRL.
	if !strings.Contains(html, "R$ 145.900,00") {
		t.Error("formatted vehicle price missing")
	}
	if !strings.Contains(html, "28.000 km") {
		t.Error("formatted mileage missing")
	}
}

func TestRenderEmptyInventoryMessage(t *testing.T) {
	cfg := models.DefaultSiteConfig()
	out, err := Render(cfg, nil, PageInventory)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "Nenhum veículo disponível") {
		t.Error("empty inventory message missing")
	}
}

func TestRenderLogoInitials(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"two-word title", "Carros do João", "CA"},
		{"single rune", "W", "W"},
		{"empty title", "", "AP"},
		{"whitespace-only title", "   ", "AP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultSiteConfig()
			cfg.HeroTitle = tt.title

			out, err := Render(cfg, nil, PageHome)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !strings.Contains(string(out), ">"+tt.want+"</div>") {
				t.Errorf("logo initials %q missing for title %q", tt.want, tt.title)
			}
		})
	}
}

func TestRenderFallsBackToHeroTitleForTitle(t *testing.T) {
	cfg := models.DefaultSiteConfig()
	cfg.SEOTitle = ""
	out, err := Render(cfg, nil, PageHome)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "<title>AutoPremium Motors</title>") {
		t.Error("hero title fallback missing from <title>")
	}
}
