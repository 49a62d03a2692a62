package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"autohub/internal/models"
)

func TestSiteConfigLoadEmpty(t *testing.T) {
	db := testDB(t)
	cleanSiteConfigs(t, db)
	t.Cleanup(func() { cleanSiteConfigs(t, db) })

	s := NewSiteConfigStore(db)
	cfg, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config when nothing saved, got %+v", cfg)
	}
}

func TestSiteConfigInsertAndUpdate(t *testing.T) {
	db := testDB(t)
	cleanSiteConfigs(t, db)
	t.Cleanup(func() { cleanSiteConfigs(t, db) })

	s := NewSiteConfigStore(db)
	ctx := context.Background()

	// First save: zero ID inserts, resolving the dealership lazily.
	cfg := models.DefaultSiteConfig()
	cfg.ChatHistory = []models.ChatMessage{
		{ID: "1", Role: models.RoleAI, Content: "Olá!", Timestamp: 100},
	}
	cfg.StyleOverrides = models.StyleOverrides{CardShadow: "shadow-lg"}

	saved, err := s.Save(ctx, cfg)
	if err != nil {
		t.Fatalf("insert Save: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Fatal("expected assigned ID after insert")
	}
	if saved.DealershipID == uuid.Nil {
		t.Fatal("expected dealership to be resolved on insert")
	}
	if len(saved.ChatHistory) != 1 || saved.ChatHistory[0].Content != "Olá!" {
		t.Errorf("chat history did not round-trip: %+v", saved.ChatHistory)
	}
	if saved.StyleOverrides.CardShadow != "shadow-lg" {
		t.Errorf("style overrides did not round-trip: %+v", saved.StyleOverrides)
	}

	// Second save: existing ID updates in place.
	saved.TemplateID = models.TemplateLuxury
	saved.PrimaryColor = "bg-amber-500"
	saved.ChatHistory = append(saved.ChatHistory, models.ChatMessage{
		ID: "2", Role: models.RoleUser, Content: "deixa com tema de luxo", Timestamp: 200,
	})
	updated, err := s.Save(ctx, *saved)
	if err != nil {
		t.Fatalf("update Save: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("update changed the ID: %s -> %s", saved.ID, updated.ID)
	}
	if updated.TemplateID != models.TemplateLuxury {
		t.Errorf("template: got %s, want luxury", updated.TemplateID)
	}
	if len(updated.ChatHistory) != 2 {
		t.Errorf("chat history length: got %d, want 2", len(updated.ChatHistory))
	}

	// Load returns the persisted row.
	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected config after save")
	}
	if loaded.PrimaryColor != "bg-amber-500" {
		t.Errorf("primary color: got %s, want bg-amber-500", loaded.PrimaryColor)
	}
	if loaded.ChatHistory[1].Role != models.RoleUser {
		t.Errorf("second message role: got %s, want user", loaded.ChatHistory[1].Role)
	}
}

func TestSiteConfigSaveUnchangedIsIdempotent(t *testing.T) {
	db := testDB(t)
	cleanSiteConfigs(t, db)
	t.Cleanup(func() { cleanSiteConfigs(t, db) })

	s := NewSiteConfigStore(db)
	ctx := context.Background()

	cfg := models.DefaultSiteConfig()
	cfg.ChatHistory = []models.ChatMessage{
		{ID: "1", Role: models.RoleAI, Content: "Olá!", Timestamp: 100},
		{ID: "2", Role: models.RoleUser, Content: "mude a cor para azul", Timestamp: 200},
		{ID: "3", Role: models.RoleAI, Content: "Mudei a cor principal para Azul.", Timestamp: 300},
	}
	cfg.StyleOverrides = models.StyleOverrides{CardShadow: "shadow-lg"}
	if _, err := s.Save(ctx, cfg); err != nil {
		t.Fatalf("seed Save: %v", err)
	}

	before, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if before == nil {
		t.Fatal("expected config after save")
	}

	// Saving a just-loaded config must not alter any field.
	if _, err := s.Save(ctx, *before); err != nil {
		t.Fatalf("unchanged Save: %v", err)
	}
	after, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if after == nil {
		t.Fatal("expected config after resave")
	}

	// updated_at moves on every write; everything else must be stable,
	// including chat history ordering.
	a, b := *before, *after
	a.UpdatedAt, b.UpdatedAt = time.Time{}, time.Time{}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("resaving an unchanged config altered it:\nbefore: %+v\nafter:  %+v", a, b)
	}
}

func TestSiteConfigUpdateMissingRow(t *testing.T) {
	db := testDB(t)
	s := NewSiteConfigStore(db)

	cfg := models.DefaultSiteConfig()
	cfg.ID = uuid.New() // nonexistent
	if _, err := s.Save(context.Background(), cfg); err == nil {
		t.Error("expected error updating a missing site config")
	}
}
