// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package chat holds the website editor's conversation state. One
// Service instance owns the working copy of the site config and runs
// the turn loop: accept a message, simulate the assistant thinking,
// apply the rule engine, and persist in the background.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"autohub/internal/models"
	"autohub/internal/rules"
)

// ErrBusy is returned when a message arrives while a previous turn is
// still in flight. The editor accepts at most one turn at a time.
var ErrBusy = errors.New("assistant is already processing a message")

// Greeting opens a fresh conversation.
const Greeting = `Olá! Sou seu assistente de design. Como você quer que o site da sua loja fique hoje? (Ex: "Faça um novo design moderno" ou "Mude a cor para vermelho")`

// ClearedMessage replaces the history when the user wipes it.
const ClearedMessage = "Histórico limpo. Como posso ajudar agora?"

// Gateway persists site configs. Implemented by store.SiteConfigStore.
type Gateway interface {
	Load(ctx context.Context) (*models.SiteConfig, error)
	Save(ctx context.Context, cfg models.SiteConfig) (*models.SiteConfig, error)
}

// persistTimeout bounds background saves, which outlive their request.
const persistTimeout = 5 * time.Second

type state int

const (
	stateIdle state = iota
	stateAwaiting
)

// Service is the chat session controller. All fields are guarded by mu;
// the lock is released while the simulated latency elapses so Config
// and Publish stay responsive during a turn.
type Service struct {
	engine  *rules.Engine
	gateway Gateway
	delay   time.Duration
	now     func() time.Time

	mu     sync.Mutex
	state  state
	cfg    models.SiteConfig
	loaded bool

	// saveMu orders background saves so an insert that assigns the row
	// ID always lands before the update that follows it.
	saveMu sync.Mutex

	// persists tracks in-flight background saves so tests can drain them.
	persists sync.WaitGroup
}

// New creates a Service. delay is the simulated assistant thinking time
// per turn; zero disables it.
func New(gateway Gateway, engine *rules.Engine, delay time.Duration) *Service {
	return &Service{
		engine:  engine,
		gateway: gateway,
		delay:   delay,
		now:     time.Now,
	}
}

// Config returns the current working config, loading it from the
// gateway on first use. A fresh install gets the built-in default with
// the assistant's greeting seeded into the history.
func (s *Service) Config(ctx context.Context) (models.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return models.SiteConfig{}, err
	}
	return s.cfg, nil
}

// Send runs one chat turn: the user message is appended, the simulated
// latency elapses, the rule engine produces the new config and reply,
// and both transitions persist in the background. The rule engine sees
// the config exactly as it stood before the user message. Returns
// ErrBusy while a previous turn is still running.
func (s *Service) Send(ctx context.Context, text string) (models.SiteConfig, error) {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return models.SiteConfig{}, err
	}
	if s.state != stateIdle {
		s.mu.Unlock()
		return models.SiteConfig{}, ErrBusy
	}
	s.state = stateAwaiting

	before := s.cfg
	s.cfg.ChatHistory = append(append([]models.ChatMessage{}, s.cfg.ChatHistory...), models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleUser,
		Content:   text,
		Timestamp: s.now().UnixMilli(),
	})
	s.persistLocked()
	withUser := s.cfg
	s.mu.Unlock()

	// Simulated assistant latency. A canceled request releases the
	// session but keeps the user message in the history.
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			s.mu.Lock()
			s.state = stateIdle
			s.mu.Unlock()
			return models.SiteConfig{}, ctx.Err()
		}
	}

	next, reply := s.engine.Apply(text, before)

	s.mu.Lock()
	defer s.mu.Unlock()

	next.ID = s.cfg.ID
	next.DealershipID = s.cfg.DealershipID
	next.ChatHistory = append(withUser.ChatHistory, models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleAI,
		Content:   reply,
		Timestamp: s.now().UnixMilli(),
	})
	s.cfg = next
	s.state = stateIdle
	s.persistLocked()

	return s.cfg, nil
}

// Clear wipes the conversation, leaving a single fresh assistant
// message. Only allowed between turns.
func (s *Service) Clear(ctx context.Context) (models.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return models.SiteConfig{}, err
	}
	if s.state != stateIdle {
		return models.SiteConfig{}, ErrBusy
	}

	s.cfg.ChatHistory = []models.ChatMessage{{
		ID:        uuid.New().String(),
		Role:      models.RoleAI,
		Content:   ClearedMessage,
		Timestamp: s.now().UnixMilli(),
	}}
	s.persistLocked()

	return s.cfg, nil
}

// Publish saves the working config synchronously. Unlike the background
// persists of chat turns, the caller learns whether the save succeeded.
func (s *Service) Publish(ctx context.Context) (models.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return models.SiteConfig{}, err
	}

	saved, err := s.gateway.Save(ctx, s.cfg)
	if err != nil {
		return models.SiteConfig{}, err
	}
	s.cfg = *saved
	return s.cfg, nil
}

// ensureLoaded lazily fetches the persisted config. Callers hold mu.
func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	cfg, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}
	if cfg != nil {
		s.cfg = *cfg
	} else {
		s.cfg = models.DefaultSiteConfig()
		s.cfg.ChatHistory = []models.ChatMessage{{
			ID:        "init",
			Role:      models.RoleAI,
			Content:   Greeting,
			Timestamp: s.now().UnixMilli(),
		}}
	}
	s.loaded = true
	return nil
}

// persistLocked saves the current config in the background. Failures
// are logged and swallowed — the working copy stays authoritative and
// the next transition retries the write. Callers hold mu.
func (s *Service) persistLocked() {
	snapshot := s.cfg
	s.persists.Add(1)
	go func() {
		defer s.persists.Done()

		s.saveMu.Lock()
		defer s.saveMu.Unlock()

		// Pick up IDs an earlier save may have assigned meanwhile.
		s.mu.Lock()
		snapshot.ID = s.cfg.ID
		snapshot.DealershipID = s.cfg.DealershipID
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		saved, err := s.gateway.Save(ctx, snapshot)
		if err != nil {
			slog.Error("chat state persist failed", "error", err)
			return
		}

		// The first save assigns IDs; adopt them so later saves update
		// in place instead of inserting again.
		s.mu.Lock()
		if s.cfg.ID == uuid.Nil {
			s.cfg.ID = saved.ID
			s.cfg.DealershipID = saved.DealershipID
		}
		s.mu.Unlock()
	}()
}

// drainPersists blocks until all background saves have finished. Test hook.
func (s *Service) drainPersists() {
	s.persists.Wait()
}
