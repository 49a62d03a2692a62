// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// editor.go exposes the chat-driven website editor: the conversation
// endpoints, publishing, and the QR code for the public site.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/skip2/go-qrcode"

	"autohub/internal/chat"
)

// maxChatMessageLen caps a single editor instruction.
const maxChatMessageLen = 2000

// EditorConfig returns the current site configuration, including the
// chat transcript. First call seeds the default design with a greeting.
func (a *API) EditorConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.chat.Config(r.Context())
	if err != nil {
		slog.Error("load editor config failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// EditorChat applies one natural-language instruction to the design.
// The response carries the updated config; the assistant's reply is the
// last entry of its chat history.
func (a *API) EditorChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg := strings.TrimSpace(body.Message)
	if msg == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if len(msg) > maxChatMessageLen {
		writeError(w, http.StatusBadRequest, "message is too long")
		return
	}

	cfg, err := a.chat.Send(r.Context(), msg)
	if err != nil {
		if errors.Is(err, chat.ErrBusy) {
			writeError(w, http.StatusConflict, "O assistente ainda está processando a mensagem anterior.")
			return
		}
		if r.Context().Err() != nil {
			// Client went away while the assistant was thinking.
			return
		}
		slog.Error("editor chat failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// EditorChatClear resets the conversation while keeping the design.
func (a *API) EditorChatClear(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.chat.Clear(r.Context())
	if err != nil {
		if errors.Is(err, chat.ErrBusy) {
			writeError(w, http.StatusConflict, "O assistente ainda está processando a mensagem anterior.")
			return
		}
		slog.Error("editor clear failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// EditorPublish persists the design synchronously and flushes the
// public page cache so the new look goes live at once.
func (a *API) EditorPublish(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.chat.Publish(r.Context())
	if err != nil {
		slog.Error("editor publish failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if a.pageCache != nil {
		a.pageCache.InvalidateAll(r.Context())
	}
	writeJSON(w, http.StatusOK, cfg)
}

// EditorQR returns a PNG QR code pointing at the public site, for the
// "share your site" panel.
func (a *API) EditorQR(w http.ResponseWriter, r *http.Request) {
	png, err := qrcode.Encode(a.siteBaseURL, qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
