// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-pair/db"
	"github.com/danielhkuo/quickly-pair/middleware"
	"github.com/danielhkuo/quickly-pair/models"
	"github.com/danielhkuo/quickly-pair/pairing"
)

const formatText = "text"

type PairingHandler struct {
	store     db.Store
	generator *pairing.Generator
}

func NewPairingHandler(store db.Store, generator *pairing.Generator) *PairingHandler {
	if generator == nil {
		generator = pairing.NewGenerator()
	}
	return &PairingHandler{store: store, generator: generator}
}

// CreatePairing handles POST /pairings
// Generates a new round from the current roster and stores it
func (h *PairingHandler) CreatePairing(w http.ResponseWriter, r *http.Request) {
	// Body is optional
	var req models.CreatePairingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ctx := r.Context()

	members, err := h.store.ListMembers(ctx)
	if err != nil {
		slog.Error("failed to list members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if len(members) < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "At least 2 members are required")
		return
	}

	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}

	used, err := h.store.UsedPairs(ctx)
	if err != nil {
		slog.Error("failed to load used pairs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if pairing.AllCombinationsUsed(names, used) && !req.Force {
		middleware.ErrorResponse(w, http.StatusConflict, "All combinations used; resend with force to generate anyway")
		return
	}

	pairs, err := h.generator.GenerateAvoiding(names, used)
	if err != nil {
		slog.Error("failed to generate pairs", "error", err, "members", len(names))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate pairs")
		return
	}
	if hasSelfPair(pairs) {
		slog.Error("generated round contains a self-pair", "members", len(names))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate pairs")
		return
	}

	round, err := h.store.CreatePairing(ctx, pairs)
	if err != nil {
		slog.Error("failed to store pairing", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save pairing")
		return
	}

	slog.Info("pairing created",
		"pairing_id", round.ID,
		"pairs", len(round.Pairs),
		"reused", pairing.CountReused(pairs, used),
		"forced", req.Force,
	)

	middleware.JSONResponse(w, http.StatusCreated, round)
}

// ListPairings handles GET /pairings
// Returns every round, newest first
func (h *PairingHandler) ListPairings(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.store.ListPairings(r.Context())
	if err != nil {
		slog.Error("failed to list pairings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPairingsResponse{
		Pairings: pairings,
	})
}

// GetLatestPairing handles GET /pairings/latest
func (h *PairingHandler) GetLatestPairing(w http.ResponseWriter, r *http.Request) {
	round, err := h.store.LatestPairing(r.Context())
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No pairing generated yet")
		return
	}
	if err != nil {
		slog.Error("failed to query latest pairing", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	writePairing(w, r, round)
}

// GetPairing handles GET /pairings/{id}
func (h *PairingHandler) GetPairing(w http.ResponseWriter, r *http.Request) {
	pairingID := r.PathValue("id")
	if pairingID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pairing id is required")
		return
	}

	round, err := h.store.GetPairing(r.Context(), pairingID)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Pairing not found")
		return
	}
	if err != nil {
		slog.Error("failed to query pairing", "error", err, "pairing_id", pairingID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	writePairing(w, r, round)
}

// writePairing renders a round as JSON, or as the copyable group list
// when ?format=text is set
func writePairing(w http.ResponseWriter, r *http.Request, round models.Pairing) {
	switch format := r.URL.Query().Get("format"); format {
	case "":
		middleware.JSONResponse(w, http.StatusOK, round)
	case formatText:
		middleware.TextResponse(w, http.StatusOK, pairing.FormatGroupList(round.Pairs))
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "format must be text or omitted")
	}
}

func hasSelfPair(pairs []pairing.Pair) bool {
	for _, p := range pairs {
		if p.IsSelfPair() {
			return true
		}
	}
	return false
}
