// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-pair/cliparse"
	"github.com/danielhkuo/quickly-pair/db"
	"github.com/danielhkuo/quickly-pair/handlers"
	"github.com/danielhkuo/quickly-pair/middleware"
	"github.com/danielhkuo/quickly-pair/pairing"
)

func NewRouter(store db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	memberHandler := handlers.NewMemberHandler(store)
	pairingHandler := handlers.NewPairingHandler(store, pairing.NewGenerator())

	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.AdminKey, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Roster management (admin)
	mux.HandleFunc("GET /members", admin(memberHandler.ListMembers))
	mux.HandleFunc("POST /members", admin(memberHandler.CreateMember))
	mux.HandleFunc("DELETE /members/{id}", admin(memberHandler.DeleteMember))

	// Round generation and history (admin)
	mux.HandleFunc("POST /pairings", admin(pairingHandler.CreatePairing))
	mux.HandleFunc("GET /pairings", admin(pairingHandler.ListPairings))

	// Viewing rounds (public)
	mux.HandleFunc("GET /pairings/latest", middleware.WithLogging(pairingHandler.GetLatestPairing))
	mux.HandleFunc("GET /pairings/{id}", middleware.WithLogging(pairingHandler.GetPairing))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-pair API v1"))
	})

	return mux
}
