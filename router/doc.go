// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quickly-pair API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Roster management (admin, requires X-Admin-Key):

	GET    /members      - List members by name
	POST   /members      - Add member
	DELETE /members/{id} - Remove member

Rounds (admin, requires X-Admin-Key):

	POST /pairings - Generate and store a new round
	GET  /pairings - Full history, newest first

Rounds (public):

	GET /pairings/latest - Most recent round
	GET /pairings/{id}   - One round

Both public routes accept ?format=text for the copyable group list.

# Handler Initialization

	memberHandler := handlers.NewMemberHandler(store)
	pairingHandler := handlers.NewPairingHandler(store, pairing.NewGenerator())

Handlers receive the Store interface, never a database handle.
*/
package router
