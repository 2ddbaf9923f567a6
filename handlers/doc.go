// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Pair API.

# Handler Types

  - MemberHandler: Roster listing, additions and removals
  - PairingHandler: Round generation, history and viewing

Handlers depend on the db.Store interface:

	memberHandler := handlers.NewMemberHandler(store)
	pairingHandler := handlers.NewPairingHandler(store, pairing.NewGenerator())

# Generating a Round

	POST /pairings → CreatePairing

The current roster is paired with the generator, preferring
combinations absent from history. Once every combination among current
members has been drawn the request is rejected with 409 unless the body
is {"force": true}. Rounds with fewer than two members are rejected
with 400.

# Viewing Rounds

	GET /pairings/latest → GetLatestPairing
	GET /pairings/{id}   → GetPairing

Both render JSON by default, or the copyable group list with
?format=text.
*/
package handlers
