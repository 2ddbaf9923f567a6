// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateMemberRequest: name
  - CreatePairingRequest: force

# Response Types

  - ListMembersResponse: members
  - ListPairingsResponse: pairings
  - ErrorResponse: error, message

# Domain Types

  - Member: roster entry (id, name, created_at)
  - Pairing: one generated round (id, date, pairs, created_at)

Pairs serialize as two-element arrays:

	{"id": "...", "pairs": [["Ali", "Badr"], ["Chadi", "Dina"]]}
*/
package models
