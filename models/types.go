package models

import (
	"time"

	"github.com/danielhkuo/quickly-pair/pairing"
)

// Request types

type CreateMemberRequest struct {
	Name string `json:"name"`
}

// Force generates a round even when every combination has been used
type CreatePairingRequest struct {
	Force bool `json:"force"`
}

// Response types

type ListMembersResponse struct {
	Members []Member `json:"members"`
}

type ListPairingsResponse struct {
	Pairings []Pairing `json:"pairings"`
}

// Domain types

type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Pairing struct {
	ID        string         `json:"id"`
	Date      time.Time      `json:"date"`
	Pairs     []pairing.Pair `json:"pairs"`
	CreatedAt time.Time      `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
