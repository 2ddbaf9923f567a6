// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-pair/models"
	"github.com/danielhkuo/quickly-pair/pairing"
)

// Store is the persistence surface the handlers depend on.
type Store interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	CreateMember(ctx context.Context, name string) (models.Member, error)
	DeleteMember(ctx context.Context, id string) error

	ListPairings(ctx context.Context) ([]models.Pairing, error)
	LatestPairing(ctx context.Context) (models.Pairing, error)
	GetPairing(ctx context.Context, id string) (models.Pairing, error)
	CreatePairing(ctx context.Context, pairs []pairing.Pair) (models.Pairing, error)

	// UsedPairs returns every stored pair across all rounds
	UsedPairs(ctx context.Context) ([]pairing.Pair, error)
}

// SQLStore implements Store on database/sql. Queries use $n placeholders,
// which both lib/pq and modernc.org/sqlite accept.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

type StoreOption func(*SQLStore)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) StoreOption {
	return func(s *SQLStore) {
		s.now = now
	}
}

func NewSQLStore(db *sql.DB, opts ...StoreOption) *SQLStore {
	s := &SQLStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Store = (*SQLStore)(nil)

func (s *SQLStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at
		FROM member
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read members: %w", err)
	}

	return members, nil
}

func (s *SQLStore) CreateMember(ctx context.Context, name string) (models.Member, error) {
	m := models.Member{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO member (id, name, created_at)
		VALUES ($1, $2, $3)
	`, m.ID, m.Name, m.CreatedAt)
	if isUniqueViolation(err) {
		return models.Member{}, ErrDuplicateName
	}
	if err != nil {
		return models.Member{}, fmt.Errorf("failed to insert member: %w", err)
	}

	return m, nil
}

func (s *SQLStore) DeleteMember(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM member WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// ListPairings returns all rounds, newest first
func (s *SQLStore) ListPairings(ctx context.Context) ([]models.Pairing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.round_date, p.created_at, pp.left_name, pp.right_name
		FROM pairing p
		LEFT JOIN pairing_pair pp ON pp.pairing_id = p.id
		ORDER BY p.created_at DESC, p.id, pp.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairings: %w", err)
	}
	defer rows.Close()

	pairings := []models.Pairing{}
	for rows.Next() {
		var (
			p           models.Pairing
			left, right sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Date, &p.CreatedAt, &left, &right); err != nil {
			return nil, fmt.Errorf("failed to scan pairing: %w", err)
		}

		// Rows of one round are adjacent
		if n := len(pairings); n == 0 || pairings[n-1].ID != p.ID {
			p.Pairs = []pairing.Pair{}
			pairings = append(pairings, p)
		}
		if left.Valid && right.Valid {
			last := &pairings[len(pairings)-1]
			last.Pairs = append(last.Pairs, pairing.NewPair(left.String, right.String))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pairings: %w", err)
	}

	return pairings, nil
}

// LatestPairing returns the most recent round or ErrNotFound
func (s *SQLStore) LatestPairing(ctx context.Context) (models.Pairing, error) {
	var p models.Pairing
	err := s.db.QueryRowContext(ctx, `
		SELECT id, round_date, created_at
		FROM pairing
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&p.ID, &p.Date, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Pairing{}, ErrNotFound
	}
	if err != nil {
		return models.Pairing{}, fmt.Errorf("failed to query latest pairing: %w", err)
	}

	p.Pairs, err = s.pairsOf(ctx, p.ID)
	if err != nil {
		return models.Pairing{}, err
	}
	return p, nil
}

func (s *SQLStore) GetPairing(ctx context.Context, id string) (models.Pairing, error) {
	var p models.Pairing
	err := s.db.QueryRowContext(ctx, `
		SELECT id, round_date, created_at
		FROM pairing
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Date, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Pairing{}, ErrNotFound
	}
	if err != nil {
		return models.Pairing{}, fmt.Errorf("failed to query pairing: %w", err)
	}

	p.Pairs, err = s.pairsOf(ctx, p.ID)
	if err != nil {
		return models.Pairing{}, err
	}
	return p, nil
}

// CreatePairing stores a round and its pairs in one transaction
func (s *SQLStore) CreatePairing(ctx context.Context, pairs []pairing.Pair) (models.Pairing, error) {
	now := s.now()
	p := models.Pairing{
		ID:        uuid.NewString(),
		Date:      now,
		Pairs:     pairs,
		CreatedAt: now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Pairing{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO pairing (id, round_date, created_at)
		VALUES ($1, $2, $3)
	`, p.ID, p.Date, p.CreatedAt)
	if err != nil {
		return models.Pairing{}, fmt.Errorf("failed to insert pairing: %w", err)
	}

	for i, pair := range pairs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO pairing_pair (pairing_id, position, left_name, right_name)
			VALUES ($1, $2, $3, $4)
		`, p.ID, i, pair.Left(), pair.Right())
		if err != nil {
			return models.Pairing{}, fmt.Errorf("failed to insert pair: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Pairing{}, fmt.Errorf("failed to commit pairing: %w", err)
	}

	if p.Pairs == nil {
		p.Pairs = []pairing.Pair{}
	}
	return p, nil
}

func (s *SQLStore) UsedPairs(ctx context.Context) ([]pairing.Pair, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT left_name, right_name FROM pairing_pair`)
	if err != nil {
		return nil, fmt.Errorf("failed to query used pairs: %w", err)
	}
	defer rows.Close()

	return scanPairs(rows)
}

func (s *SQLStore) pairsOf(ctx context.Context, pairingID string) ([]pairing.Pair, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT left_name, right_name
		FROM pairing_pair
		WHERE pairing_id = $1
		ORDER BY position
	`, pairingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairs: %w", err)
	}
	defer rows.Close()

	return scanPairs(rows)
}

func scanPairs(rows *sql.Rows) ([]pairing.Pair, error) {
	pairs := []pairing.Pair{}
	for rows.Next() {
		var left, right string
		if err := rows.Scan(&left, &right); err != nil {
			return nil, fmt.Errorf("failed to scan pair: %w", err)
		}
		pairs = append(pairs, pairing.NewPair(left, right))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pairs: %w", err)
	}
	return pairs, nil
}
