// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pairing

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64, opts ...Option) *Generator {
	return NewGenerator(append([]Option{WithRand(rand.New(rand.NewPCG(seed, seed+1)))}, opts...)...)
}

// occurrences counts how often each name appears across a round
func occurrences(pairs []Pair) map[string]int {
	counts := make(map[string]int)
	for _, p := range pairs {
		counts[p[0]]++
		counts[p[1]]++
	}
	return counts
}

func assertValidRound(t *testing.T, members []string, pairs []Pair) {
	t.Helper()

	expectedPairs := (len(members) + 1) / 2
	require.Len(t, pairs, expectedPairs)

	for _, p := range pairs {
		assert.False(t, p.IsSelfPair(), "self-pair in round: %v", p)
	}

	counts := occurrences(pairs)
	duplicated := 0
	for _, m := range members {
		assert.GreaterOrEqual(t, counts[m], 1, "member %q missing from round", m)
		if counts[m] == 2 {
			duplicated++
		}
		assert.LessOrEqual(t, counts[m], 2, "member %q appears more than twice", m)
	}

	if len(members)%2 == 0 {
		assert.Equal(t, 0, duplicated, "even roster must not duplicate anyone")
	} else {
		assert.Equal(t, 1, duplicated, "odd roster must duplicate exactly one member")
	}
}

func TestGenerate_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name    string
		members []string
	}{
		{"nil", nil},
		{"empty", []string{}},
		{"single member", []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := Generate(tt.members)
			require.NoError(t, err)
			assert.NotNil(t, pairs)
			assert.Empty(t, pairs)
		})
	}
}

func TestGenerate_TwoMembers(t *testing.T) {
	for seed := range uint64(20) {
		pairs, err := seeded(seed).Generate([]string{"A", "B"})
		require.NoError(t, err)
		require.Len(t, pairs, 1)
		assert.True(t, pairs[0].Same(NewPair("A", "B")), "got %v", pairs[0])
	}
}

func TestGenerate_OddCount(t *testing.T) {
	members := []string{"A", "B", "C"}
	for seed := range uint64(50) {
		pairs, err := seeded(seed).Generate(members)
		require.NoError(t, err)
		assertValidRound(t, members, pairs)
	}
}

func TestGenerate_Properties(t *testing.T) {
	rosters := [][]string{
		{"A", "B", "C", "D"},
		{"A", "B", "C", "D", "E"},
		{"Ali", "Badr", "Chadi", "Dina", "Emad", "Fadi", "Ghada"},
		{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"},
	}

	for _, members := range rosters {
		for seed := range uint64(30) {
			pairs, err := seeded(seed).Generate(members)
			require.NoError(t, err)
			assertValidRound(t, members, pairs)
		}
	}
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	members := []string{"A", "B", "C", "D", "E"}
	original := append([]string(nil), members...)

	_, err := Generate(members)
	require.NoError(t, err)
	assert.Equal(t, original, members)
}

func TestGenerate_UnavoidableSelfPair(t *testing.T) {
	tests := []struct {
		name    string
		members []string
	}{
		{"same name twice", []string{"A", "A"}},
		{"same name three times", []string{"A", "A", "A"}},
		{"one name dominates", []string{"A", "A", "A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seeded(7, WithMaxAttempts(5)).Generate(tt.members)
			assert.ErrorIs(t, err, ErrSelfPairUnavoidable)
		})
	}
}

func TestGenerate_DuplicatedInputStillResolves(t *testing.T) {
	// Duplicating B leaves three Bs and one A, which no shuffle can fix.
	// Duplicating A can, and the fallback always picks it.
	members := []string{"A", "B", "B"}
	for seed := range uint64(30) {
		pairs, err := seeded(seed, WithMaxAttempts(1)).Generate(members)
		require.NoError(t, err)
		require.Len(t, pairs, 2)
		for _, p := range pairs {
			assert.False(t, p.IsSelfPair(), "self-pair in round: %v", p)
		}
	}
}

func TestGenerate_ConcurrentDefaultGenerator(t *testing.T) {
	members := []string{"A", "B", "C", "D", "E", "F", "G"}

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pairs, err := Generate(members)
			if err != nil {
				errs <- err
				return
			}
			for _, p := range pairs {
				if p.IsSelfPair() {
					errs <- ErrSelfPairUnavoidable
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent generation failed: %v", err)
	}
}

func TestRepair(t *testing.T) {
	t.Run("swaps with first clean pair", func(t *testing.T) {
		working := []string{"A", "A", "A", "B", "C", "D"}
		require.True(t, repair(working, 0))
		assert.Equal(t, []string{"A", "D", "A", "B", "C", "A"}, working)
	})

	t.Run("no candidate", func(t *testing.T) {
		working := []string{"A", "A", "B", "A"}
		assert.False(t, repair(working, 0))
	})

	t.Run("last pair", func(t *testing.T) {
		working := []string{"B", "C", "A", "A"}
		assert.False(t, repair(working, 2))
	})
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name    string
		members []string
		want    []Pair
	}{
		{
			name:    "even distinct",
			members: []string{"A", "B", "C", "D"},
			want:    []Pair{{"A", "C"}, {"B", "D"}},
		},
		{
			name:    "odd duplicates least frequent first seen",
			members: []string{"A", "B", "C"},
			want:    []Pair{{"A", "B"}, {"A", "C"}},
		},
		{
			name:    "odd with repeated name",
			members: []string{"A", "B", "B"},
			want:    []Pair{{"A", "B"}, {"A", "B"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fallback(tt.members)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateAvoiding(t *testing.T) {
	t.Run("finds unused round", func(t *testing.T) {
		members := []string{"A", "B", "C", "D"}
		// Only {A,D},{B,C} remains unused
		history := []Pair{{"A", "B"}, {"C", "D"}, {"A", "C"}, {"B", "D"}}

		g := seeded(3, WithCandidates(200))
		pairs, err := g.GenerateAvoiding(members, history)
		require.NoError(t, err)
		assert.Equal(t, 0, CountReused(pairs, history))
		assertValidRound(t, members, pairs)
	})

	t.Run("exhausted history still returns a round", func(t *testing.T) {
		members := []string{"A", "B"}
		history := []Pair{{"B", "A"}}

		pairs, err := seeded(1).GenerateAvoiding(members, history)
		require.NoError(t, err)
		require.Len(t, pairs, 1)
		assert.Equal(t, 1, CountReused(pairs, history))
	})

	t.Run("propagates unavoidable self-pair", func(t *testing.T) {
		_, err := seeded(1, WithMaxAttempts(2)).GenerateAvoiding([]string{"A", "A"}, nil)
		assert.ErrorIs(t, err, ErrSelfPairUnavoidable)
	})
}
