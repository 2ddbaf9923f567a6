// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pairing

import (
	"errors"
	"math/rand/v2"
	"slices"
)

const (
	DefaultMaxAttempts = 100
	DefaultCandidates  = 16
)

// ErrSelfPairUnavoidable is returned when one name makes up more than half of
// the (possibly duplicated) working list, so every arrangement pairs it with itself.
var ErrSelfPairUnavoidable = errors.New("self-pair unavoidable for given members")

// Generator builds randomized pairing rounds.
type Generator struct {
	rnd         *rand.Rand
	maxAttempts int
	candidates  int
}

type Option func(*Generator)

// WithRand fixes the random source. A generator built with it must not be
// shared between goroutines.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

// WithMaxAttempts caps random shuffles before the deterministic fallback runs
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithCandidates sets how many rounds GenerateAvoiding compares
func WithCandidates(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.candidates = n
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		maxAttempts: DefaultMaxAttempts,
		candidates:  DefaultCandidates,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate pairs members using the package default generator
func Generate(members []string) ([]Pair, error) {
	return defaultGenerator.Generate(members)
}

// Generate returns a random partition of members into pairs with no member
// paired with itself. An odd count duplicates one member so it appears in two
// pairs. Fewer than two members yields an empty round.
func (g *Generator) Generate(members []string) ([]Pair, error) {
	if len(members) < 2 {
		return []Pair{}, nil
	}

	for range g.maxAttempts {
		if pairs, ok := g.attempt(members); ok {
			return pairs, nil
		}
	}

	return fallback(members)
}

// GenerateAvoiding compares several rounds and keeps the one reusing the
// fewest combinations from history. It stops early on a round with no reuse.
func (g *Generator) GenerateAvoiding(members []string, history []Pair) ([]Pair, error) {
	used := usedKeys(history)

	var best []Pair
	bestReused := -1
	for range g.candidates {
		pairs, err := g.Generate(members)
		if err != nil {
			return nil, err
		}

		reused := countIn(pairs, used)
		if reused == 0 {
			return pairs, nil
		}
		if bestReused < 0 || reused < bestReused {
			best, bestReused = pairs, reused
		}
	}

	return best, nil
}

// attempt runs one randomized pass. It reports false when self-pair repair
// finds no forward pair to swap with.
func (g *Generator) attempt(members []string) ([]Pair, bool) {
	working := slices.Clone(members)

	if len(working)%2 != 0 {
		working = append(working, working[g.intN(len(working))])
	}

	// Fisher-Yates
	for i := len(working) - 1; i > 0; i-- {
		j := g.intN(i + 1)
		working[i], working[j] = working[j], working[i]
	}

	pairs := make([]Pair, 0, len(working)/2)
	for i := 0; i < len(working); i += 2 {
		if working[i] == working[i+1] && !repair(working, i) {
			return nil, false
		}
		pairs = append(pairs, Pair{working[i], working[i+1]})
	}

	return pairs, true
}

func (g *Generator) intN(n int) int {
	if g.rnd != nil {
		return g.rnd.IntN(n)
	}
	return rand.IntN(n)
}

// repair swaps the second slot of the self-pair at i with the second slot of
// the first later pair whose members both differ from it.
func repair(working []string, i int) bool {
	m := working[i]
	for j := i + 2; j+1 < len(working); j += 2 {
		if working[j] != m && working[j+1] != m {
			working[i+1], working[j+1] = working[j+1], working[i+1]
			return true
		}
	}
	return false
}

// fallback builds a round deterministically. Names are grouped by frequency so
// equal names sit together, then position i is paired with i+n/2. That never
// pairs a name with itself while no name exceeds half the list.
func fallback(members []string) ([]Pair, error) {
	counts := make(map[string]int, len(members))
	var order []string
	for _, m := range members {
		if counts[m] == 0 {
			order = append(order, m)
		}
		counts[m]++
	}

	total := len(members)
	if total%2 != 0 {
		least := order[0]
		for _, name := range order[1:] {
			if counts[name] < counts[least] {
				least = name
			}
		}
		counts[least]++
		total++
	}

	// Stable keeps first appearance as the tie-break
	slices.SortStableFunc(order, func(a, b string) int {
		return counts[b] - counts[a]
	})

	half := total / 2
	if counts[order[0]] > half {
		return nil, ErrSelfPairUnavoidable
	}

	working := make([]string, 0, total)
	for _, name := range order {
		for range counts[name] {
			working = append(working, name)
		}
	}

	pairs := make([]Pair, half)
	for i := range half {
		pairs[i] = Pair{working[i], working[i+half]}
	}
	return pairs, nil
}
