// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pairing

// HasPairBeenUsed reports whether history contains pair in either order
func HasPairBeenUsed(pair Pair, history []Pair) bool {
	for _, used := range history {
		if used.Same(pair) {
			return true
		}
	}
	return false
}

// AllCombinationsUsed reports whether every unordered combination of the
// current members has appeared in history. Only history pairs made of two
// distinct current members count, so pairs naming removed members never
// push the roster into exhaustion.
func AllCombinationsUsed(members []string, history []Pair) bool {
	current := make(map[string]struct{}, len(members))
	for _, m := range members {
		current[m] = struct{}{}
	}
	n := len(current)
	totalCombinations := n * (n - 1) / 2

	seen := make(map[string]struct{})
	for _, p := range history {
		if p.IsSelfPair() {
			continue
		}
		if _, ok := current[p[0]]; !ok {
			continue
		}
		if _, ok := current[p[1]]; !ok {
			continue
		}
		seen[p.Key()] = struct{}{}
	}

	return len(seen) >= totalCombinations
}

// CountReused returns how many pairs of round already appear in history
func CountReused(round, history []Pair) int {
	return countIn(round, usedKeys(history))
}

func usedKeys(history []Pair) map[string]struct{} {
	keys := make(map[string]struct{}, len(history))
	for _, p := range history {
		keys[p.Key()] = struct{}{}
	}
	return keys
}

func countIn(round []Pair, keys map[string]struct{}) int {
	n := 0
	for _, p := range round {
		if _, ok := keys[p.Key()]; ok {
			n++
		}
	}
	return n
}
