// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pairing generates random pair assignments for a member roster.

The package is pure: no storage, no I/O. Callers load member names and usage
history, call the generator, and persist the result themselves.

# Generating a Round

	pairs, err := pairing.Generate([]string{"Ali", "Badr", "Chadi"})

Rules:

  - Zero or one member produces an empty round
  - An odd count duplicates one random member, who then appears in two pairs
  - The list is Fisher-Yates shuffled and split into consecutive pairs
  - A self-pair is repaired by swapping with a later pair; if no swap is
    possible the attempt is thrown away and a fresh one starts

Attempts are capped (DefaultMaxAttempts). After the cap a deterministic
arrangement is built instead. ErrSelfPairUnavoidable is returned only when one
name fills more than half of the working list.

# Avoiding Repeats

	g := pairing.NewGenerator()
	pairs, err := g.GenerateAvoiding(names, history)

Compares up to DefaultCandidates rounds and keeps the one reusing the fewest
past combinations.

# Usage Tracking

	pairing.HasPairBeenUsed(pairing.NewPair("A", "B"), history)
	pairing.AllCombinationsUsed(names, history)

Pairs are unordered for tracking: (A, B) and (B, A) are one combination.
AllCombinationsUsed only counts combinations between current members.

# Formatting

	text := pairing.FormatGroupList(pairs)

Produces GroupListHeader and one "left - right" line per pair.

# Deterministic Tests

	g := pairing.NewGenerator(pairing.WithRand(rand.New(rand.NewPCG(1, 2))))

A generator with a fixed source is not safe for concurrent use. The default
generator draws from math/rand/v2 and can be shared.
*/
package pairing
