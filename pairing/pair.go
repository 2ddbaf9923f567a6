// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pairing

// keySep joins the two names of a canonical key. Member names are trimmed
// text, so a control character never collides with a real name.
const keySep = "\x1f"

// Pair is two member names assigned together. Position matters for display
// only; usage tracking treats (a, b) and (b, a) as the same combination.
type Pair [2]string

func NewPair(a, b string) Pair {
	return Pair{a, b}
}

func (p Pair) Left() string  { return p[0] }
func (p Pair) Right() string { return p[1] }

// IsSelfPair reports whether both slots hold the same member
func (p Pair) IsSelfPair() bool {
	return p[0] == p[1]
}

// Key returns the order-insensitive identity of the combination
func (p Pair) Key() string {
	if p[1] < p[0] {
		return p[1] + keySep + p[0]
	}
	return p[0] + keySep + p[1]
}

// Same reports whether p and q are the same combination in either order
func (p Pair) Same(q Pair) bool {
	return (p[0] == q[0] && p[1] == q[1]) || (p[0] == q[1] && p[1] == q[0])
}
