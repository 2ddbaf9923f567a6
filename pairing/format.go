// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pairing

import "strings"

// GroupListHeader opens every formatted group list
const GroupListHeader = "قائمة الإستظهار :"

// FormatGroupList renders pairs as the header line followed by one
// "left - right" line per pair, in order.
func FormatGroupList(pairs []Pair) string {
	var b strings.Builder
	b.WriteString(GroupListHeader)
	b.WriteString("\n")
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p[0])
		b.WriteString(" - ")
		b.WriteString(p[1])
	}
	return b.String()
}
