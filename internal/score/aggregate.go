// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import "github.com/pdiddy/rider-engine/pkg/types"

// Aggregate is the weighted average of the partials of every evaluated
// rule, rounded half up. Null rules and rules missing from rules take no
// part, so the weights that do take part are implicitly renormalised.
func Aggregate(rules types.RuleSet, partials types.PartialSet, weights map[types.RuleName]int) int {
	num, den := 0, 0
	for _, name := range types.RuleOrder {
		v, ok := rules[name]
		if !ok || !v.Known() {
			continue
		}
		w := weights[name]
		if w <= 0 {
			continue
		}
		num += w * clampPercent(partials[name])
		den += w
	}
	if den == 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}

func clampPercent(v int) int {
	return max(0, min(v, 100))
}
