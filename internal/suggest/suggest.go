// Package suggest scores an unresolved name against a set of candidates
// and proposes a "did you mean" correction for Name-error diagnostics
// (§4.6 NEW of SPEC_FULL.md).
package suggest

import "github.com/xrash/smetrics"

// Threshold is the minimum Jaro-Winkler similarity (0..1) a candidate
// must clear to be suggested.
const Threshold = 0.75

// Best returns the candidate most similar to name by Jaro-Winkler
// distance, and whether it clears Threshold. Ties keep the first
// candidate encountered.
func Best(name string, candidates []string) (string, bool) {
	var (
		bestName  string
		bestScore float64
	)
	for _, c := range candidates {
		if c == name {
			continue
		}
		score := smetrics.JaroWinkler(name, c, 0.7, 4)
		if score > bestScore {
			bestScore = score
			bestName = c
		}
	}
	return bestName, bestScore >= Threshold
}

// Hint formats the ", did you mean 'x'?" suffix for an error message, or
// "" if no candidate clears Threshold.
func Hint(name string, candidates []string) string {
	if best, ok := Best(name, candidates); ok {
		return ", did you mean '" + best + "'?"
	}
	return ""
}
