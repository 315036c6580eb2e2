// Package suggest ranks "did you mean" candidates for misspelled names.
package suggest

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxEditDistance is the largest Levenshtein distance still worth offering.
const MaxEditDistance = 2

// Rank returns up to limit candidates resembling input, best first.
// Candidates that contain input as a case-insensitive subsequence rank ahead
// of those within MaxEditDistance edits.
func Rank(input string, candidates []string, limit int) []string {
	input = strings.TrimSpace(input)
	if input == "" || limit <= 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(input, candidates)
	sort.Stable(ranks)

	out := make([]string, 0, limit)
	for _, r := range ranks {
		if len(out) == limit {
			return out
		}
		out = append(out, r.Target)
	}

	type near struct {
		name string
		dist int
	}
	var typos []near
	folded := strings.ToLower(input)
	for _, c := range candidates {
		if slices.Contains(out, c) {
			continue
		}
		if d := fuzzy.LevenshteinDistance(folded, strings.ToLower(c)); d <= MaxEditDistance {
			typos = append(typos, near{c, d})
		}
	}
	slices.SortStableFunc(typos, func(a, b near) int { return a.dist - b.dist })
	for _, n := range typos {
		if len(out) == limit {
			break
		}
		out = append(out, n.name)
	}
	return out
}
