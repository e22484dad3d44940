package parser

import "strings"

// MatchThreshold is the minimum score the best candidate must reach before a
// fuzzy lookup counts as resolved.
const MatchThreshold = 5

// NameMatch is the winning candidate of a fuzzy name lookup.
type NameMatch struct {
	Name  string
	Index int // position in the candidate slice
	Score int
}

// BestNameMatch scores free text against a registry of known names and
// returns the highest-scoring candidate at or above MatchThreshold. Ties go
// to the earlier registry entry. The scheme is deliberately simple token
// arithmetic, not a general string-distance metric, so scores stay auditable.
func BestNameMatch(query string, candidates []string) (NameMatch, bool) {
	queryTokens := nameTokens(query)
	if len(queryTokens) == 0 {
		return NameMatch{}, false
	}

	best := NameMatch{Index: -1}
	for i, cand := range candidates {
		score := scoreName(queryTokens, nameTokens(cand))
		if score > best.Score {
			best = NameMatch{Name: cand, Index: i, Score: score}
		}
	}

	if best.Index < 0 || best.Score < MatchThreshold {
		return NameMatch{}, false
	}
	return best, true
}

// scoreName awards +10 per exact token match, +5 per prefix match, +2 per
// non-prefix substring match, and a +5 bonus when the first tokens agree.
func scoreName(query, cand []string) int {
	if len(cand) == 0 {
		return 0
	}

	score := 0
	for _, qt := range query {
		bestPair := 0
		for _, ct := range cand {
			switch {
			case qt == ct:
				bestPair = max(bestPair, 10)
			case strings.HasPrefix(ct, qt) || strings.HasPrefix(qt, ct):
				bestPair = max(bestPair, 5)
			case strings.Contains(ct, qt) || strings.Contains(qt, ct):
				bestPair = max(bestPair, 2)
			}
		}
		score += bestPair
	}

	if query[0] == cand[0] {
		score += 5
	}
	return score
}

// nameTokens lowercases and splits on whitespace, dropping tokens that carry
// no letters or digits (bare punctuation such as "-").
func nameTokens(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:-()")
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
