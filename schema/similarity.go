package schema

import "strings"

const (
	exactScore     = 1.0
	substringScore = 0.90

	// Levenshtein similarities below this are indistinguishable from
	// coincidence on short headers and count as no evidence at all.
	fuzzyFloor = 0.65
)

// NameScorer scores a raw header against a field's variant list using
// three tiers: exact match, substring containment, and normalized
// Levenshtein similarity.
type NameScorer struct{}

// NewNameScorer creates a name scorer.
func NewNameScorer() *NameScorer {
	return &NameScorer{}
}

// Score returns the best similarity in [0,1] between the header and any
// of the variants. An exact match (after normalization) short-circuits
// to 1.0.
func (ns *NameScorer) Score(header string, variants []string) float64 {
	normHeader := Normalize(header)

	best := 0.0
	for _, variant := range variants {
		normVariant := Normalize(variant)
		score := ns.scoreVariant(normHeader, normVariant)
		if score > best {
			best = score
		}
		if best >= exactScore {
			break
		}
	}
	return best
}

func (ns *NameScorer) scoreVariant(header, variant string) float64 {
	if header == "" || variant == "" {
		return 0
	}
	if header == variant {
		return exactScore
	}
	if strings.Contains(header, variant) || strings.Contains(variant, header) {
		return substringScore
	}

	sim := levenshteinSimilarity(header, variant)
	if sim < fuzzyFloor {
		return 0
	}
	return sim
}

// levenshteinSimilarity converts edit distance to a similarity in [0,1]:
// 1 - distance/maxLen, floored at 0.
func levenshteinSimilarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 0
	}

	sim := 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}

// levenshtein computes the classic dynamic-programming edit distance
// (insert, delete, substitute, unit cost each) over two rune slices,
// keeping two rows of the table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
