package table

import (
	"fmt"
	"math"
	"sort"
)

// Match is a scored category.
type Match struct {
	Name  string
	Score float64
}

// Match returns the category whose stored vector has the highest cosine
// similarity to the query, together with that similarity. On an exact score
// tie the lexicographically first name wins, which keeps results
// deterministic. The query must have the table dimension.
func (t *Table) Match(query []float32) (Match, error) {
	if t.Len() == 0 {
		return Match{}, ErrEmptyTable
	}
	if len(query) != t.dim {
		return Match{}, fmt.Errorf("%w: query has %d values, table dimension is %d", ErrDimensionMismatch, len(query), t.dim)
	}
	best := Match{Name: t.names[0], Score: cosine(query, t.vectors[t.names[0]])}
	for _, name := range t.names[1:] {
		if score := cosine(query, t.vectors[name]); score > best.Score {
			best = Match{Name: name, Score: score}
		}
	}
	return best, nil
}

// MatchN returns up to n categories ordered by descending similarity, ties
// broken by name.
func (t *Table) MatchN(query []float32, n int) ([]Match, error) {
	if n <= 0 {
		return nil, fmt.Errorf("table: invalid match count %d", n)
	}
	if t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	if len(query) != t.dim {
		return nil, fmt.Errorf("%w: query has %d values, table dimension is %d", ErrDimensionMismatch, len(query), t.dim)
	}
	matches := make([]Match, 0, t.Len())
	for _, name := range t.names {
		matches = append(matches, Match{Name: name, Score: cosine(query, t.vectors[name])})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Name < matches[j].Name
	})
	if n > len(matches) {
		n = len(matches)
	}
	return matches[:n], nil
}

// cosine computes cosine similarity without assuming unit-normalized
// operands. A zero-magnitude operand yields similarity 0 rather than a
// division by zero.
func cosine(a, b []float32) float64 {
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2))
}
