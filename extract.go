package subseq

import "slices"

// Match records a single matched element of a common subsequence as a
// pair of indices into the original sequences. For a Match m produced
// by a Table built from a and b, a[m.A] == b[m.B] always holds; the
// two indices are kept separately since the elements originate from
// different sequences.
type Match struct {
	A, B int
}

// LCS returns one longest common subsequence as index pairs ordered
// left to right with respect to both sequences. The result always has
// Len() elements. Backtracking ties are broken by moving towards
// smaller b indices so that repeated calls return identical results.
func (t *Table[T]) LCS() []Match {
	i, j := len(t.a), len(t.b)
	matches := make([]Match, 0, t.lengths[i][j])
	for i > 0 && j > 0 {
		switch {
		case t.a[i-1] == t.b[j-1]:
			matches = append(matches, Match{i - 1, j - 1})
			i, j = i-1, j-1
		case t.lengths[i][j-1] >= t.lengths[i-1][j]:
			j--
		default:
			i--
		}
	}
	slices.Reverse(matches)
	return matches
}

// ValuesA resolves matches to their element values in the first
// sequence.
func (t *Table[T]) ValuesA(matches []Match) []T {
	vals := make([]T, len(matches))
	for i, m := range matches {
		vals[i] = t.a[m.A]
	}
	return vals
}

// ValuesB resolves matches to their element values in the second
// sequence.
func (t *Table[T]) ValuesB(matches []Match) []T {
	vals := make([]T, len(matches))
	for i, m := range matches {
		vals[i] = t.b[m.B]
	}
	return vals
}
