// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package subseq

import (
	"fmt"
	"strings"
)

// AllLCS returns every distinct longest common subsequence. Each
// result has Len() elements and the results are pairwise distinct by
// element value: index paths through the table that select identical
// value sequences are collapsed into one. The number of distinct
// results can grow exponentially with the input sizes for inputs with
// many repeated elements; this is inherent to the problem and callers
// must bound their input sizes accordingly.
func (t *Table[T]) AllLCS() [][]Match {
	e := &enumerator[T]{
		t:     t,
		cache: make([][][]Match, (len(t.a)+1)*(len(t.b)+1)),
	}
	return e.at(len(t.a), len(t.b))
}

// enumerator holds the per-call memoization state for AllLCS. The
// cache maps a table cursor to the set of prefix subsequences already
// computed for it; without it the backtracking degenerates to
// exponential time on inputs with many ties. The cache lives on the
// enumerator rather than the Table so that the Table stays read-only.
type enumerator[T comparable] struct {
	t     *Table[T]
	cache [][][]Match // indexed by i*(len(b)+1)+j
}

// Cached results are treated as immutable, extensions always copy.
func (e *enumerator[T]) at(i, j int) [][]Match {
	idx := i*(len(e.t.b)+1) + j
	if cached := e.cache[idx]; cached != nil {
		return cached
	}
	result := e.backtrack(i, j)
	e.cache[idx] = result
	return result
}

func (e *enumerator[T]) backtrack(i, j int) [][]Match {
	if i == 0 || j == 0 {
		return [][]Match{nil}
	}
	t := e.t
	if t.a[i-1] == t.b[j-1] {
		// Matches are never skipped: extending the diagonal is always
		// at least as long as either non-diagonal alternative.
		prefixes := e.at(i-1, j-1)
		extended := make([][]Match, len(prefixes))
		for k, p := range prefixes {
			ext := make([]Match, len(p), len(p)+1)
			copy(ext, p)
			extended[k] = append(ext, Match{i - 1, j - 1})
		}
		return extended
	}
	left := t.lengths[i][j-1] == t.lengths[i][j]
	up := t.lengths[i-1][j] == t.lengths[i][j]
	switch {
	case left && !up:
		return e.at(i, j-1)
	case up && !left:
		return e.at(i-1, j)
	}
	// Both predecessors are maximal, explore both and deduplicate by
	// value since the two branches can select identical subsequences
	// via different indices.
	var merged [][]Match
	seen := map[string][][]Match{}
	for _, paths := range [][][]Match{e.at(i, j-1), e.at(i-1, j)} {
		for _, p := range paths {
			key := e.key(p)
			if e.containsValues(seen[key], p) {
				continue
			}
			seen[key] = append(seen[key], p)
			merged = append(merged, p)
		}
	}
	return merged
}

// key renders the element values selected by matches. Rendered keys can
// collide for distinct values (the rendering of one value may contain
// the separator), so a key only buckets candidates; containsValues
// decides equality element-wise.
func (e *enumerator[T]) key(matches []Match) string {
	sb := &strings.Builder{}
	for _, m := range matches {
		fmt.Fprintf(sb, "%v\x1f", e.t.a[m.A])
	}
	return sb.String()
}

func (e *enumerator[T]) containsValues(candidates [][]Match, p []Match) bool {
	for _, c := range candidates {
		if e.equalValues(c, p) {
			return true
		}
	}
	return false
}

func (e *enumerator[T]) equalValues(p, q []Match) bool {
	if len(p) != len(q) {
		return false
	}
	for k := range p {
		if e.t.a[p[k].A] != e.t.a[q[k].A] {
			return false
		}
	}
	return true
}
