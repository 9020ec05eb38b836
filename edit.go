// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package subseq

import (
	"fmt"
	"slices"
	"strings"
)

// EditOp represents an edit operation.
type EditOp int

// Values for EditOp.
const (
	Insert EditOp = iota
	Delete
	Identical
)

// Edit represents a single edit.
// For deletions, an edit specifies the index in the original (A)
// sequence of the value to be deleted, as well as the value itself so
// that scripts can be reversed.
// For insertions, an edit specifies the new value, its index in the
// new (B) sequence and the index in the original sequence that the new
// value is to be inserted at, immediately after the existing value if
// that value was not deleted.
// A third operation identifies identical values, ie. the members of
// the LCS and their positions in both sequences. This allows the LCS
// to be retrieved from an edit script.
type Edit[T comparable] struct {
	Op   EditOp
	A, B int
	Val  T
}

// EditScript represents a series of Edits. Filtering a script to its
// Identical and Delete operations replays the original sequence in
// order; filtering to Identical and Insert replays the new sequence in
// order.
type EditScript[T comparable] []Edit[T]

// SES returns the shortest edit script for transforming a into b. It
// is derived from the same backtrack as LCS, with the same tie-break
// policy, but emitting an Edit for every step rather than only for
// matches; consequently the Identical edits of the script are exactly
// the matches returned by LCS.
func (t *Table[T]) SES() EditScript[T] {
	i, j := len(t.a), len(t.b)
	script := make(EditScript[T], 0, i+j)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && t.a[i-1] == t.b[j-1]:
			script = append(script, Edit[T]{Identical, i - 1, j - 1, t.b[j-1]})
			i, j = i-1, j-1
		case j > 0 && (i == 0 || t.lengths[i][j-1] >= t.lengths[i-1][j]):
			script = append(script, Edit[T]{Insert, floor0(i - 1), j - 1, t.b[j-1]})
			j--
		default:
			script = append(script, Edit[T]{Delete, i - 1, floor0(j - 1), t.a[i-1]})
			i--
		}
	}
	slices.Reverse(script)
	return script
}

func floor0(x int) int {
	if x < 0 {
		return 0
	}
	return x
}

var opStr = map[EditOp]string{
	Insert:    "+",
	Delete:    "-",
	Identical: "=",
}

// String implements stringer.
func (es EditScript[T]) String() string {
	out := &strings.Builder{}
	for i, e := range es {
		out.WriteString(opStr[e.Op])
		switch e.Op {
		case Insert:
			fmt.Fprintf(out, " %v@[%v < %v]", e.Val, e.A, e.B)
		case Identical:
			fmt.Fprintf(out, " %v@[%v == %v]", e.Val, e.A, e.B)
		case Delete:
			fmt.Fprintf(out, " %v@[%v]", e.Val, e.A)
		}
		if i < len(es)-1 {
			out.WriteString(", ")
		}
	}
	return out.String()
}

// Apply transforms the original sequence to the new one by replaying
// the edit script.
func (es EditScript[T]) Apply(a []T) []T {
	b := make([]T, 0, len(es))
	for _, e := range es {
		switch e.Op {
		case Insert:
			b = append(b, e.Val)
		case Identical:
			b = append(b, a[e.A])
		}
	}
	return b
}

// Reverse returns a new edit script that is the inverse of the one
// supplied. That is, if the original script would transform A to B,
// then the result of this function will transform B to A.
func (es EditScript[T]) Reverse() EditScript[T] {
	rev := make(EditScript[T], len(es))
	for i, e := range es {
		switch e.Op {
		case Identical:
			rev[i] = Edit[T]{Identical, e.B, e.A, e.Val}
		case Insert:
			rev[i] = Edit[T]{Delete, e.B, e.A, e.Val}
		case Delete:
			rev[i] = Edit[T]{Insert, e.B, e.A, e.Val}
		}
	}
	return rev
}
