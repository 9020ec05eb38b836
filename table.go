// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package subseq provides a dynamic programming implementation of the
// longest common subsequence (LCS) problem and of the edit scripts
// that can be derived from it.
// See https://en.wikipedia.org/wiki/Longest_common_subsequence_problem.
// The full table of prefix lengths is retained which allows for
// enumerating every distinct LCS rather than just the first one found;
// when only a single LCS or edit script is needed and the inputs are
// large, an O(ND) style algorithm is likely a better choice.
package subseq

import "fmt"

// MaxSequenceLength represents the maximum length of the sequences
// that a Table can be built for.
const MaxSequenceLength = 1 << 27

// Table represents the (len(a)+1) x (len(b)+1) table of longest common
// subsequence lengths for every pair of prefixes of the two sequences
// it was built from. Table borrows both sequences for its lifetime and
// never copies their elements; results are returned as indices into
// them. A Table is never written to after construction and hence may
// be shared by concurrent extractions without locking.
type Table[T comparable] struct {
	a, b    []T
	lengths [][]int32
}

// New builds the length table for a and b. Construction always
// succeeds for any two finite sequences, including empty ones, and
// costs O(len(a)*len(b)) time and space. Sequences longer than
// MaxSequenceLength cause a panic.
func New[T comparable](a, b []T) *Table[T] {
	if len(a) > MaxSequenceLength {
		panic(fmt.Sprintf("a is too large: %v > %v", len(a), MaxSequenceLength))
	}
	if len(b) > MaxSequenceLength {
		panic(fmt.Sprintf("b is too large: %v > %v", len(b), MaxSequenceLength))
	}
	// The extra 0th row/column represents the empty prefix and avoids
	// the need for special casing the initial comparisons.
	lengths := make([][]int32, len(a)+1)
	for i := range lengths {
		lengths[i] = make([]int32, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				lengths[i][j] = lengths[i-1][j-1] + 1
				continue
			}
			lengths[i][j] = max(lengths[i-1][j], lengths[i][j-1])
		}
	}
	return &Table[T]{a: a, b: b, lengths: lengths}
}

// Len returns the length of the longest common subsequence.
func (t *Table[T]) Len() int {
	return int(t.lengths[len(t.a)][len(t.b)])
}

// ItemA returns the i'th element of the first sequence.
func (t *Table[T]) ItemA(i int) T {
	return t.a[i]
}

// ItemB returns the j'th element of the second sequence.
func (t *Table[T]) ItemB(j int) T {
	return t.b[j]
}
