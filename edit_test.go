// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package subseq_test

import (
	"strings"
	"testing"

	"cloudeng.io/subseq"
	"github.com/google/go-cmp/cmp"
)

func TestEditScript(t *testing.T) {
	a := []string{"a", "x", "b"}
	b := []string{"a", "b", "c"}
	script := subseq.New(a, b).SES()
	want := subseq.EditScript[string]{
		{subseq.Identical, 0, 0, "a"},
		{subseq.Delete, 1, 0, "x"},
		{subseq.Identical, 2, 1, "b"},
		{subseq.Insert, 2, 2, "c"},
	}
	if diff := cmp.Diff(script, want); diff != "" {
		t.Errorf("unexpected script: %v", diff)
	}
	if got, want := script.String(), "= a@[0 == 0], - x@[1], = b@[2 == 1], + c@[2 < 2]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if diff := cmp.Diff(script.Apply(a), b); diff != "" {
		t.Errorf("apply: %v", diff)
	}
	if diff := cmp.Diff(script.Reverse().Apply(b), a); diff != "" {
		t.Errorf("reverse apply: %v", diff)
	}
	if diff := cmp.Diff(script.Reverse().Reverse(), script); diff != "" {
		t.Errorf("double reverse: %v", diff)
	}
}

func TestEditScriptOrder(t *testing.T) {
	// Replaced regions emit their deletions before their insertions.
	a, b := runes("aXc"), runes("aYc")
	script := subseq.New(a, b).SES()
	ops := make([]subseq.EditOp, len(script))
	for i, e := range script {
		ops[i] = e.Op
	}
	want := []subseq.EditOp{subseq.Identical, subseq.Delete, subseq.Insert, subseq.Identical}
	if diff := cmp.Diff(ops, want); diff != "" {
		t.Errorf("unexpected ops: %v", diff)
	}
}

func TestFormatHorizontal(t *testing.T) {
	a, b := runes("axb"), runes("abc")
	script := subseq.New(a, b).SES()
	out := &strings.Builder{}
	script.FormatHorizontal(out, a)
	if got, want := out.String(), "a bc\n|-|+\n x  \n"; got != want {
		t.Errorf("got\n%v, want\n%v", got, want)
	}
}

func TestFormatVertical(t *testing.T) {
	a, b := runes("axb"), runes("abc")
	script := subseq.New(a, b).SES()
	out := &strings.Builder{}
	script.FormatVertical(out, a)
	if got, want := out.String(), "    a\n-   x\n    b\n+   c\n"; got != want {
		t.Errorf("got\n%v, want\n%v", got, want)
	}
}
