package subseq_test

import (
	"sort"
	"strings"
	"testing"

	"cloudeng.io/subseq"
	"github.com/google/go-cmp/cmp"
)

func allValues(tbl *subseq.Table[rune]) []string {
	vals := []string{}
	for _, ms := range tbl.AllLCS() {
		vals = append(vals, string(tbl.ValuesA(ms)))
	}
	sort.Strings(vals)
	return vals
}

func TestAllLCS(t *testing.T) {
	for i, tc := range []struct {
		a, b string
		want []string
	}{
		// Identical values reached via different index paths collapse
		// into a single result.
		{"aa", "a", []string{"a"}},
		{"aaa", "aa", []string{"aa"}},
		{"aba", "bab", []string{"ab", "ba"}},
		{"AGCAT", "GAC", []string{"AC", "GA", "GC"}},
		{"", "", []string{""}},
	} {
		got := allValues(subseq.New(runes(tc.a), runes(tc.b)))
		if diff := cmp.Diff(got, tc.want); diff != "" {
			t.Errorf("%v: %v", i, diff)
		}
	}
}

func TestAllLCSValueEquality(t *testing.T) {
	// Elements whose rendered form contains the internal key separator
	// must still be deduplicated by value, not by rendering.
	a := []string{"a\x1f", "b", "a", "\x1fb"}
	b := []string{"a", "\x1fb", "a\x1f", "b"}
	tbl := subseq.New(a, b)
	got := [][]string{}
	for _, ms := range tbl.AllLCS() {
		if gotLen, want := len(ms), tbl.Len(); gotLen != want {
			t.Errorf("got %v, want %v", gotLen, want)
		}
		got = append(got, tbl.ValuesA(ms))
	}
	sortByValues(got)
	want := [][]string{{"a", "\x1fb"}, {"a\x1f", "b"}}
	sortByValues(want)
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("unexpected subsequences: %v", diff)
	}
}

func TestAllLCSPathological(t *testing.T) {
	// Inputs with many ties; without memoization the backtracking is
	// exponential in the input length, with it this completes quickly.
	// The number of distinct results is inherently large.
	a, b := runes(strings.Repeat("ab", 8)), runes(strings.Repeat("ba", 8))
	tbl := subseq.New(a, b)
	all := tbl.AllLCS()
	if len(all) == 0 {
		t.Fatal("no subsequences found")
	}
	seen := map[string]bool{}
	for _, ms := range all {
		if got, want := len(ms), tbl.Len(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		key := string(tbl.ValuesA(ms))
		if seen[key] {
			t.Errorf("duplicate subsequence %q", key)
		}
		seen[key] = true
	}
}
