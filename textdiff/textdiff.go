// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package textdiff provides support for diff'ing text on a
// line-by-line basis using cloudeng.io/subseq.
package textdiff

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"

	"cloudeng.io/subseq"
	"cloudeng.io/subseq/codec"
)

// LineFNVHashDecoder decodes a byte slice into newline delimited
// blocks each of which is represented by a 64 bit hash obtained from
// fnv.New64a.
func LineFNVHashDecoder(data []byte) (string, int64, int) {
	if len(data) == 0 {
		return "", 0, 0
	}
	idx := bytes.Index(data, []byte{'\n'})
	if idx < 0 {
		idx = len(data)
	}
	h := fnv.New64a()
	h.Write(data[:idx])
	return string(data[:idx]), int64(h.Sum64()), idx + 1
}

// LineDecoder represents a decoder that can be used to split a byte
// stream into lines, recording the text and hash of every line it
// decodes.
type LineDecoder struct {
	lines  []string
	hashes []uint64
	fn     func([]byte) (string, int64, int)
}

// NewLineDecoder returns a new instance of LineDecoder.
func NewLineDecoder(fn func(data []byte) (string, int64, int)) *LineDecoder {
	return &LineDecoder{fn: fn}
}

// Decode can be used as the decode function when creating a new
// decoder using cloudeng.io/subseq/codec.NewDecoder.
func (ld *LineDecoder) Decode(data []byte) (int64, int) {
	line, sum, n := ld.fn(data)
	if n == 0 {
		return 0, 0
	}
	ld.lines = append(ld.lines, line)
	ld.hashes = append(ld.hashes, uint64(sum))
	return sum, n
}

// NumLines returns the number of lines decoded.
func (ld *LineDecoder) NumLines() int {
	return len(ld.lines)
}

// Line returns the i'th line and its hash.
func (ld *LineDecoder) Line(i int) (string, uint64) {
	return ld.lines[i], ld.hashes[i]
}

// Group represents a single diff 'group', that is a contiguous run of
// insertions and deletions bounded by unchanged lines.
type Group struct {
	// anchorA/anchorB are the number of lines of a and b preceding the
	// group, ie. the 1-based number of the last unchanged line before
	// it in each input.
	anchorA, anchorB          int
	insertedLines             []int // indices into the lines of b
	deletedLines              []int // indices into the lines of a
	insertedText, deletedText string
}

func lineRange(lines []int) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%d", lines[0]+1)
	default:
		return fmt.Sprintf("%d,%d", lines[0]+1, lines[len(lines)-1]+1)
	}
}

// Summary returns a summary message in the style of the unix/linux
// diff command line tool, eg. 1,2d0 or 2a3 or 2c2.
func (g *Group) Summary() string {
	switch {
	case len(g.deletedLines) == 0:
		return fmt.Sprintf("%da%s", g.anchorA, lineRange(g.insertedLines))
	case len(g.insertedLines) == 0:
		return fmt.Sprintf("%sd%d", lineRange(g.deletedLines), g.anchorB)
	default:
		return fmt.Sprintf("%sc%s", lineRange(g.deletedLines), lineRange(g.insertedLines))
	}
}

// Inserted returns the text to be inserted.
func (g *Group) Inserted() string {
	return g.insertedText
}

// Deleted returns the text that would be deleted.
func (g *Group) Deleted() string {
	return g.deletedText
}

// Diff represents the differences between two byte slices on a
// line-by-line basis.
type Diff struct {
	linesA, linesB []string
	groups         []*Group
}

// Same returns true if there were no diffs.
func (d *Diff) Same() bool {
	return len(d.groups) == 0
}

// NumGroups returns the number of 'diff groups' found.
func (d *Diff) NumGroups() int {
	return len(d.groups)
}

// Group returns the i'th 'diff group'.
func (d *Diff) Group(i int) *Group {
	return d.groups[i]
}

func text(orig []string, lines []int) string {
	out := strings.Builder{}
	for _, l := range lines {
		out.WriteString(orig[l])
		out.WriteString("\n")
	}
	return out.String()
}

// Runes returns the edit script for the two strings on a rune-by-rune
// basis.
func Runes(a, b string) subseq.EditScript[rune] {
	return subseq.New([]rune(a), []rune(b)).SES()
}

// Lines diffs the supplied byte slices on a line-by-line basis. Lines
// are compared via their fnv 64 bit hashes.
func Lines(a, b []byte) *Diff {
	lda, ldb := NewLineDecoder(LineFNVHashDecoder), NewLineDecoder(LineFNVHashDecoder)
	da := codec.NewDecoder(lda.Decode).Decode(a)
	db := codec.NewDecoder(ldb.Decode).Decode(b)
	script := subseq.New(da, db).SES()

	diff := &Diff{linesA: lda.lines, linesB: ldb.lines}
	var group *Group
	posA, posB := 0, 0
	for _, edit := range script {
		switch edit.Op {
		case subseq.Identical:
			if group != nil {
				diff.groups = append(diff.groups, group)
				group = nil
			}
			posA, posB = posA+1, posB+1
		case subseq.Insert:
			if group == nil {
				group = &Group{anchorA: posA, anchorB: posB}
			}
			group.insertedLines = append(group.insertedLines, posB)
			posB++
		case subseq.Delete:
			if group == nil {
				group = &Group{anchorA: posA, anchorB: posB}
			}
			group.deletedLines = append(group.deletedLines, posA)
			posA++
		}
	}
	if group != nil {
		diff.groups = append(diff.groups, group)
	}
	for _, g := range diff.groups {
		g.insertedText = text(diff.linesB, g.insertedLines)
		g.deletedText = text(diff.linesA, g.deletedLines)
	}
	return diff
}
