// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package benchmarks compares this module against other diffing libraries. It lives in a separate
// module to keep their dependencies out of the main module.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/editscript/textdiff"
)

// Impl is a line-based diffing implementation producing a unified diff or something close enough
// to one to compare edit counts.
type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{Name: "editscript", Diff: diffEditscript},
	{Name: "go-internal", Diff: diffGoInternal},
	{Name: "diffmatchpatch", Diff: diffDMP},
	{Name: "godebug", Diff: diffGodebug},
	{Name: "mb0", Diff: diffMB0},
	{Name: "udiff", Diff: diffUdiff},
}

func diffEditscript(x, y []byte) []byte {
	return textdiff.UnifiedBytes(x, y, nil)
}

func diffGoInternal(x, y []byte) []byte {
	return gointernal.Diff("x", x, "y", y)
}

// diffDMP does not produce a unified diff, but the output is close enough to count edits.
func diffDMP(x, y []byte) []byte {
	dmp := diffmatchpatch.New()
	rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
	diffs := dmp.DiffMainRunes(rx, ry, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var buf bytes.Buffer
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
			prefix = " "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	return buf.Bytes()
}

func diffGodebug(x, y []byte) []byte {
	return []byte(godebug.Diff(string(x), string(y)))
}

func diffMB0(x, y []byte) []byte {
	d := mb0lines{
		x: bytes.SplitAfter(x, []byte("\n")),
		y: bytes.SplitAfter(y, []byte("\n")),
	}
	changes := mb0.Diff(len(d.x), len(d.y), d)
	var buf bytes.Buffer
	a, b := 0, 0
	for _, ch := range changes {
		for a < ch.A {
			buf.WriteString(" ")
			buf.Write(d.x[a])
			a++
			b++
		}
		for i := range ch.Del {
			buf.WriteString("-")
			buf.Write(d.x[ch.A+i])
			a++
		}
		for i := range ch.Ins {
			buf.WriteString("+")
			buf.Write(d.y[ch.B+i])
			b++
		}
	}
	for a < len(d.x) {
		buf.WriteString(" ")
		buf.Write(d.x[a])
		a++
	}
	return buf.Bytes()
}

func diffUdiff(x, y []byte) []byte {
	return []byte(udiff.Unified("x", "y", string(x), string(y)))
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
