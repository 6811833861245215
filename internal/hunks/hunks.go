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

// Package hunks groups edit operations into hunks, runs of consecutive operations together with
// the matching elements surrounding them. This is the bridge between the edit script produced by
// the core and renderers that want to show changes in context.
package hunks

import "znkr.io/editscript/internal/myers"

// Hunk describes a run of consecutive edit operations plus surrounding context.
type Hunk struct {
	X0, X1 int // covered range in x
	Y0, Y1 int // covered range in y
	Lo, Hi int // the operations ops[Lo:Hi] belonging to this hunk
}

// Find groups ops into hunks with up to context matching elements before and after each run of
// operations. Groups separated by at most 2*context matches are merged, so the context windows of
// the returned hunks never overlap.
//
// ops must be ordered along the edit path as produced by [myers.Script]; n and m are the lengths
// of the compared sequences.
func Find(ops []myers.Edit, n, m, context int) []Hunk {
	if len(ops) == 0 {
		return nil
	}

	var hunks []Hunk
	lo := 0                 // first operation of the current group
	sx, sy := start(ops[0]) // start of the current group
	ex, ey := end(ops[0])   // end of the current group so far
	prevEx := 0             // end of the previous group in x (0 for the first)
	flush := func(hi int) {
		// The number of matches available before resp. after a group is the same in x and y:
		// between two operations the edit path only travels diagonals. Clamping the x side alone
		// therefore keeps both ranges consistent.
		cb := min(context, sx-prevEx)
		ca := min(context, n-ex)
		hunks = append(hunks, Hunk{
			X0: sx - cb, X1: ex + ca,
			Y0: sy - cb, Y1: ey + ca,
			Lo: lo, Hi: hi,
		})
	}
	for i := 1; i < len(ops); i++ {
		bx, _ := start(ops[i])
		if bx-ex <= 2*context {
			ex, ey = end(ops[i])
			continue
		}
		flush(i)
		prevEx = ex
		lo = i
		sx, sy = start(ops[i])
		ex, ey = end(ops[i])
	}
	flush(len(ops))
	return hunks
}

// start returns the position of op in x and y: a deletion occupies index X of x while the edit
// path is at position Y of y, an insertion occupies index Y of y at position X of x.
func start(op myers.Edit) (x, y int) {
	return op.X, op.Y
}

// end returns the position immediately after op in x and y.
func end(op myers.Edit) (x, y int) {
	if op.Op == myers.Delete {
		return op.X + 1, op.Y
	}
	return op.X, op.Y + 1
}
