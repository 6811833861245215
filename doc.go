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

// Package editscript computes minimal edit scripts: the shortest sequence of insertions and
// deletions that transforms one ordered sequence into another.
//
// The main functions are [Diff] for slices of comparable elements, [DiffFunc] for slices with a
// custom equality function, and [DiffSeq] for arbitrary indexable containers implementing
// [Sequence]. All of them return the same thing: an ordered list of [Edit] operations, each
// attributable to a position in the old sequence (for deletions) or the new sequence (for
// insertions), so that a consumer can interleave them positionally with the unchanged elements.
//
// The implementation is Myers' O(ND) algorithm in its linear space variant: a bidirectional
// search finds a middle snake that splits the problem, and the split is applied recursively. The
// result is always minimal: the number of operations equals len(x) + len(y) - 2·LCS(x, y). Output
// is deterministic, identical inputs always produce the identical edit script.
//
// Each call allocates its own search state, so concurrent calls on independent inputs are safe.
//
// Note: For a line-by-line diff of text, please see [znkr.io/editscript/textdiff].
//
// [znkr.io/editscript/textdiff]: https://pkg.go.dev/znkr.io/editscript/textdiff
package editscript
