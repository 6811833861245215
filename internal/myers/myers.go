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

package myers

import "errors"

// ErrLimit is returned when a caller-supplied edit budget is exhausted before the forward and
// backward searches meet, i.e. there is no edit script within the budget.
var ErrLimit = errors.New("edit distance exceeds limit")

// varray maps a diagonal k in [-max, max] to the furthest reaching x-coordinate of a d-path on
// that diagonal. The offset v0 translates the negative half of the key range into indices of the
// backing slice.
type varray struct {
	v  []int
	v0 int
}

func (v varray) at(k int) int { return v.v[v.v0+k] }
func (v varray) set(k, x int) { v.v[v.v0+k] = x }

// newVArrays allocates the forward and backward diagonal arrays for a search over an edit graph
// with max = n + m diagonals, carved out of a single allocation. The arrays are local to one
// search; they are never shared between sub-problems or concurrent calls.
func newVArrays(max int) (vf, vb varray) {
	vlen := 2*max + 1
	buf := make([]int, 2*vlen)
	vf = varray{buf[:vlen], max}
	vb = varray{buf[vlen:], max}
	return vf, vb
}

// snake describes the result of a middle snake search: the edit distance d of the sub-problem and
// a run of diagonal edges from (x, y) to (u, v) through which some optimal edit path passes.
//
// x - y == u - v always holds, both equal the diagonal the snake was found on. (x, y) == (u, v) is
// legal and means a zero-length snake: d <= 1 with the edit immediately adjacent to the split
// point.
type snake struct {
	d    int
	x, y int
	u, v int
}

// findMiddleSnake runs the bidirectional greedy search over the edit graph of x (length n) and y
// (length m) and returns the edit distance together with a middle snake. eq reports whether
// x[i] == y[j].
//
// If limit > 0 the search stops as soon as the edit distance provably exceeds limit and returns
// [ErrLimit].
//
// n and m must not both be zero. Runs in O((n+m)·d) time and O(n+m) space.
func findMiddleSnake(n, m int, eq func(i, j int) bool, limit int) (snake, error) {
	delta := n - m
	max := n + m
	vf, vb := newVArrays(max)

	// Seed the searches. The forward search starts logically at (0, -1), the backward search at
	// (n, m+1); both are represented as x = 0 on diagonal k = 1 of their respective arrays.
	vf.set(1, 0)
	vb.set(1, 0)

	// An optimal path has at most ⌈max/2⌉ non-diagonal edges per direction, so the searches are
	// guaranteed to meet within that many rounds.
	odd := delta%2 != 0
	half := (max + 1) / 2
	for d := 0; d <= half; d++ {
		if limit > 0 && 2*d-1 > limit {
			return snake{}, ErrLimit
		}

		// Forward round: compute the furthest reaching d-path for every diagonal k reachable with
		// d non-diagonal edges.
		for k := -d; k <= d; k += 2 {
			// Extend the better of the furthest reaching (d-1)-paths on the neighboring
			// diagonals: taking the larger of vf[k-1]+1 and vf[k+1] maximizes reach and makes the
			// tie-break deterministic. The k == ±d guards also keep the reads inside [-max, max].
			var x int
			if k == -d || k != d && vf.at(k-1) < vf.at(k+1) {
				x = vf.at(k + 1)
			} else {
				x = vf.at(k-1) + 1
			}
			y := x - k

			// Follow the free diagonal edges as far as possible, remembering where the snake
			// entered the diagonal.
			x0, y0 := x, y
			for x < n && y < m && eq(x, y) {
				x++
				y++
			}
			vf.set(k, x)

			// When delta is odd the searches first meet on a forward round. kb is the backward
			// diagonal corresponding to k; the overlap test is only meaningful once the backward
			// search has explored kb.
			if kb := -(k - delta); odd && -(d-1) <= kb && kb <= d-1 && x+vb.at(kb) >= n {
				return snake{d: 2*d - 1, x: x0, y: y0, u: x, v: y}, nil
			}
		}

		// If the forward round found nothing, every remaining outcome has at least 2d edits.
		if limit > 0 && 2*d > limit {
			return snake{}, ErrLimit
		}

		// Backward round, symmetric to the forward round but walking the reversed sequences. The
		// k values here have the opposite sign of the paper's; this makes both directions share
		// the same tie-break rule.
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || k != d && vb.at(k-1) < vb.at(k+1) {
				x = vb.at(k + 1)
			} else {
				x = vb.at(k-1) + 1
			}
			y := x - k

			x0, y0 := x, y
			for x < n && y < m && eq(n-x-1, m-y-1) {
				x++
				y++
			}
			vb.set(k, x)

			// When delta is even the searches first meet on a backward round. On success the
			// coordinates are translated back into the forward orientation.
			if kf := -(k - delta); !odd && -d <= kf && kf <= d && x+vf.at(kf) >= n {
				return snake{d: 2 * d, x: n - x, y: m - y, u: n - x0, v: m - y0}, nil
			}
		}
	}

	// The mathematics guarantees a meeting point within ⌈(n+m)/2⌉ rounds for any finite inputs,
	// so reaching this point means the search logic itself is broken.
	panic("myers: middle snake search exhausted its bound without the searches meeting")
}
