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

// Package myers computes shortest edit scripts using Myers' algorithm.
//
// The implementation uses the linear space refinement described in section 4b of the paper: a
// bidirectional search finds a "middle snake", a possibly empty run of diagonal edges through
// which some optimal edit path must pass, and the problem is then split at that snake and solved
// divide-and-conquer style.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the edit graph, the grid of size (N+1)×(M+1) modelling all
// possible edits that transform x (length N) into y (length M). Moving right from (s, t) to
// (s+1, t) deletes x[s], moving down to (s, t+1) inserts y[t], and whenever x[s] == y[t] a free
// diagonal edge connects (s, t) to (s+1, t+1). A shortest edit script corresponds to a path from
// (0, 0) to (N, M) with the fewest non-diagonal edges; that count is the edit distance D.
//
// A d-path is a path with exactly d non-diagonal edges. The diagonal k of a point is k = s - t.
// Two properties of d-paths drive the search:
//
//   - A d-path must end on a diagonal k in {-d, -d+2, ..., d}. In particular, d-paths end on odd
//     diagonals when d is odd and on even diagonals when d is even.
//
//   - A furthest reaching d-path on diagonal k extends a furthest reaching (d-1)-path on diagonal
//     k-1 with a horizontal edge, or one on diagonal k+1 with a vertical edge, followed (either
//     way) by the longest possible run of diagonal edges.
//
// This yields a greedy search that only needs, per direction, a single array mapping each
// diagonal k to the furthest reaching x-coordinate on it. Running the search simultaneously
// forwards from (0, 0) and backwards from (N, M) until the two frontiers overlap finds the middle
// snake of an optimal path after at most ⌈(N+M)/2⌉ rounds, using O(N+M) space.
//
// The middle snake splits the edit graph into a prefix rectangle, a free diagonal run, and a
// suffix rectangle. Recursing into the prefix and suffix until each resolves to a pure insertion
// or deletion run produces the edit script itself; [Script] performs this decomposition with an
// explicit work stack so adversarial inputs cannot exhaust the goroutine stack.
//
// All search state is allocated per call and sized to the sub-problem at hand, so independent
// calls are safe to run concurrently.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
