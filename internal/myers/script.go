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

// Op describes the kind of a single edit operation.
type Op uint8

const (
	Delete Op = iota // deletion of an element of x
	Insert           // insertion of an element of y
)

// Edit is a single edit operation expressed as positions into the compared sequences x and y.
//
// For Delete, X is the index of the deleted element in x and Y is the position the edit path has
// reached in y. For Insert, Y is the index of the inserted element in y and X is the position in x
// immediately preceding the insertion point. Positions can repeat across different kinds; a
// (position, kind) pair carries no uniqueness invariant.
type Edit struct {
	Op   Op
	X, Y int
}

// frame is a pending sub-problem covering x[xmin:xmax) and y[ymin:ymax).
type frame struct {
	xmin, xmax int
	ymin, ymax int
}

// Script computes a shortest edit script transforming x (length n) into y (length m), where eq
// reports whether x[i] == y[j]. The returned operations are ordered by their position on the edit
// path: operations of a prefix sub-problem always precede operations of the corresponding suffix
// sub-problem.
//
// If limit > 0 and no edit script with at most limit operations exists, Script returns
// [ErrLimit].
//
// The decomposition runs over an explicit work stack instead of recursing, so the call stack
// stays flat even for inputs with no common content.
func Script(n, m int, eq func(i, j int) bool, limit int) ([]Edit, error) {
	// Strip the common prefix and suffix. They contribute no operations and shrink every
	// following search.
	xmin, ymin := 0, 0
	xmax, ymax := n, m
	for xmin < xmax && ymin < ymax && eq(xmin, ymin) {
		xmin++
		ymin++
	}
	for xmax > xmin && ymax > ymin && eq(xmax-1, ymax-1) {
		xmax--
		ymax--
	}

	// If only one side remains, the edit distance is known without searching and the budget can
	// be checked up front. Otherwise the first middle snake search below determines the total
	// edit distance and checks the budget itself.
	if xmin == xmax || ymin == ymax {
		if d := (xmax - xmin) + (ymax - ymin); limit > 0 && d > limit {
			return nil, ErrLimit
		}
	}

	var ops []Edit
	stack := []frame{{xmin, xmax, ymin, ymax}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, m := f.xmax-f.xmin, f.ymax-f.ymin
		switch {
		case n == 0 && m == 0:
			// Nothing to do.

		case m == 0:
			// Only horizontal edges remain: everything in x[xmin:xmax) is deleted.
			for i := f.xmin; i < f.xmax; i++ {
				ops = append(ops, Edit{Op: Delete, X: i, Y: f.ymin})
			}

		case n == 0:
			// Only vertical edges remain: everything in y[ymin:ymax) is inserted.
			for j := f.ymin; j < f.ymax; j++ {
				ops = append(ops, Edit{Op: Insert, X: f.xmin, Y: j})
			}

		default:
			sub := func(i, j int) bool { return eq(f.xmin+i, f.ymin+j) }
			sn, err := findMiddleSnake(n, m, sub, limit)
			if err != nil {
				return nil, err
			}

			switch {
			case sn.d > 1 || sn.x != sn.u:
				// The edit graph can be subdivided at the snake. Since snakes lie on a single
				// diagonal, sn.x != sn.u is equivalent to the snake being non-empty in both
				// coordinates. The suffix is pushed first so that the prefix is resolved, and its
				// operations emitted, first.
				stack = append(stack,
					frame{f.xmin + sn.u, f.xmax, f.ymin + sn.v, f.ymax},
					frame{f.xmin, f.xmin + sn.x, f.ymin, f.ymin + sn.y},
				)

			case m > n:
				// At most one edit, adjacent to a snake covering all of x: the first n elements
				// of both sides match, the rest of y is a trailing insertion run.
				stack = append(stack, frame{f.xmin + n, f.xmin + n, f.ymin + n, f.ymax})

			case m < n:
				// Symmetric: the first m elements match, the rest of x is a trailing deletion run.
				stack = append(stack, frame{f.xmin + m, f.xmax, f.ymin + m, f.ymin + m})

			default:
				// m == n implies d == 0: the whole sub-problem is a single snake.
			}
		}
	}
	return ops, nil
}
