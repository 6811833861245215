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

package editscript

import (
	"cmp"
	"errors"
	"fmt"

	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/myers"
)

var (
	// ErrInvalidArgument is returned when an input sequence is malformed, e.g. reports a negative
	// length. It is detected before any computation begins.
	ErrInvalidArgument = errors.New("editscript: invalid argument")

	// ErrLimitExceeded is returned when [Limit] is in effect and no edit script within the limit
	// exists.
	ErrLimitExceeded = errors.New("editscript: edit distance exceeds limit")
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Delete Op = iota // A deletion of an element of the old sequence
	Insert           // An insertion of an element of the new sequence
)

// Edit describes a single edit of an edit script.
//
//   - For Delete, PosX is the index of the deleted element in the old sequence and Val is that
//     element. PosY is the position the edit path has reached in the new sequence.
//   - For Insert, PosY is the index of the inserted element in the new sequence and Val is that
//     element. PosX is the position in the old sequence immediately preceding the insertion
//     point.
//
// Positions can legitimately repeat across different kinds: an insertion and a deletion may share
// a position.
type Edit[T any] struct {
	Op         Op
	PosX, PosY int
	Val        T
}

// Diff compares the contents of x and y and returns a shortest edit script that transforms x
// into y.
//
// The script is ordered along the edit path: operations on earlier parts of the inputs precede
// operations on later parts. If x and y are identical, the output has length zero.
//
// The following option is supported: [Limit].
func Diff[T comparable](x, y []T, opts ...Option) ([]Edit[T], error) {
	cfg := config.FromOptions(opts, config.Limit)
	ops, err := myers.Script(len(x), len(y), func(i, j int) bool { return x[i] == y[j] }, cfg.Limit)
	if err != nil {
		return nil, limitError(cfg.Limit)
	}
	return convert(ops, func(i int) T { return x[i] }, func(j int) T { return y[j] }), nil
}

// DiffFunc compares the contents of x and y using the provided equality function and returns a
// shortest edit script that transforms x into y.
//
// The following option is supported: [Limit].
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) ([]Edit[T], error) {
	cfg := config.FromOptions(opts, config.Limit)
	ops, err := myers.Script(len(x), len(y), func(i, j int) bool { return eq(x[i], y[j]) }, cfg.Limit)
	if err != nil {
		return nil, limitError(cfg.Limit)
	}
	return convert(ops, func(i int) T { return x[i] }, func(j int) T { return y[j] }), nil
}

// DiffSeq compares the contents of two sequences using the provided equality function and returns
// a shortest edit script that transforms x into y.
//
// A sequence reporting a negative length is rejected with [ErrInvalidArgument] before any
// computation begins.
//
// The following option is supported: [Limit].
func DiffSeq[T any](x, y Sequence[T], eq func(a, b T) bool, opts ...Option) ([]Edit[T], error) {
	cfg := config.FromOptions(opts, config.Limit)
	n, m := x.Len(), y.Len()
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: sequence length must be non-negative, got %d and %d", ErrInvalidArgument, n, m)
	}
	ops, err := myers.Script(n, m, func(i, j int) bool { return eq(x.At(i), y.At(j)) }, cfg.Limit)
	if err != nil {
		return nil, limitError(cfg.Limit)
	}
	return convert(ops, x.At, y.At), nil
}

// Compare orders two edits by position, with insertions ordered before deletions at equal
// positions. The position of a deletion is its index in the old sequence, the position of an
// insertion its index in the new sequence.
//
// The edit scripts returned by the comparison functions are ordered along the edit path, which is
// not necessarily the same order. Compare is for callers that merge scripts or want the
// documented (position, kind) order, e.g. via slices.SortFunc.
func Compare[T any](a, b Edit[T]) int {
	if c := cmp.Compare(pos(a), pos(b)); c != 0 {
		return c
	}
	switch {
	case a.Op == b.Op:
		return 0
	case a.Op == Insert:
		return -1
	default:
		return 1
	}
}

func pos[T any](e Edit[T]) int {
	if e.Op == Insert {
		return e.PosY
	}
	return e.PosX
}

func convert[T any](ops []myers.Edit, atX, atY func(int) T) []Edit[T] {
	if len(ops) == 0 {
		return nil
	}
	out := make([]Edit[T], 0, len(ops))
	for _, op := range ops {
		switch op.Op {
		case myers.Delete:
			out = append(out, Edit[T]{Op: Delete, PosX: op.X, PosY: op.Y, Val: atX(op.X)})
		case myers.Insert:
			out = append(out, Edit[T]{Op: Insert, PosX: op.X, PosY: op.Y, Val: atY(op.Y)})
		default:
			panic("never reached")
		}
	}
	return out
}

func limitError(limit int) error {
	return fmt.Errorf("%w: no edit script with at most %d operations exists", ErrLimitExceeded, limit)
}
