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
	"crypto/sha256"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []Edit[string]
	}{
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: nil,
		},
		{
			name: "identical",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "bar"},
			want: nil,
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: []Edit[string]{
				{Op: Insert, PosX: 0, PosY: 0, Val: "foo"},
				{Op: Insert, PosX: 0, PosY: 1, Val: "bar"},
				{Op: Insert, PosX: 0, PosY: 2, Val: "baz"},
			},
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: []Edit[string]{
				{Op: Delete, PosX: 0, PosY: 0, Val: "foo"},
				{Op: Delete, PosX: 1, PosY: 0, Val: "bar"},
				{Op: Delete, PosX: 2, PosY: 0, Val: "baz"},
			},
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: []Edit[string]{
				{Op: Delete, PosX: 1, PosY: 1, Val: "bar"},
				{Op: Insert, PosX: 2, PosY: 1, Val: "baz"},
			},
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: []Edit[string]{
				{Op: Delete, PosX: 0, PosY: 0, Val: "foo"},
				{Op: Insert, PosX: 1, PosY: 0, Val: "loo"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Diff(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Diff(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(%v, %v) differs [-want,+got]:\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

func TestDiffClassic(t *testing.T) {
	x := []byte("ABCABBA")
	y := []byte("CBABAC")
	want := []Edit[byte]{
		{Op: Delete, PosX: 0, PosY: 0, Val: 'A'},
		{Op: Insert, PosX: 1, PosY: 0, Val: 'C'},
		{Op: Delete, PosX: 2, PosY: 2, Val: 'C'},
		{Op: Delete, PosX: 5, PosY: 4, Val: 'B'},
		{Op: Insert, PosX: 7, PosY: 5, Val: 'C'},
	}
	got, err := Diff(x, y)
	if err != nil {
		t.Fatalf("Diff(...) failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff(%q, %q) differs [-want,+got]:\n%s", x, y, diff)
	}
}

func TestDiffVersionNumbers(t *testing.T) {
	x := []int{1, 4, 27, 21, 23, 24, 26, 28, 13}
	y := []int{1, 4, 20, 21, 22, 23, 24, 25, 26, 13}

	got, err := Diff(x, y)
	if err != nil {
		t.Fatalf("Diff(...) failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Diff(...) returned %d edits, want 5", len(got))
	}
	if d := applyEdits(x, got); !slices.Equal(d, y) {
		t.Errorf("applying the edit script to %v produced %v, want %v", x, d, y)
	}

	// The minimal script for these inputs is unique up to ordering, so sorting
	// by (position, kind) pins down every edit.
	sorted := slices.Clone(got)
	slices.SortFunc(sorted, Compare)
	want := []struct {
		op  Op
		pos int
		val int
	}{
		{Insert, 2, 20},
		{Delete, 2, 27},
		{Insert, 4, 22},
		{Insert, 7, 25},
		{Delete, 7, 28},
	}
	for i, w := range want {
		if i >= len(sorted) {
			break
		}
		e := sorted[i]
		pos := e.PosX
		if e.Op == Insert {
			pos = e.PosY
		}
		if e.Op != w.op || pos != w.pos || e.Val != w.val {
			t.Errorf("sorted[%d] = {%v, pos %d, val %d}, want {%v, pos %d, val %d}", i, e.Op, pos, e.Val, w.op, w.pos, w.val)
		}
	}
}

// applyEdits patches x into the new sequence: deletions are applied in
// descending position, then insertions in ascending position.
func applyEdits[T any](x []T, edits []Edit[T]) []T {
	out := slices.Clone(x)
	for i := len(edits) - 1; i >= 0; i-- {
		if edits[i].Op != Delete {
			continue
		}
		out = slices.Delete(out, edits[i].PosX, edits[i].PosX+1)
	}
	for _, e := range edits {
		if e.Op != Insert {
			continue
		}
		out = slices.Insert(out, e.PosY, e.Val)
	}
	return out
}

func TestDiffRandom(t *testing.T) {
	for i := range 30 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:4]), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			x := randInts(rng, rng.IntN(40), 4)
			y := randInts(rng, rng.IntN(40), 4)

			edits, err := Diff(x, y)
			if err != nil {
				t.Fatalf("Diff(...) failed: %v", err)
			}
			if d := applyEdits(x, edits); !slices.Equal(d, y) {
				t.Errorf("applying the edit script to %v produced %v, want %v", x, d, y)
			}
			if want := len(x) + len(y) - 2*lcs(x, y); len(edits) != want {
				t.Errorf("Diff(...) returned %d edits, minimum is %d", len(edits), want)
			}
		})
	}
}

func randInts(rng *rand.Rand, n, alphabet int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = rng.IntN(alphabet)
	}
	return s
}

// lcs computes the length of the longest common subsequence with the
// quadratic dynamic program.
func lcs(x, y []int) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for i := 1; i <= len(x); i++ {
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

func TestDiffIdentity(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte("identity"))))
	for range 10 {
		x := randInts(rng, rng.IntN(100), 3)
		edits, err := Diff(x, x)
		if err != nil {
			t.Fatalf("Diff(...) failed: %v", err)
		}
		if len(edits) != 0 {
			t.Errorf("Diff(x, x) returned %d edits for %v, want none", len(edits), x)
		}
	}
}

func TestDiffSupersequence(t *testing.T) {
	// When x is a subsequence of y, any minimal script consists of
	// insertions only, and symmetrically for deletions.
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte("supersequence"))))
	for range 10 {
		x := randInts(rng, 5+rng.IntN(20), 4)
		y := slices.Clone(x)
		for range 1 + rng.IntN(10) {
			y = slices.Insert(y, rng.IntN(len(y)+1), rng.IntN(4))
		}

		edits, err := Diff(x, y)
		if err != nil {
			t.Fatalf("Diff(...) failed: %v", err)
		}
		if len(edits) != len(y)-len(x) {
			t.Errorf("Diff(...) returned %d edits, want %d", len(edits), len(y)-len(x))
		}
		for _, e := range edits {
			if e.Op != Insert {
				t.Errorf("Diff(...) returned %v, want insertions only", e)
			}
		}

		edits, err = Diff(y, x)
		if err != nil {
			t.Fatalf("Diff(...) failed: %v", err)
		}
		for _, e := range edits {
			if e.Op != Delete {
				t.Errorf("Diff(...) returned %v, want deletions only", e)
			}
		}
	}
}

func TestDiffLimit(t *testing.T) {
	x := []string{"a", "b", "c", "d"}
	y := []string{"e", "f", "g"}

	if _, err := Diff(x, y, Limit(6)); !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("Diff(..., Limit(6)) = %v, want ErrLimitExceeded", err)
	}
	if _, err := Diff(x, nil, Limit(3)); !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("Diff(..., Limit(3)) = %v, want ErrLimitExceeded", err)
	}

	edits, err := Diff(x, y, Limit(7))
	if err != nil {
		t.Fatalf("Diff(..., Limit(7)) failed: %v", err)
	}
	unlimited, err := Diff(x, y)
	if err != nil {
		t.Fatalf("Diff(...) failed: %v", err)
	}
	if diff := cmp.Diff(unlimited, edits); diff != "" {
		t.Errorf("Diff(..., Limit(7)) differs from the unlimited result [-unlimited,+limited]:\n%s", diff)
	}
}

func TestDiffFunc(t *testing.T) {
	x := []string{"Foo", "BAR"}
	y := []string{"foo", "baz"}
	want := []Edit[string]{
		{Op: Delete, PosX: 1, PosY: 1, Val: "BAR"},
		{Op: Insert, PosX: 2, PosY: 1, Val: "baz"},
	}
	got, err := DiffFunc(x, y, strings.EqualFold)
	if err != nil {
		t.Fatalf("DiffFunc(...) failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestDiffSeq(t *testing.T) {
	x := []byte("ABCABBA")
	y := []byte("CBABAC")
	want, err := Diff(x, y)
	if err != nil {
		t.Fatalf("Diff(...) failed: %v", err)
	}
	got, err := DiffSeq(Slice(x), Slice(y), func(a, b byte) bool { return a == b })
	if err != nil {
		t.Fatalf("DiffSeq(...) failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffSeq(...) differs from Diff(...) [-want,+got]:\n%s", diff)
	}
}

type brokenSeq struct{}

func (brokenSeq) Len() int      { return -1 }
func (brokenSeq) At(i int) byte { panic("never reached") }

func TestDiffSeqInvalid(t *testing.T) {
	_, err := DiffSeq[byte](brokenSeq{}, Slice([]byte("a")), func(a, b byte) bool { return a == b })
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("DiffSeq(...) = %v, want ErrInvalidArgument", err)
	}
}

func TestCompare(t *testing.T) {
	edits := []Edit[string]{
		{Op: Delete, PosX: 7, PosY: 5, Val: "g"},
		{Op: Insert, PosX: 8, PosY: 7, Val: "h"},
		{Op: Insert, PosX: 3, PosY: 2, Val: "c"},
		{Op: Delete, PosX: 2, PosY: 2, Val: "b"},
		{Op: Insert, PosX: 2, PosY: 0, Val: "a"},
	}
	want := []Edit[string]{
		{Op: Insert, PosX: 2, PosY: 0, Val: "a"},
		{Op: Insert, PosX: 3, PosY: 2, Val: "c"},
		{Op: Delete, PosX: 2, PosY: 2, Val: "b"},
		{Op: Insert, PosX: 8, PosY: 7, Val: "h"},
		{Op: Delete, PosX: 7, PosY: 5, Val: "g"},
	}
	got := slices.Clone(edits)
	slices.SortFunc(got, Compare)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorting by Compare differs [-want,+got]:\n%s", diff)
	}
}

func TestOpString(t *testing.T) {
	if got := Delete.String(); got != "Delete" {
		t.Errorf("Delete.String() = %q, want %q", got, "Delete")
	}
	if got := Insert.String(); got != "Insert" {
		t.Errorf("Insert.String() = %q, want %q", got, "Insert")
	}
	if got := Op(7).String(); got != "Op(7)" {
		t.Errorf("Op(7).String() = %q, want %q", got, "Op(7)")
	}
}
