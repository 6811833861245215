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

// A Sequence is an immutable ordered view of elements, indexable by position in [0, Len). It is
// the input capability required by [DiffSeq]: any length-bearing, randomly indexable container
// can be compared, whether it holds characters, tokens, lines, or arbitrary records.
//
// The comparison functions never mutate a sequence and never index outside [0, Len).
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Slice returns a [Sequence] backed by s. The sequence shares the slice, it must not be mutated
// while in use.
func Slice[T any](s []T) Sequence[T] {
	return sliceSeq[T](s)
}

type sliceSeq[T any] []T

func (s sliceSeq[T]) Len() int   { return len(s) }
func (s sliceSeq[T]) At(i int) T { return s[i] }
