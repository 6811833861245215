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

package editscript_test

import (
	"fmt"
	"strings"

	"znkr.io/editscript"
)

func ExampleDiff() {
	x := []string{"apples", "bananas", "cherries"}
	y := []string{"apples", "blueberries", "cherries"}

	edits, err := editscript.Diff(x, y)
	if err != nil {
		panic(err)
	}
	for _, e := range edits {
		fmt.Printf("%v %q\n", e.Op, e.Val)
	}
	// Output:
	// Delete "bananas"
	// Insert "blueberries"
}

func ExampleDiffFunc() {
	x := []string{"GO", "Rules"}
	y := []string{"go", "rocks"}

	edits, err := editscript.DiffFunc(x, y, strings.EqualFold)
	if err != nil {
		panic(err)
	}
	for _, e := range edits {
		fmt.Printf("%v %q\n", e.Op, e.Val)
	}
	// Output:
	// Delete "Rules"
	// Insert "rocks"
}

func ExampleLimit() {
	x := []string{"a", "b", "c"}
	y := []string{"d", "e", "f"}

	_, err := editscript.Diff(x, y, editscript.Limit(4))
	fmt.Println(err)
	// Output:
	// editscript: edit distance exceeds limit: no edit script with at most 4 operations exists
}
