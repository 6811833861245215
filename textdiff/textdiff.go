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

// Package textdiff compares text line by line.
//
// It is a consumer of the edit scripts computed by [znkr.io/editscript]: the script plus the two
// inputs are enough to interleave deletions, insertions, and unchanged lines positionally into a
// unified-diff style rendering.
package textdiff

import (
	"fmt"
	"strings"

	"znkr.io/editscript"
	"znkr.io/editscript/internal/byteview"
	"znkr.io/editscript/internal/config"
	"znkr.io/editscript/internal/hunks"
	"znkr.io/editscript/internal/myers"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const noNewlineMarker = "\\ No newline at end of file\n"

const ansiReset = "\033[0m"

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// The following option is supported: [Context].
func Unified(x, y string, opts ...editscript.Option) string {
	return unified[string](byteview.From(x), byteview.From(y), opts, false)
}

// UnifiedBytes compares the lines in x and y and returns the changes necessary to convert from
// one to the other in unified format.
//
// The following option is supported: [Context].
func UnifiedBytes(x, y []byte, opts []editscript.Option) []byte {
	return unified[[]byte](byteview.From(x), byteview.From(y), opts, false)
}

// Colored is like [Unified], but wraps hunk headers and changed lines in ANSI escape sequences
// for terminal output.
//
// The following options are supported: [Context] and the options in
// [znkr.io/editscript/textdiff/color].
func Colored(x, y string, opts ...editscript.Option) string {
	return unified[string](byteview.From(x), byteview.From(y), opts, true)
}

func unified[T string | []byte](x, y byteview.ByteView, opts []editscript.Option, colored bool) T {
	allowed := config.Context
	if colored {
		allowed |= config.Colors
	}
	cfg := config.FromOptions(opts, allowed)
	if !colored {
		cfg.Colors = config.ColorConfig{}
	}

	xlines, xmiss := x.Lines()
	ylines, ymiss := y.Lines()

	eq := func(i, j int) bool { return xlines[i] == ylines[j] }
	ops, err := myers.Script(len(xlines), len(ylines), eq, 0)
	if err != nil {
		// No limit is set, so Script cannot fail.
		panic("textdiff: " + err.Error())
	}

	var b byteview.Builder[T]
	for _, h := range hunks.Find(ops, len(xlines), len(ylines), cfg.Context) {
		writeColored(&b, cfg.Colors.HunkHeader,
			fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.X0+1, h.X1-h.X0, h.Y0+1, h.Y1-h.Y0))
		op := h.Lo
		for s, t := h.X0, h.Y0; s < h.X1 || t < h.Y1; {
			switch {
			case op < h.Hi && ops[op].Op == myers.Delete && ops[op].X == s:
				writeLine(&b, cfg.Colors.Delete, prefixDelete, xlines[s], s == xmiss)
				s++
				op++
			case op < h.Hi && ops[op].Op == myers.Insert && ops[op].Y == t:
				writeLine(&b, cfg.Colors.Insert, prefixInsert, ylines[t], t == ymiss)
				t++
				op++
			default:
				writeLine(&b, cfg.Colors.Match, prefixMatch, xlines[s], s == xmiss)
				s++
				t++
			}
		}
	}
	return b.Build()
}

/// writeLine writes one diff line: prefix and line content, wrapped in the ANSI code if one is
// set, followed by the no-newline marker if the line is the last line of its input and is missing
// a trailing newline.
func writeLine[T string | []byte](b *byteview.Builder[T], code, prefix string, line byteview.ByteView, missingNewline bool) {
	writeColored(b, code, prefix+strings.TrimSuffix(line.String(), "\n"))
	if missingNewline {
		b.WriteString(noNewlineMarker)
	}
}

// writeColored writes s followed by a newline, wrapping s in the ANSI code if one is set. The
// reset is written before the newline so that codes never span lines.
func writeColored[T string | []byte](b *byteview.Builder[T], code, s string) {
	if code != "" {
		b.WriteString(code)
	}
	b.WriteString(s)
	if code != "" {
		b.WriteString(ansiReset)
	}
	b.WriteString("\n")
}
