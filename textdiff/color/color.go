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

// Package color makes it possible to configure custom colors for [textdiff.Colored].
//
// Colors are specified as SGR parameters, e.g. color.Deletes(31) for red deletions or
// color.Inserts(1, 32) for bold green insertions.
package color

import (
	"fmt"
	"strings"

	"znkr.io/editscript"
	"znkr.io/editscript/internal/config"
)

// HunkHeaders colors hunk headers, the "@@ ... @@" part of the unified diff.
func HunkHeaders(params ...int) editscript.Option {
	code := format(params)
	return func(cfg *config.Config) config.Flag {
		cfg.Colors.HunkHeader = code
		return config.Colors
	}
}

// Matches colors matching lines.
func Matches(params ...int) editscript.Option {
	code := format(params)
	return func(cfg *config.Config) config.Flag {
		cfg.Colors.Match = code
		return config.Colors
	}
}

// Deletes colors deleted lines.
func Deletes(params ...int) editscript.Option {
	code := format(params)
	return func(cfg *config.Config) config.Flag {
		cfg.Colors.Delete = code
		return config.Colors
	}
}

// Inserts colors inserted lines.
func Inserts(params ...int) editscript.Option {
	code := format(params)
	return func(cfg *config.Config) config.Flag {
		cfg.Colors.Insert = code
		return config.Colors
	}
}

func format(params []int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
