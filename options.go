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

import "znkr.io/editscript/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Limit sets an upper bound n > 0 on the edit distance: if no edit script with at most n
// operations exists, the comparison functions return [ErrLimitExceeded] instead of searching
// further. The bound is checked as the search progresses, so a call that exceeds it stops early.
//
// By default there is no bound.
func Limit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Limit = max(0, n)
		return config.Limit
	}
}
