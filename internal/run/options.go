// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"log/slog"
	"sync"

	"fillmore-labs.com/spellguard/internal/config"
	"fillmore-labs.com/spellguard/internal/naming"
	"fillmore-labs.com/spellguard/spelling"
)

// Options represent configuration options for the spellguard analyzer.
//
// Options must not be copied after the first call to [Options.Run].
type Options struct {
	// Behavior holds behavioral switches.
	Behavior config.Behavior

	// Settings are explicitly configured settings, overriding the config file and environment.
	Settings config.Settings

	// ConfigFile is an optional YAML, TOML or JSON settings file.
	ConfigFile string

	// Backends provides spelling backends by language.
	Backends *spelling.Pool

	// Logger receives diagnostics about the analyzer itself.
	Logger *slog.Logger

	// MemoSize bounds the number of memoized tokenizations.
	MemoSize int

	once    sync.Once
	session *session
	err     error
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
		MemoSize: naming.DefaultMemoSize,
	}
}
