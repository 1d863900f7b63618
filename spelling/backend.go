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

package spelling

import (
	"errors"

	"golang.org/x/text/language"
)

var (
	// ErrUnavailable is returned when no spelling engine is installed for a language or any of its parents.
	ErrUnavailable = errors.New("spelling engine unavailable")

	// ErrClosed is returned when a closed backend is used.
	ErrClosed = errors.New("spelling backend closed")
)

// Engine is a single session of a native spell checker.
//
// Implementations need not be safe for concurrent use.
type Engine interface {
	// Spell reports whether the engine accepts the word as written.
	// An error indicates a failed native call and is fatal for the engine.
	Spell(word string) (bool, error)

	// Close releases all native resources. It is called exactly once.
	Close() error
}

// Backend checks words for a single language. Implementations are safe for concurrent use.
type Backend interface {
	// Check returns the [Verdict] for a word.
	Check(word string) (Verdict, error)

	// Close releases the backend.
	Close() error
}

// Opener opens an [Engine] for exactly the given language.
//
// It returns an error wrapping [ErrUnavailable] when no engine or lexicon is installed for tag.
type Opener func(tag language.Tag) (Engine, error)
