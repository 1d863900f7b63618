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
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Checker is a [Backend] over a single [Engine].
//
// Verdicts are cached per word for the lifetime of the Checker without eviction, so the
// engine is consulted at most once per distinct word. Cached verdicts are read without
// locking; engine calls and cache population are serialized by a mutex.
type Checker struct {
	verdicts sync.Map // string → Verdict
	closed   atomic.Bool

	mu     sync.Mutex
	engine Engine
	lower  cases.Caser
	upper  cases.Caser
}

var _ Backend = (*Checker)(nil)

// NewChecker creates a [Checker] that takes ownership of engine.
func NewChecker(engine Engine) *Checker {
	return &Checker{
		engine: engine,
		lower:  cases.Lower(language.AmericanEnglish),
		upper:  cases.Upper(language.AmericanEnglish),
	}
}

// Check implements [Backend].
//
// A word rejected by the engine is retried once in title case, which recovers proper nouns
// and acronyms the engine only accepts capitalized. The result is cached under the original word.
func (c *Checker) Check(word string) (Verdict, error) {
	if word == "" {
		return SpelledCorrectly, nil
	}

	if c.closed.Load() {
		return Unrecognized, ErrClosed
	}

	if v, ok := c.verdicts.Load(word); ok {
		return v.(Verdict), nil //nolint:forcetypeassert
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.engine == nil {
		return Unrecognized, ErrClosed
	}

	// Another goroutine might have populated the cache while we were waiting.
	if v, ok := c.verdicts.Load(word); ok {
		return v.(Verdict), nil //nolint:forcetypeassert
	}

	ok, err := c.engine.Spell(word)
	if err != nil {
		return Unrecognized, err
	}

	if !ok {
		if ok, err = c.engine.Spell(c.titleCase(word)); err != nil {
			return Unrecognized, err
		}
	}

	verdict := Unrecognized
	if ok {
		verdict = SpelledCorrectly
	}

	c.verdicts.Store(word, verdict)

	return verdict, nil
}

// titleCase upper-cases the first rune and lower-cases the rest of word.
// Must be called with c.mu held, since [cases.Caser] is not safe for concurrent use.
func (c *Checker) titleCase(word string) string {
	lower := c.lower.String(word)
	_, size := utf8.DecodeRuneInString(lower)

	return c.upper.String(lower[:size]) + lower[size:]
}

// Close implements [Backend]. It closes the underlying engine exactly once.
func (c *Checker) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.engine == nil {
		return nil
	}

	c.closed.Store(true)

	engine := c.engine
	c.engine = nil

	return engine.Close()
}
