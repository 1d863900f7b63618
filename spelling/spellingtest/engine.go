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

// Package spellingtest provides deterministic [spelling.Engine] implementations for tests.
package spellingtest

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"fillmore-labs.com/spellguard/spelling"
)

// Engine is an in-memory [spelling.Engine] with call accounting.
type Engine struct {
	accept func(word string) bool

	mu     sync.Mutex
	calls  map[string]int
	fail   map[string]error
	closed int
}

var _ spelling.Engine = (*Engine)(nil)

// Rejecting returns an [Engine] that accepts every word except the listed ones,
// compared case-insensitively.
func Rejecting(words ...string) *Engine {
	rejected := make(map[string]struct{}, len(words))
	for _, w := range words {
		rejected[strings.ToLower(w)] = struct{}{}
	}

	return newEngine(func(word string) bool {
		_, ok := rejected[strings.ToLower(word)]

		return !ok
	})
}

// Accepting returns an [Engine] that accepts exactly the listed words, compared case-sensitively.
func Accepting(words ...string) *Engine {
	accepted := make(map[string]struct{}, len(words))
	for _, w := range words {
		accepted[w] = struct{}{}
	}

	return newEngine(func(word string) bool {
		_, ok := accepted[word]

		return ok
	})
}

func newEngine(accept func(string) bool) *Engine {
	return &Engine{
		accept: accept,
		calls:  make(map[string]int),
		fail:   make(map[string]error),
	}
}

// FailOn makes [Engine.Spell] return err for word.
func (e *Engine) FailOn(word string, err error) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.fail[word] = err

	return e
}

// Spell implements [spelling.Engine].
func (e *Engine) Spell(word string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed > 0 {
		return false, fmt.Errorf("spellingtest: spell %q after close", word)
	}

	e.calls[word]++

	if err, ok := e.fail[word]; ok {
		return false, err
	}

	return e.accept(word), nil
}

// Close implements [spelling.Engine].
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed++

	return nil
}

// Calls returns how often word was passed to [Engine.Spell].
func (e *Engine) Calls(word string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.calls[word]
}

// TotalCalls returns the number of [Engine.Spell] invocations.
func (e *Engine) TotalCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0
	for _, n := range e.calls {
		total += n
	}

	return total
}

// Closed returns how often the engine was closed.
func (e *Engine) Closed() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.closed
}

// Opener returns a [spelling.Opener] serving engine for the listed languages
// and [spelling.ErrUnavailable] for everything else.
func Opener(engine spelling.Engine, languages ...string) spelling.Opener {
	available := make(map[language.Tag]struct{}, len(languages))
	for _, l := range languages {
		available[language.Make(l)] = struct{}{}
	}

	return func(tag language.Tag) (spelling.Engine, error) {
		if _, ok := available[tag]; !ok {
			return nil, fmt.Errorf("spellingtest: %s: %w", tag, spelling.ErrUnavailable)
		}

		return engine, nil
	}
}

// Unavailable is a [spelling.Opener] that never finds an engine.
func Unavailable(tag language.Tag) (spelling.Engine, error) {
	return nil, fmt.Errorf("spellingtest: %s: %w", tag, spelling.ErrUnavailable)
}
