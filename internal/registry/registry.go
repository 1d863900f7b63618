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

package registry

import (
	"context"
	"iter"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"fillmore-labs.com/spellguard/internal/dictionary"
	"fillmore-labs.com/spellguard/internal/words"
	"fillmore-labs.com/spellguard/spelling"
)

// Registry binds scopes to ordered custom dictionaries in front of a spelling backend.
//
// Resolution is lock-free and safe for concurrent use. Bindings are serialized and
// published as immutable snapshots, so readers never observe a partial update.
type Registry struct {
	backend spelling.Backend
	logger  *slog.Logger

	mu    sync.Mutex // serializes BindScope
	state atomic.Pointer[snapshot]
}

type snapshot struct {
	cache  map[string]*dictionary.Dictionary // by source path
	scopes map[string]*binding
}

type binding struct {
	paths      []string // precedence order
	exceptions *words.Exceptions
}

// Option configures a [Registry].
type Option func(r *Registry)

// WithLogger sets the logger for dictionary parse failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// New creates a [Registry]. A nil backend means spelling support is unavailable:
// words not mentioned by a scoped dictionary resolve as spelled correctly.
func New(backend spelling.Backend, opts ...Option) *Registry {
	r := &Registry{backend: backend, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	r.state.Store(&snapshot{
		cache:  make(map[string]*dictionary.Dictionary),
		scopes: make(map[string]*binding),
	})

	return r
}

// BindScope replaces the dictionaries of scope with sources, in precedence order.
//
// Sources not yet cached are parsed. Cached sources are re-parsed when virtual or when their
// modification time is after the last parse. A source failing to parse keeps its last-good
// dictionary, or contributes no words when never parsed successfully.
//
// When ctx is canceled between sources nothing is published and ctx's error is returned.
func (r *Registry) BindScope(ctx context.Context, scope string, sources []dictionary.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.state.Load()
	cache := maps.Clone(current.cache)
	paths := make([]string, 0, len(sources))
	changed := make(map[string]struct{})

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		paths = append(paths, src.Path)

		cached, ok := cache[src.Path]
		if ok && !src.Virtual() && !src.ModTime.After(cached.ParsedAt) {
			continue
		}

		d, err := dictionary.Parse(src)
		if err != nil {
			r.logger.WarnContext(ctx, "Can't parse dictionary", slog.String("path", src.Path), slog.Any("error", err))

			if ok {
				continue
			}
		}

		cache[src.Path] = d
		changed[src.Path] = struct{}{}
	}

	scopes := make(map[string]*binding, len(current.scopes)+1)
	for name, b := range current.scopes {
		if name != scope && slices.ContainsFunc(b.paths, contains(changed)) {
			b = newBinding(b.paths, cache)
		}

		scopes[name] = b
	}

	scopes[scope] = newBinding(paths, cache)

	r.state.Store(&snapshot{cache: cache, scopes: scopes})

	return nil
}

func contains(set map[string]struct{}) func(string) bool {
	return func(p string) bool {
		_, ok := set[p]

		return ok
	}
}

func newBinding(paths []string, cache map[string]*dictionary.Dictionary) *binding {
	casing := func(yield func(string) bool) {
		for _, p := range paths {
			for w := range cache[p].CasingExceptions() {
				if !yield(w) {
					return
				}
			}
		}
	}

	discrete := func(yield func(string) bool) {
		for _, p := range paths {
			for w := range cache[p].DiscreteExceptions() {
				if !yield(w) {
					return
				}
			}
		}
	}

	return &binding{paths: paths, exceptions: words.NewExceptions(casing, discrete)}
}

// dictionaries returns the dictionaries bound to scope in precedence order.
func (s *snapshot) dictionaries(scope string) iter.Seq[*dictionary.Dictionary] {
	return func(yield func(*dictionary.Dictionary) bool) {
		b, ok := s.scopes[scope]
		if !ok {
			return
		}

		for _, p := range b.paths {
			if !yield(s.cache[p]) {
				return
			}
		}
	}
}

// Resolve returns the verdict for word in scope.
//
// The first bound dictionary mentioning the word decides. Otherwise the backend decides;
// without a backend the word is spelled correctly.
func (r *Registry) Resolve(scope, word string) (spelling.Verdict, error) {
	for d := range r.state.Load().dictionaries(scope) {
		if v, ok := d.Lookup(word); ok {
			return v, nil
		}
	}

	if r.backend == nil {
		return spelling.SpelledCorrectly, nil
	}

	return r.backend.Check(word)
}

// Exceptions returns the merged casing and discrete exceptions of scope's dictionaries.
func (r *Registry) Exceptions(scope string) *words.Exceptions {
	if b, ok := r.state.Load().scopes[scope]; ok {
		return b.exceptions
	}

	return nil
}

// Alternate returns the alternate the first dictionary of scope suggests for word.
func (r *Registry) Alternate(scope, word string) (string, bool) {
	for d := range r.state.Load().dictionaries(scope) {
		if alt, ok := d.Alternate(word); ok {
			return alt, true
		}
	}

	return "", false
}

// Paths returns the dictionary paths bound to scope, in precedence order.
func (r *Registry) Paths(scope string) []string {
	if b, ok := r.state.Load().scopes[scope]; ok {
		return slices.Clone(b.paths)
	}

	return nil
}

// Available reports whether a spelling backend is present.
func (r *Registry) Available() bool {
	return r.backend != nil
}
