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
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
)

// Pool is a registry of [Backend]s keyed by language.
//
// A Pool is meant to be shared by every analysis session in a process, so that two sessions
// targeting the same language share one native engine. The zero value is not usable, create
// instances with [NewPool].
type Pool struct {
	open   Opener
	logger *slog.Logger
	group  singleflight.Group

	mu       sync.Mutex
	backends map[string]entry
	closed   bool
}

type entry struct {
	backend Backend
	err     error
}

// PoolOption configures a [Pool].
type PoolOption func(p *Pool)

// WithLogger sets the logger used to report language fallback decisions.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(p *Pool) { p.logger = logger }
}

// NewPool creates a [Pool] that opens engines with open.
func NewPool(open Opener, opts ...PoolOption) *Pool {
	p := &Pool{
		open:     open,
		logger:   slog.Default(),
		backends: make(map[string]entry),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Get returns the [Backend] for lang, a BCP 47 language tag.
//
// When no engine is available for lang, the parent tags are tried in order (e.g. "en-US", then "en").
// If the chain is exhausted an error wrapping [ErrUnavailable] is returned; this outcome is
// remembered, so installations are probed once per language.
func (p *Pool) Get(lang string) (Backend, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("spelling: invalid language %q: %w", lang, err)
	}

	v, err, _ := p.group.Do(tag.String(), func() (any, error) {
		return p.resolve(tag)
	})
	if err != nil {
		return nil, err
	}

	return v.(Backend), nil //nolint:forcetypeassert
}

// resolve walks the fallback chain of requested.
func (p *Pool) resolve(requested language.Tag) (Backend, error) {
	for tag := requested; tag != language.Und; tag = tag.Parent() {
		backend, err := p.openExact(tag)

		switch {
		case err == nil:
			if tag != requested {
				p.logger.Debug("Using fallback spelling language",
					slog.String("requested", requested.String()), slog.String("language", tag.String()))
			}

			return backend, nil

		case errors.Is(err, ErrUnavailable):
			continue

		default:
			return nil, err
		}
	}

	p.logger.Debug("No spelling engine available", slog.String("language", requested.String()))

	return nil, fmt.Errorf("spelling: language %s: %w", requested, ErrUnavailable)
}

// openExact returns the cached backend for tag, opening it if necessary.
func (p *Pool) openExact(tag language.Tag) (Backend, error) {
	key := tag.String()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}

	if e, ok := p.backends[key]; ok {
		return e.backend, e.err
	}

	engine, err := p.open(tag)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			p.backends[key] = entry{err: err}
		}

		return nil, err
	}

	backend := NewChecker(engine)
	p.backends[key] = entry{backend: backend}

	return backend, nil
}

// Close tears down every backend opened by this pool.
// The pool cannot be used afterwards.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true

	var errs []error

	for key, e := range p.backends {
		if e.backend == nil {
			continue
		}

		if err := e.backend.Close(); err != nil {
			errs = append(errs, fmt.Errorf("spelling: closing %s: %w", key, err))
		}
	}

	clear(p.backends)

	return errors.Join(errs...)
}
