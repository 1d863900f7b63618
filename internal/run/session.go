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
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/spellguard/internal/config"
	"fillmore-labs.com/spellguard/internal/dictionary"
	"fillmore-labs.com/spellguard/internal/naming"
	"fillmore-labs.com/spellguard/internal/registry"
	"fillmore-labs.com/spellguard/internal/symbols"
	"fillmore-labs.com/spellguard/spelling"
)

// ErrNoBackends is returned when the options carry no spelling backend pool.
var ErrNoBackends = errors.New("no spelling backends configured")

// session is the state shared by all passes of one analyzer.
type session struct {
	settings   config.Settings
	logger     *slog.Logger
	registry   *registry.Registry
	classifier *naming.Classifier
}

func (r *Options) getSession() (*session, error) {
	r.once.Do(func() { r.session, r.err = r.newSession() })

	return r.session, r.err
}

func (r *Options) newSession() (*session, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if r.Backends == nil {
		return nil, ErrNoBackends
	}

	loaded, err := config.Load(r.ConfigFile)
	if err != nil {
		return nil, err
	}

	settings := loaded.Merge(r.Settings)

	backend, err := r.Backends.Get(settings.Language)
	switch {
	case err == nil:

	case errors.Is(err, spelling.ErrUnavailable):
		logger.Debug("Spelling backend unavailable, using custom dictionaries only",
			slog.String("language", settings.Language), slog.Any("error", err))

		backend = nil

	default:
		return nil, err
	}

	reg := registry.New(backend, registry.WithLogger(logger))

	classifier, err := naming.NewClassifier(reg, r.MemoSize)
	if err != nil {
		return nil, err
	}

	return &session{settings: settings, logger: logger, registry: reg, classifier: classifier}, nil
}

// bind binds the package's dictionaries, followed by the configured ones, to its scope.
func (s *session) bind(ctx context.Context, p *analysis.Pass, scope string) error {
	defer trace.StartRegion(ctx, "Dictionaries").End()

	var paths []string

	for _, dir := range packageDirs(p) {
		found, err := dictionary.Discover(dir)
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping package directory", slog.Any("error", err))

			continue
		}

		paths = append(paths, found...)
	}

	paths = append(paths, s.settings.Dictionaries...)

	sources, err := dictionary.ReadFiles(ctx, s.logger, paths)
	if err != nil {
		return err
	}

	return s.registry.BindScope(ctx, scope, sources)
}

func (s *session) classify(ctx context.Context, pkg symbols.Package) ([]naming.Finding, error) {
	defer trace.StartRegion(ctx, "Classify").End()

	var findings []naming.Finding

	for _, sym := range pkg.Symbols {
		f, err := s.classifier.Classify(pkg.Path, sym)
		if err != nil {
			return nil, err
		}

		findings = append(findings, f...)
	}

	return findings, nil
}

// packageDirs returns the distinct directories of the package's files.
func packageDirs(p *analysis.Pass) []string {
	var dirs []string

	seen := make(map[string]struct{})

	for _, f := range p.Files {
		tf := p.Fset.File(f.FileStart)
		if tf == nil {
			continue
		}

		dir := filepath.Dir(tf.Name())
		if _, ok := seen[dir]; ok {
			continue
		}

		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	return dirs
}
