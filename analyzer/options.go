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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/spellguard/internal/config"
	"fillmore-labs.com/spellguard/internal/run"
	"fillmore-labs.com/spellguard/spelling"
)

// Option configures specific behavior of a [New] spellguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithReceivers is an [Option] to configure whether method receiver names are checked.
func WithReceivers(receivers bool) Option { return receiversOption{receivers: receivers} }

type receiversOption struct{ receivers bool }

func (o receiversOption) apply(r *run.Options) {
	r.Behavior.Set(config.CheckReceivers, o.receivers)
}

func (o receiversOption) LogAttr() slog.Attr {
	return slog.Bool("receivers", o.receivers)
}

// WithLanguage is an [Option] to select the spelling language, a BCP 47 tag like "en-US".
func WithLanguage(lang string) Option { return languageOption{lang: lang} }

type languageOption struct{ lang string }

func (o languageOption) apply(r *run.Options) {
	r.Settings.Language = o.lang
}

func (o languageOption) LogAttr() slog.Attr {
	return slog.String("lang", o.lang)
}

// WithDictionaries is an [Option] to add custom dictionary files, consulted after
// the dictionaries found in a package's directory.
func WithDictionaries(paths ...string) Option { return dictionariesOption{paths: paths} }

type dictionariesOption struct{ paths []string }

func (o dictionariesOption) apply(r *run.Options) {
	r.Settings.Dictionaries = append(r.Settings.Dictionaries, o.paths...)
}

func (o dictionariesOption) LogAttr() slog.Attr {
	return slog.Any("dict", o.paths)
}

// WithConfigFile is an [Option] to read settings from a YAML, TOML or JSON file.
func WithConfigFile(path string) Option { return configFileOption{path: path} }

type configFileOption struct{ path string }

func (o configFileOption) apply(r *run.Options) {
	r.ConfigFile = o.path
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}

// WithBackends is an [Option] to provide spelling backends. Analyzers sharing a pool
// share the native spelling sessions.
func WithBackends(backends *spelling.Pool) Option { return backendsOption{backends: backends} }

type backendsOption struct{ backends *spelling.Pool }

func (o backendsOption) apply(r *run.Options) {
	r.Backends = o.backends
}

func (o backendsOption) LogAttr() slog.Attr {
	return slog.Bool("backends", o.backends != nil)
}

// WithLogger is an [Option] to set the logger for messages about the analyzer itself.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
