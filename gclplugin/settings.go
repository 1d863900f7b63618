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

package gclplugin

import spellguard "fillmore-labs.com/spellguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Receivers enables checks of method receiver names.
	Receivers *bool `json:"receivers,omitzero"`
	// Language selects the spelling language, a BCP 47 tag.
	Language *string `json:"lang,omitzero"`
	// Dictionaries are custom dictionary files.
	Dictionaries []string `json:"dict,omitzero"`
	// Config is a YAML, TOML or JSON settings file.
	Config *string `json:"config,omitzero"`
}

// Options converts [Settings] into a list of [spellguard.Option] for the spellguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []spellguard.Option {
	var opts []spellguard.Option

	opts = appendOption(opts, s.Receivers, spellguard.WithReceivers)
	opts = appendOption(opts, s.Language, spellguard.WithLanguage)
	opts = appendOption(opts, s.Config, spellguard.WithConfigFile)

	if len(s.Dictionaries) > 0 {
		opts = append(opts, spellguard.WithDictionaries(s.Dictionaries...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [spellguard.Option] list.
func appendOption[T any](opts []spellguard.Option, value *T, constructor func(T) spellguard.Option) []spellguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
