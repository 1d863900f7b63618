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

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when neither settings nor the locale name a language.
const DefaultLanguage = "en-US"

// Settings are the user-level settings shared by options, config files and the environment.
type Settings struct {
	// Language is a BCP 47 tag like "en-US" selecting the spelling backend.
	Language string `json:"language" toml:"language" yaml:"language" env:"SPELLGUARD_LANGUAGE"`

	// Dictionaries are custom dictionary files consulted after the package's own.
	Dictionaries []string `json:"dictionaries" toml:"dictionaries" yaml:"dictionaries" env:"SPELLGUARD_DICTIONARIES" env-separator:","`
}

// Load reads settings from the environment and, when path is set, a YAML, TOML or JSON
// config file. Environment variables override file values.
func Load(path string) (Settings, error) {
	var s Settings

	if path == "" {
		if err := cleanenv.ReadEnv(&s); err != nil {
			return Settings{}, fmt.Errorf("config: read env: %w", err)
		}

		return s, nil
	}

	if err := cleanenv.ReadConfig(path, &s); err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return s, nil
}

// Merge overlays the explicitly set values of override onto s and defaults the
// language to the system locale, then to [DefaultLanguage].
func (s Settings) Merge(override Settings) Settings {
	if override.Language != "" {
		s.Language = override.Language
	}

	if len(override.Dictionaries) > 0 {
		s.Dictionaries = override.Dictionaries
	}

	if s.Language == "" {
		s.Language = SystemLanguage()
	}

	if s.Language == "" {
		s.Language = DefaultLanguage
	}

	return s
}

// SystemLanguage derives a language tag from the POSIX locale variables LC_ALL,
// LC_MESSAGES and LANG, in that order. It returns "" for the C and POSIX locales
// and for locales that are not well-formed language tags.
func SystemLanguage() string {
	for _, key := range [...]string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		locale := os.Getenv(key)
		if locale == "" {
			continue
		}

		if i := strings.IndexAny(locale, ".@"); i >= 0 {
			locale = locale[:i]
		}

		if locale == "C" || locale == "POSIX" {
			return ""
		}

		locale = strings.ReplaceAll(locale, "_", "-")
		if _, err := language.Parse(locale); err != nil {
			return ""
		}

		return locale
	}

	return ""
}
