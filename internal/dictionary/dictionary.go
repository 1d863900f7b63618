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

package dictionary

import (
	"iter"
	"maps"
	"strings"
	"time"

	"fillmore-labs.com/spellguard/spelling"
)

// Dictionary is a parsed custom dictionary. It is immutable once returned from [Parse].
type Dictionary struct {
	recognized   map[string]struct{} // folded
	unrecognized map[string]struct{} // folded
	casing       map[string]struct{} // case-sensitive
	discrete     map[string]struct{} // folded
	deprecated   map[string]string   // folded term → alternate
	compound     map[string]string   // folded term → alternate

	// ParsedAt is the time of the parse that produced this dictionary.
	ParsedAt time.Time
}

func newDictionary(parsedAt time.Time) *Dictionary {
	return &Dictionary{
		recognized:   make(map[string]struct{}),
		unrecognized: make(map[string]struct{}),
		casing:       make(map[string]struct{}),
		discrete:     make(map[string]struct{}),
		deprecated:   make(map[string]string),
		compound:     make(map[string]string),
		ParsedAt:     parsedAt,
	}
}

// Empty returns a dictionary without words.
func Empty(parsedAt time.Time) *Dictionary {
	return newDictionary(parsedAt)
}

func fold(word string) string {
	return strings.ToLower(word)
}

// Lookup returns the verdict of this dictionary for word, ignoring case.
// The second result is false when the dictionary does not mention the word.
func (d *Dictionary) Lookup(word string) (spelling.Verdict, bool) {
	key := fold(word)

	if _, ok := d.recognized[key]; ok {
		return spelling.SpelledCorrectly, true
	}

	if _, ok := d.unrecognized[key]; ok {
		return spelling.Unrecognized, true
	}

	return spelling.SpelledCorrectly, false
}

// Alternate returns the suggested alternate for word, if the dictionary names one.
func (d *Dictionary) Alternate(word string) (string, bool) {
	key := fold(word)

	if alt := d.deprecated[key]; alt != "" {
		return alt, true
	}

	if alt := d.compound[key]; alt != "" {
		return alt, true
	}

	return "", false
}

// Recognized returns the recognized words in folded form.
func (d *Dictionary) Recognized() iter.Seq[string] { return maps.Keys(d.recognized) }

// Unrecognized returns the unrecognized words in folded form.
func (d *Dictionary) Unrecognized() iter.Seq[string] { return maps.Keys(d.unrecognized) }

// CasingExceptions returns the acronyms exempt from casing rules.
func (d *Dictionary) CasingExceptions() iter.Seq[string] { return maps.Keys(d.casing) }

// DiscreteExceptions returns the words kept whole during compound splitting, in folded form.
func (d *Dictionary) DiscreteExceptions() iter.Seq[string] { return maps.Keys(d.discrete) }

// DeprecatedAlternates returns the deprecated term mappings.
func (d *Dictionary) DeprecatedAlternates() iter.Seq2[string, string] { return maps.All(d.deprecated) }

// CompoundAlternates returns the compound term mappings.
func (d *Dictionary) CompoundAlternates() iter.Seq2[string, string] { return maps.All(d.compound) }

// Len returns the number of entries in all collections.
func (d *Dictionary) Len() int {
	return len(d.recognized) + len(d.unrecognized) + len(d.casing) +
		len(d.discrete) + len(d.deprecated) + len(d.compound)
}
