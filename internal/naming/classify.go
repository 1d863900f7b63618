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

package naming

import (
	"go/token"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"fillmore-labs.com/spellguard/internal/words"
	"fillmore-labs.com/spellguard/spelling"
)

// DefaultMemoSize is the default number of memoized tokenizations.
const DefaultMemoSize = 8192

// Resolver decides word verdicts for a scope.
type Resolver interface {
	Resolve(scope, word string) (spelling.Verdict, error)
	Exceptions(scope string) *words.Exceptions
	Alternate(scope, word string) (string, bool)
}

// Classifier turns symbols into findings. It is safe for concurrent use when the
// [Resolver] is.
type Classifier struct {
	resolver Resolver
	memo     *lru.Cache[memoKey, []string]
}

type memoKey struct {
	exceptions *words.Exceptions
	name       string
}

// NewClassifier creates a [Classifier] memoizing up to memoSize tokenizations.
func NewClassifier(resolver Resolver, memoSize int) (*Classifier, error) {
	memo, err := lru.New[memoKey, []string](memoSize)
	if err != nil {
		return nil, err
	}

	return &Classifier{resolver: resolver, memo: memo}, nil
}

// Classify returns the findings for s in scope, one per declaration site.
//
// Resolver errors are returned unchanged.
func (c *Classifier) Classify(scope string, s Symbol) ([]Finding, error) {
	if s.Synthesized {
		return nil, nil
	}

	name, role := shape(s), s.Role()

	if utf8.RuneCountInString(name) == 1 {
		return fanOut(s, KindOf(role, NotMeaningful), name, ""), nil
	}

	var findings []Finding

	for _, word := range c.tokenize(scope, name) {
		v, err := c.resolver.Resolve(scope, word)
		if err != nil {
			return nil, err
		}

		if v != spelling.Unrecognized {
			continue
		}

		alt, _ := c.resolver.Alternate(scope, word)
		findings = append(findings, fanOut(s, KindOf(role, Misspelled), word, alt)...)
	}

	return findings, nil
}

func (c *Classifier) tokenize(scope, name string) []string {
	exceptions := c.resolver.Exceptions(scope)
	key := memoKey{exceptions, name}

	if tokens, ok := c.memo.Get(key); ok {
		return tokens
	}

	tokens := words.Tokenize(name, words.Options{SplitCompoundWords: true, Exceptions: exceptions})
	c.memo.Add(key, tokens)

	return tokens
}

func fanOut(s Symbol, kind Kind, word, alt string) []Finding {
	f := Finding{
		Kind:      kind,
		Word:      word,
		Name:      s.display(),
		Container: s.Owner.Name,
		Alternate: alt,
	}

	if kind.Role() == RoleAssembly || len(s.Locations) == 0 {
		f.Pos = token.NoPos

		return []Finding{f}
	}

	findings := make([]Finding, 0, len(s.Locations))
	for _, pos := range s.Locations {
		f.Pos = pos
		findings = append(findings, f)
	}

	return findings
}
