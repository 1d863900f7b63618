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

package words

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"unicode"
)

// Exceptions adjust word boundaries. The zero value and nil have no exceptions.
type Exceptions struct {
	casing   [][]rune            // longest first
	discrete map[string]struct{} // lower case
}

// NewExceptions creates [Exceptions] from casing exceptions (acronyms, case-sensitive)
// and discrete exceptions (case-insensitive).
func NewExceptions(casing, discrete iter.Seq[string]) *Exceptions {
	ex := &Exceptions{discrete: make(map[string]struct{})}

	seen := make(map[string]struct{})
	for w := range casing {
		if _, ok := seen[w]; ok || w == "" {
			continue
		}

		seen[w] = struct{}{}
		ex.casing = append(ex.casing, []rune(w))
	}

	slices.SortFunc(ex.casing, func(a, b []rune) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}

		return slices.Compare(a, b)
	})

	for w := range discrete {
		if w != "" {
			ex.discrete[strings.ToLower(w)] = struct{}{}
		}
	}

	return ex
}

// Options configure [Tokenize].
type Options struct {
	// SplitCompoundWords splits letter runs at case changes ("someMethod" → "some", "Method").
	SplitCompoundWords bool

	Exceptions *Exceptions
}

// Tokenize splits an identifier into words.
//
// Non-letters separate words and are dropped. With SplitCompoundWords, camel case humps
// and acronym boundaries separate words too; casing exceptions are kept whole and
// adjacent parts forming a discrete exception are joined again.
func Tokenize(name string, opts Options) []string {
	var tokens []string

	for _, run := range strings.FieldsFunc(name, func(r rune) bool { return !unicode.IsLetter(r) }) {
		if !opts.SplitCompoundWords {
			tokens = append(tokens, run)

			continue
		}

		tokens = append(tokens, opts.Exceptions.join(opts.Exceptions.split(run))...)
	}

	return tokens
}

func (ex *Exceptions) split(run string) []string {
	r := []rune(run)

	var parts []string

	for start := 0; start < len(r); {
		if n := ex.casingPrefix(r[start:]); n > 0 {
			parts = append(parts, string(r[start:start+n]))
			start += n

			continue
		}

		end := start + 1
		for end < len(r) && !hump(r, end) {
			end++
		}

		parts = append(parts, string(r[start:end]))
		start = end
	}

	return parts
}

// hump reports whether a new word starts at r[i].
func hump(r []rune, i int) bool {
	prev, cur := r[i-1], r[i]

	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur): // someMethod
		return true

	case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(r) && unicode.IsLower(r[i+1]): // HTTPServer
		return !pluralAcronym(r, i)

	default:
		return false
	}
}

// pluralAcronym detects an acronym's plural "s" as in "userIDs".
func pluralAcronym(r []rune, i int) bool {
	return r[i+1] == 's' && (i+2 == len(r) || unicode.IsUpper(r[i+2]))
}

// casingPrefix returns the length of the longest casing exception r starts with.
func (ex *Exceptions) casingPrefix(r []rune) int {
	if ex == nil {
		return 0
	}

	for _, acronym := range ex.casing {
		n := len(acronym)
		if n > len(r) || !slices.Equal(acronym, r[:n]) {
			continue
		}

		if n < len(r) && unicode.IsLower(r[n]) {
			continue
		}

		return n
	}

	return 0
}

// join merges adjacent parts whose concatenation is a discrete exception, longest first.
func (ex *Exceptions) join(parts []string) []string {
	if ex == nil || len(ex.discrete) == 0 || len(parts) < 2 {
		return parts
	}

	joined := make([]string, 0, len(parts))

	for i := 0; i < len(parts); {
		j := len(parts)
		for ; j > i+1; j-- {
			if _, ok := ex.discrete[strings.ToLower(strings.Join(parts[i:j], ""))]; ok {
				break
			}
		}

		joined = append(joined, strings.Join(parts[i:j], ""))
		i = j
	}

	return joined
}
