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

package hunspell

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"fillmore-labs.com/spellguard/spelling"
)

// maxWordLength is the longest word (in encoded bytes) hunspell checks.
const maxWordLength = 100

// ErrNative is returned when hunspell fails to create a session.
var ErrNative = errors.New("hunspell native call failed")

// StatusError reports a non-success status of a native call.
type StatusError struct {
	Call string
	Code uint32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hunspell: %s failed with status %d", e.Call, e.Code)
}

// native is the raw hunspell C API. Implementations hold the loaded library.
type native interface {
	create(affix, words string) uintptr
	destroy(handle uintptr)
	spell(handle uintptr, word string) int32
	addDic(handle uintptr, words string) int32
	add(handle uintptr, word string) int32
	remove(handle uintptr, word string) int32
	dicEncoding(handle uintptr) string
	unload() error
}

// Engine is a hunspell session implementing [spelling.Engine].
//
// An Engine is not safe for concurrent use; wrap it in a [spelling.Checker].
type Engine struct {
	lib      native
	handle   uintptr
	encoder  *encoding.Encoder
	lexicons []string
	ignored  map[string]struct{}
}

var _ spelling.Engine = (*Engine)(nil)

// newEngine creates a session on lib with d as the primary lexicon. On failure lib is unloaded.
func newEngine(lib native, d Dictionary) (*Engine, error) {
	handle := lib.create(d.Affix, d.Words)
	if handle == 0 {
		err := fmt.Errorf("%w: Hunspell_create(%q, %q)", ErrNative, d.Affix, d.Words)

		return nil, errors.Join(err, lib.unload())
	}

	e := &Engine{
		lib:      lib,
		handle:   handle,
		lexicons: []string{d.Words},
		ignored:  make(map[string]struct{}),
	}

	if err := e.configure(); err != nil {
		return nil, errors.Join(err, e.Close())
	}

	return e, nil
}

// configure adapts the session to the dictionary's character set.
func (e *Engine) configure() error {
	name := e.lib.dicEncoding(e.handle)

	switch strings.ToUpper(name) {
	case "", "UTF-8", "UTF8":
		return nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return fmt.Errorf("hunspell: unsupported dictionary encoding %q: %w", name, err)
	}

	e.encoder = enc.NewEncoder()

	return nil
}

// Spell implements [spelling.Engine].
//
// Words that can't be represented in the dictionary's encoding or exceed hunspell's
// maximum word length are rejected without a native call.
func (e *Engine) Spell(word string) (bool, error) {
	if e.handle == 0 {
		return false, spelling.ErrClosed
	}

	w, ok := e.encode(word)
	if !ok || len(w) > maxWordLength {
		return false, nil
	}

	return e.lib.spell(e.handle, w) != 0, nil
}

func (e *Engine) encode(word string) (string, bool) {
	if e.encoder == nil {
		return word, true
	}

	w, err := e.encoder.String(word)
	if err != nil {
		return "", false
	}

	return w, true
}

// AddLexicon attaches an additional word list to the session.
func (e *Engine) AddLexicon(words string) error {
	if e.handle == 0 {
		return spelling.ErrClosed
	}

	if err := checkStatus("Hunspell_add_dic", e.lib.addDic(e.handle, words)); err != nil {
		return err
	}

	e.lexicons = append(e.lexicons, words)

	return nil
}

// Lexicons returns the word lists attached to the session, primary lexicon first.
func (e *Engine) Lexicons() []string {
	return slices.Clone(e.lexicons)
}

// AddIgnored adds word to the session-local ignore list.
func (e *Engine) AddIgnored(word string) error {
	if e.handle == 0 {
		return spelling.ErrClosed
	}

	w, ok := e.encode(word)
	if !ok {
		return fmt.Errorf("hunspell: %q not representable in dictionary encoding", word)
	}

	if err := checkStatus("Hunspell_add", e.lib.add(e.handle, w)); err != nil {
		return err
	}

	e.ignored[word] = struct{}{}

	return nil
}

// RemoveIgnored removes word from the session-local ignore list.
func (e *Engine) RemoveIgnored(word string) error {
	if e.handle == 0 {
		return spelling.ErrClosed
	}

	if _, ok := e.ignored[word]; !ok {
		return nil
	}

	w, _ := e.encode(word) // encodable, since it was added

	if err := checkStatus("Hunspell_remove", e.lib.remove(e.handle, w)); err != nil {
		return err
	}

	delete(e.ignored, word)

	return nil
}

// ClearIgnored empties the session-local ignore list.
func (e *Engine) ClearIgnored() error {
	var errs []error

	for _, word := range slices.Sorted(maps.Keys(e.ignored)) {
		if err := e.RemoveIgnored(word); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Close implements [spelling.Engine]. It clears the ignore list, detaches the lexicons,
// destroys the session and unloads the library, reporting every failure.
func (e *Engine) Close() error {
	if e.lib == nil {
		return nil
	}

	var errs []error

	if e.handle != 0 {
		if err := e.ClearIgnored(); err != nil {
			errs = append(errs, err)
		}

		e.lexicons = nil

		e.lib.destroy(e.handle)
		e.handle = 0
	}

	lib := e.lib
	e.lib = nil

	if err := lib.unload(); err != nil {
		errs = append(errs, fmt.Errorf("hunspell: unloading library: %w", err))
	}

	return errors.Join(errs...)
}

// checkStatus translates a native return code.
func checkStatus(call string, ret int32) error {
	code, err := safecast.Conv[uint32](ret)
	if err != nil {
		return fmt.Errorf("hunspell: %s returned invalid status %d: %w", call, ret, err)
	}

	if code != 0 {
		return &StatusError{Call: call, Code: code}
	}

	return nil
}
