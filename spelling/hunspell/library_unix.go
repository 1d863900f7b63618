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

//go:build (darwin || freebsd || linux) && !android

package hunspell

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"

	"fillmore-labs.com/spellguard/spelling"
)

// library is a dynamically loaded libhunspell.
type library struct {
	handle uintptr

	fnCreate      func(affix, words string) uintptr
	fnDestroy     func(handle uintptr)
	fnSpell       func(handle uintptr, word string) int32
	fnAddDic      func(handle uintptr, words string) int32
	fnAdd         func(handle uintptr, word string) int32
	fnRemove      func(handle uintptr, word string) int32
	fnDicEncoding func(handle uintptr) string
}

// loadLibrary opens the first loadable candidate.
// The error wraps [spelling.ErrUnavailable] when none can be opened.
func loadLibrary(candidates []string) (native, error) {
	var errs []error

	for _, name := range candidates {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_LOCAL)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		l := &library{handle: handle}
		if err := l.bind(); err != nil {
			return nil, errors.Join(err, purego.Dlclose(handle))
		}

		return l, nil
	}

	return nil, fmt.Errorf("hunspell: no loadable library (%w): %w", spelling.ErrUnavailable, errors.Join(errs...))
}

func (l *library) bind() error {
	symbols := [...]struct {
		name string
		fptr any
	}{
		{"Hunspell_create", &l.fnCreate},
		{"Hunspell_destroy", &l.fnDestroy},
		{"Hunspell_spell", &l.fnSpell},
		{"Hunspell_add_dic", &l.fnAddDic},
		{"Hunspell_add", &l.fnAdd},
		{"Hunspell_remove", &l.fnRemove},
		{"Hunspell_get_dic_encoding", &l.fnDicEncoding},
	}

	for _, s := range symbols {
		addr, err := purego.Dlsym(l.handle, s.name)
		if err != nil {
			return fmt.Errorf("hunspell: resolving %s: %w", s.name, err)
		}

		purego.RegisterFunc(s.fptr, addr)
	}

	return nil
}

func (l *library) create(affix, words string) uintptr      { return l.fnCreate(affix, words) }
func (l *library) destroy(handle uintptr)                  { l.fnDestroy(handle) }
func (l *library) spell(handle uintptr, word string) int32 { return l.fnSpell(handle, word) }
func (l *library) addDic(handle uintptr, w string) int32   { return l.fnAddDic(handle, w) }
func (l *library) add(handle uintptr, word string) int32   { return l.fnAdd(handle, word) }
func (l *library) remove(handle uintptr, word string) int32 {
	return l.fnRemove(handle, word)
}
func (l *library) dicEncoding(handle uintptr) string { return l.fnDicEncoding(handle) }

func (l *library) unload() error {
	if l.handle == 0 {
		return nil
	}

	handle := l.handle
	l.handle = 0

	return purego.Dlclose(handle)
}
