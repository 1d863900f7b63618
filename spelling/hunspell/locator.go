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
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/text/language"

	"fillmore-labs.com/spellguard/spelling"
)

// LibraryEnv names the environment variable that overrides the hunspell shared library.
const LibraryEnv = "SPELLGUARD_HUNSPELL_LIBRARY"

// Dictionary is a hunspell lexicon: an affix file and its word list.
type Dictionary struct {
	Affix, Words string
}

// Locator finds hunspell installations.
type Locator struct {
	// DictionaryPaths are the directories searched for dictionaries, in order.
	DictionaryPaths []string

	// Libraries are the shared library names or paths tried, in order.
	Libraries []string
}

var _ spelling.Opener = Locator{}.Open

// DefaultLocator returns a [Locator] for the current system.
func DefaultLocator() Locator {
	var paths []string

	if dicpath := os.Getenv("DICPATH"); dicpath != "" {
		paths = append(paths, filepath.SplitList(dicpath)...)
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "share", "hunspell"))

		if runtime.GOOS == "darwin" {
			paths = append(paths, filepath.Join(home, "Library", "Spelling"))
		}
	}

	paths = append(paths,
		"/usr/local/share/hunspell",
		"/usr/share/hunspell",
		"/usr/share/myspell",
		"/usr/share/myspell/dicts",
		"/opt/homebrew/share/hunspell",
	)

	var libraries []string
	if lib := os.Getenv(LibraryEnv); lib != "" {
		libraries = append(libraries, lib)
	}

	libraries = append(libraries, defaultLibraries()...)

	return Locator{DictionaryPaths: paths, Libraries: libraries}
}

func defaultLibraries() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"libhunspell-1.7.0.dylib",
			"/opt/homebrew/lib/libhunspell-1.7.0.dylib",
			"/usr/local/lib/libhunspell-1.7.0.dylib",
			"libhunspell.dylib",
		}

	default:
		return []string{
			"libhunspell-1.7.so.0",
			"libhunspell-1.6.so.0",
			"libhunspell.so",
		}
	}
}

// Find returns the [Dictionary] for exactly tag.
// The error wraps [spelling.ErrUnavailable] when no matching files are installed.
func (l Locator) Find(tag language.Tag) (Dictionary, error) {
	name, ok := dictionaryName(tag)
	if !ok {
		return Dictionary{}, fmt.Errorf("hunspell: no dictionary name for %s: %w", tag, spelling.ErrUnavailable)
	}

	for _, dir := range l.DictionaryPaths {
		d := Dictionary{
			Affix: filepath.Join(dir, name+".aff"),
			Words: filepath.Join(dir, name+".dic"),
		}

		if isFile(d.Affix) && isFile(d.Words) {
			return d, nil
		}
	}

	return Dictionary{}, fmt.Errorf("hunspell: no dictionary %s: %w", name, spelling.ErrUnavailable)
}

// Open implements [spelling.Opener].
func (l Locator) Open(tag language.Tag) (spelling.Engine, error) {
	d, err := l.Find(tag)
	if err != nil {
		return nil, err
	}

	lib, err := loadLibrary(l.Libraries)
	if err != nil {
		return nil, err
	}

	return newEngine(lib, d)
}

// dictionaryName maps a language tag to the hunspell file name convention ("en_US", "de").
func dictionaryName(tag language.Tag) (string, bool) {
	base, _, region := tag.Raw()
	if base == (language.Base{}) {
		return "", false
	}

	if region == (language.Region{}) {
		return base.String(), true
	}

	return base.String() + "_" + region.String(), true
}

func isFile(path string) bool {
	fi, err := os.Stat(path)

	return err == nil && fi.Mode().IsRegular()
}
