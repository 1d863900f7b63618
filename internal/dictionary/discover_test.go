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

package dictionary_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/spellguard/internal/dictionary"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestQualifies(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		want bool
	}{
		{"CustomDictionary.xml", true},
		{"dictionary.XML", true},
		{"custom.dic", true},
		{"MyCustomWords.DIC", true},
		{"settings.xml", false},
		{"words.dic", false},
		{"custom.txt", false},
		{"dictionary.dic", false},
	}

	for _, tt := range tests {
		if got := Qualifies(tt.name); got != tt.want {
			t.Errorf("Qualifies(%q) = %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b_custom.dic":         "",
		"a_custom.dic":         "",
		"CustomDictionary.xml": "",
		"main.go":              "",
	})

	if err := os.Mkdir(filepath.Join(dir, "z_custom.dic"), 0o700); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "CustomDictionary.xml"),
		filepath.Join(dir, "a_custom.dic"),
		filepath.Join(dir, "b_custom.dic"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"first.dic":  "one\n",
		"second.xml": "<Dictionary/>",
	})

	paths := []string{
		filepath.Join(dir, "second.xml"),
		filepath.Join(dir, "missing.dic"),
		filepath.Join(dir, "first.dic"),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sources, err := ReadFiles(t.Context(), logger, paths)
	if err != nil {
		t.Fatalf("ReadFiles failed: %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}

	if sources[0].Path != paths[0] || sources[0].Format != FormatXML {
		t.Errorf("Unexpected first source %s (%v)", sources[0].Path, sources[0].Format)
	}

	if sources[1].Path != paths[2] || string(sources[1].Contents) != "one\n" {
		t.Errorf("Unexpected second source %s %q", sources[1].Path, sources[1].Contents)
	}

	for _, src := range sources {
		if src.Virtual() {
			t.Errorf("Expected %s to carry a modification time", src.Path)
		}
	}
}

func TestReadFilesCanceled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"custom.dic": "one\n"})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := ReadFiles(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), []string{filepath.Join(dir, "custom.dic")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected %v, got %v", context.Canceled, err)
	}
}
