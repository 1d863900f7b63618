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
	"path/filepath"
	"strings"
	"time"
)

// Format is the syntax of a dictionary source.
type Format uint8

const (
	// FormatUnknown marks a source that is not a dictionary.
	FormatUnknown Format = iota

	// FormatXML is the structured custom dictionary format.
	FormatXML

	// FormatLineList is a plain word list, one recognized word per line.
	FormatLineList
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"

	case FormatLineList:
		return "line-list"

	default:
		return "unknown"
	}
}

// FormatOf determines the format from the file extension, ignoring case.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML

	case ".dic":
		return FormatLineList

	default:
		return FormatUnknown
	}
}

// Source is the raw content of one dictionary.
type Source struct {
	// Path identifies the source. For virtual sources any unique identifier.
	Path string

	Contents []byte
	Format   Format

	// ModTime is the last modification of the backing file, zero for virtual sources.
	ModTime time.Time
}

// NewSource creates a virtual [Source] with the format derived from path.
func NewSource(path string, contents []byte) Source {
	return Source{Path: path, Contents: contents, Format: FormatOf(path)}
}

// Virtual reports whether the source has no backing file timestamp.
func (s Source) Virtual() bool {
	return s.ModTime.IsZero()
}
