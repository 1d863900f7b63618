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
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMalformed is returned when a dictionary source can't be parsed.
var ErrMalformed = errors.New("malformed dictionary")

// xmlDictionary mirrors the structured custom dictionary schema.
type xmlDictionary struct {
	XMLName            xml.Name  `xml:"Dictionary"`
	Recognized         []string  `xml:"Words>Recognized>Word"`
	Unrecognized       []string  `xml:"Words>Unrecognized>Word"`
	DiscreteExceptions []string  `xml:"Words>DiscreteExceptions>Term"`
	Compound           []xmlTerm `xml:"Words>Compound>Term"`
	Deprecated         []xmlTerm `xml:"Words>Deprecated>Term"`
	CasingExceptions   []string  `xml:"Acronyms>CasingExceptions>Acronym"`
}

type xmlTerm struct {
	Text               string `xml:",chardata"`
	CompoundAlternate  string `xml:"CompoundAlternate,attr"`
	PreferredAlternate string `xml:"PreferredAlternate,attr"`
}

// Parse turns a [Source] into a [Dictionary].
//
// A malformed source yields an empty dictionary together with an error wrapping
// [ErrMalformed]; the dictionary is usable either way.
func Parse(src Source) (*Dictionary, error) {
	d := newDictionary(time.Now())

	switch src.Format {
	case FormatLineList:
		parseLineList(d, src.Contents)

		return d, nil

	case FormatXML:
		if err := parseXML(d, src.Contents); err != nil {
			return Empty(d.ParsedAt), fmt.Errorf("%w %s: %w", ErrMalformed, src.Path, err)
		}

		return d, nil

	default:
		return d, fmt.Errorf("%w %s: unknown format", ErrMalformed, src.Path)
	}
}

func parseLineList(d *Dictionary, contents []byte) {
	contents = bytes.TrimPrefix(contents, []byte("\ufeff"))

	for line := range bytes.Lines(contents) {
		if word := strings.TrimSpace(string(line)); word != "" {
			d.recognized[fold(word)] = struct{}{}
		}
	}
}

func parseXML(d *Dictionary, contents []byte) error {
	contents, transcoded := fromUTF16(contents)

	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(contents, []byte("\ufeff"))))
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		if transcoded { // already UTF-8, whatever the declaration says
			return input, nil
		}

		enc, err := htmlindex.Get(label)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
		}

		return enc.NewDecoder().Reader(input), nil
	}

	var doc xmlDictionary
	if err := dec.Decode(&doc); err != nil {
		return err
	}

	addWords(d.recognized, doc.Recognized, fold)
	addWords(d.unrecognized, doc.Unrecognized, fold)
	addWords(d.casing, doc.CasingExceptions, func(s string) string { return s })
	addWords(d.discrete, doc.DiscreteExceptions, fold)

	// Compound terms populate the deprecated alternates and vice versa.
	for _, t := range doc.Compound {
		if term := strings.TrimSpace(t.Text); term != "" {
			d.deprecated[fold(term)] = strings.TrimSpace(t.CompoundAlternate)
		}
	}

	for _, t := range doc.Deprecated {
		if term := strings.TrimSpace(t.Text); term != "" {
			d.discrete[fold(term)] = struct{}{}
			d.compound[fold(term)] = strings.TrimSpace(t.PreferredAlternate)
		}
	}

	return nil
}

func addWords(set map[string]struct{}, words []string, key func(string) string) {
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			set[key(w)] = struct{}{}
		}
	}
}

// fromUTF16 converts contents starting with a UTF-16 byte order mark to UTF-8.
func fromUTF16(contents []byte) ([]byte, bool) {
	if !bytes.HasPrefix(contents, []byte{0xff, 0xfe}) && !bytes.HasPrefix(contents, []byte{0xfe, 0xff}) {
		return contents, false
	}

	decoded, _, err := transform.Bytes(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder(), contents)
	if err != nil {
		return contents, false
	}

	return decoded, true
}
