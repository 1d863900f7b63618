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

// Package analyzer implements the spellguard static analysis pass.
//
// # Overview
//
// SpellGuard checks every identifier declared in a package: the package name, types,
// functions, methods, fields, package-level variables and constants, parameters and type
// parameters. Names are split into words at case changes and non-letters, and each word
// is checked against the package's custom dictionaries and a hunspell dictionary for the
// configured language.
//
// Names of a single character are reported as not meaningful. Interface types may carry a
// leading "I" and type parameters a leading "T" without it counting as a word.
//
// # Example
//
//	type Recieve struct{}  // Correct the spelling of 'Recieve' in type name Recieve (sp:typ)
//
//	func B(x int) {}       // Consider providing a more meaningful name than member name B (mn:mem)
//
// # Custom Dictionaries
//
// Files in a package's directory named like "*dictionary*.xml" or "*custom*.dic" are
// consulted before the spelling backend, followed by the files given with -dict. A
// dictionary marks words as recognized or unrecognized, lists acronyms with their casing
// and compound words that are not split.
//
// # Language
//
// The language is taken from -lang, the SPELLGUARD_LANGUAGE environment variable, a
// config file given with -config, the locale, and defaults to en-US. Without an installed
// hunspell dictionary for the language or one of its parents only custom dictionaries are
// consulted.
package analyzer
