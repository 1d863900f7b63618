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

// Package naming classifies declared identifiers as misspelled or not meaningful.
//
// A [Symbol] is first shaped: interface types lose a leading "I", type parameters a
// leading "T". A shaped name of one character is not meaningful. Longer names are split
// into words, each resolved in the symbol's scope; every unrecognized word is a
// misspelling. Findings carry a [Kind] selected by the symbol's [Role] and fan out to
// every declaration site.
package naming
