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

package spelling

// Verdict is the outcome of checking a single word.
type Verdict uint8

const (
	// SpelledCorrectly indicates the word is known.
	SpelledCorrectly Verdict = iota

	// Unrecognized indicates the word is unknown or explicitly marked as misspelled.
	Unrecognized
)

func (v Verdict) String() string {
	switch v {
	case SpelledCorrectly:
		return "spelled correctly"
	case Unrecognized:
		return "unrecognized"
	default:
		return "invalid verdict"
	}
}
