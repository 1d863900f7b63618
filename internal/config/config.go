// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package config

// BehaviorFlags represent behavior switches of the analyzer.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// CheckReceivers specifies whether method receiver names are checked.
	CheckReceivers
)

// Behavior holds the enabled [BehaviorFlags].
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavior: generated files and receivers are skipped.
func DefaultBehavior() Behavior {
	return NewBitMask[BehaviorFlags]()
}
