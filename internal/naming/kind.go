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

package naming

import "go/token"

// Outcome is the result of classifying a symbol name.
type Outcome uint8

const (
	// NotMeaningful marks a name too short to carry meaning.
	NotMeaningful Outcome = iota

	// Misspelled marks a name containing an unrecognized word.
	Misspelled
)

// Kind is the diagnostic kind of a finding: an [Outcome] crossed with a [Role].
type Kind uint8

const (
	NotMeaningfulAssembly Kind = iota
	NotMeaningfulNamespace
	NotMeaningfulType
	NotMeaningfulMember
	NotMeaningfulMemberParameter
	NotMeaningfulDelegateParameter
	NotMeaningfulTypeTypeParameter
	NotMeaningfulMethodTypeParameter
	MisspelledAssembly
	MisspelledNamespace
	MisspelledType
	MisspelledMember
	MisspelledMemberParameter
	MisspelledDelegateParameter
	MisspelledTypeTypeParameter
	MisspelledMethodTypeParameter
)

// KindOf returns the diagnostic kind for an outcome in a role.
func KindOf(r Role, o Outcome) Kind {
	return Kind(uint8(o)*uint8(numRoles) + uint8(r))
}

// Role returns the role part of the kind.
func (k Kind) Role() Role { return Role(uint8(k) % uint8(numRoles)) }

// Outcome returns the outcome part of the kind.
func (k Kind) Outcome() Outcome { return Outcome(uint8(k) / uint8(numRoles)) }

func (k Kind) String() string {
	prefix := "misspelled-"
	if k.Outcome() == NotMeaningful {
		prefix = "not-meaningful-"
	}

	switch k.Role() {
	case RoleAssembly:
		return prefix + "package-path"

	case RoleNamespace:
		return prefix + "package"

	case RoleType:
		return prefix + "type"

	case RoleMember:
		return prefix + "member"

	case RoleMemberParameter:
		return prefix + "parameter"

	case RoleDelegateParameter:
		return prefix + "functype-parameter"

	case RoleTypeTypeParameter:
		return prefix + "type-typeparam"

	case RoleMethodTypeParameter:
		return prefix + "func-typeparam"

	default:
		return prefix + "unknown"
	}
}

// Finding is one classification result, anchored at one declaration site.
type Finding struct {
	Kind Kind

	// Word is the offending word, or the shaped name for not-meaningful findings.
	Word string

	// Name is the display name of the symbol.
	Name string

	// Container is the display name of the declaration owning a parameter.
	Container string

	// Pos is the declaration site, [token.NoPos] for package paths.
	Pos token.Pos

	// Alternate is a suggested replacement from a custom dictionary.
	Alternate string
}
