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

// Role is the syntactic role of a symbol, selecting the diagnostic variant.
type Role uint8

const (
	RoleAssembly Role = iota
	RoleNamespace
	RoleType
	RoleMember
	RoleMemberParameter
	RoleDelegateParameter
	RoleTypeTypeParameter
	RoleMethodTypeParameter
	numRoles
)

// Role derives the role of a symbol from its kind and owner.
func (s Symbol) Role() Role {
	switch s.Kind {
	case KindPackagePath:
		return RoleAssembly

	case KindPackage:
		return RoleNamespace

	case KindType:
		return RoleType

	case KindParameter:
		if s.Owner.Kind == OwnerFuncType {
			return RoleDelegateParameter
		}

		return RoleMemberParameter

	case KindTypeParameter:
		if s.Owner.Kind == OwnerFunc {
			return RoleMethodTypeParameter
		}

		return RoleTypeTypeParameter

	default:
		return RoleMember
	}
}

// Code returns the short role code used in diagnostic messages.
func (r Role) Code() string {
	switch r {
	case RoleAssembly:
		return "asm"

	case RoleNamespace:
		return "nsp"

	case RoleType:
		return "typ"

	case RoleMember:
		return "mem"

	case RoleMemberParameter:
		return "prm"

	case RoleDelegateParameter:
		return "dlg"

	case RoleTypeTypeParameter:
		return "ttp"

	case RoleMethodTypeParameter:
		return "mtp"

	default:
		return "unk"
	}
}

func (r Role) String() string {
	switch r {
	case RoleAssembly:
		return "package path"

	case RoleNamespace:
		return "package"

	case RoleType:
		return "type"

	case RoleMember:
		return "member"

	case RoleMemberParameter:
		return "parameter"

	case RoleDelegateParameter:
		return "parameter of function type"

	case RoleTypeTypeParameter:
		return "type parameter of type"

	case RoleMethodTypeParameter:
		return "type parameter of function"

	default:
		return "unknown"
	}
}

// shape strips the interface or type parameter marker at position 0.
func shape(s Symbol) string {
	var marker byte

	switch {
	case s.Kind == KindType && s.Interface:
		marker = 'I'

	case s.Kind == KindTypeParameter:
		marker = 'T'

	default:
		return s.Name
	}

	if len(s.Name) > 0 && s.Name[0] == marker {
		return s.Name[1:]
	}

	return s.Name
}
