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

// SymbolKind classifies a declared identifier.
type SymbolKind uint8

const (
	KindPackagePath SymbolKind = iota
	KindPackage
	KindType
	KindFunc
	KindField
	KindVar
	KindConst
	KindParameter
	KindTypeParameter
)

// OwnerKind classifies the declaration a parameter belongs to.
type OwnerKind uint8

const (
	OwnerNone OwnerKind = iota
	OwnerFunc
	OwnerFuncType // a declared function type
	OwnerType
)

// Owner is the declaration containing a parameter or type parameter.
type Owner struct {
	Name string
	Kind OwnerKind
}

// Symbol is a declared identifier to classify.
type Symbol struct {
	Name string
	Kind SymbolKind

	// Owner is set for parameters and type parameters.
	Owner Owner

	// Interface marks a type whose underlying type is an interface.
	Interface bool

	// Synthesized marks a name derived from another declaration, like an embedded field.
	Synthesized bool

	// Display is the qualified name used in messages. Defaults to Name.
	Display string

	// Locations are the declaration sites. Package paths have none.
	Locations []token.Pos
}

func (s Symbol) display() string {
	if s.Display != "" {
		return s.Display
	}

	return s.Name
}
