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

package misspelled

type Recieve struct { // want `Correct the spelling of 'Recieve' in type name Recieve \(sp:typ\)`
	Lenght   int  // want `Correct the spelling of 'Lenght' in member name Recieve.Lenght \(sp:mem\)`
	Recieve2 bool // want `Correct the spelling of 'Recieve' in member name Recieve.Recieve2 \(sp:mem\)`
}

func (r *Recieve) SomeMathod(valu int) {} // want `Correct the spelling of 'Mathod' in member name Recieve.SomeMathod \(sp:mem\)` `In function Recieve.SomeMathod, correct the spelling of 'valu' in parameter name valu \(sp:prm\)`

type IRecieve interface { // want `Correct the spelling of 'Recieve' in type name IRecieve \(sp:typ\)`
	Lenght() (valu int) // want `Correct the spelling of 'Lenght' in member name IRecieve.Lenght \(sp:mem\)` `In function IRecieve.Lenght, correct the spelling of 'valu' in parameter name valu \(sp:prm\)`
}

type Handler func(elemnt string) error // want `In function type Handler, correct the spelling of 'elemnt' in parameter name elemnt \(sp:dlg\)`

type Pair[TElemnt any] struct{} // want `On type Pair, correct the spelling of 'Elemnt' in type parameter name TElemnt \(sp:ttp\)`

func Convert[TValu any](input TValu) TValu { return input } // want `On function Convert, correct the spelling of 'Valu' in type parameter name TValu \(sp:mtp\)`

var Totl = 1 // want `Correct the spelling of 'Totl' in member name Totl \(sp:mem\)`

const maxLenght = 3 // want `Correct the spelling of 'Lenght' in member name maxLenght \(sp:mem\)`

func Count(items []string) (totl int) { // want `In function Count, correct the spelling of 'totl' in parameter name totl \(sp:prm\)`
	var lenght int // local variables are not checked

	for range items {
		lenght++
	}

	return lenght
}
