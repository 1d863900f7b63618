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

type Recieve struct{}

type Widget struct{} // want `Correct the spelling of 'Widget' in type name Widget \(sp:typ\)`

type Filename string // want `Correct the spelling of 'Filename' in type name Filename, consider 'FileName' \(sp:typ\)`

func SomeMathod() {}

var lenght = 1 // want `Correct the spelling of 'lenght' in member name lenght \(sp:mem\)`
