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

package meaningful

type A struct{} // want `Consider providing a more meaningful name than type name A \(mn:typ\)`

func B(x int) {} // want `Consider providing a more meaningful name than member name B \(mn:mem\)` `In function B, consider providing a more meaningful name than parameter name x \(mn:prm\)`

type IX interface{} // want `Consider providing a more meaningful name than type name IX \(mn:typ\)`

type Index struct {
	Position int
	N        int // want `Consider providing a more meaningful name than member name Index.N \(mn:mem\)`
}

type Func func(a int) // want `In function type Func, consider providing a more meaningful name than parameter name a \(mn:dlg\)`

type List[K comparable] struct{} // want `On type List, consider providing a more meaningful name than type parameter name K \(mn:ttp\)`

func Map[T, U any](items []T) []U { return nil } // want `On function Map, consider providing a more meaningful name than type parameter name U \(mn:mtp\)`

func Value(input int) (output int) { return input }
