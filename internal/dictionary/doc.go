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

// Package dictionary parses custom spelling dictionaries.
//
// Two formats are supported. A line list (".dic") holds one recognized word per line.
// The structured format (".xml") looks like this:
//
//	<Dictionary>
//	  <Words>
//	    <Recognized><Word>knokker</Word></Recognized>
//	    <Unrecognized><Word>meth</Word></Unrecognized>
//	    <DiscreteExceptions><Term>checkbox</Term></DiscreteExceptions>
//	    <Compound><Term CompoundAlternate="CheckBox">checkbox</Term></Compound>
//	    <Deprecated><Term PreferredAlternate="LogOn">login</Term></Deprecated>
//	  </Words>
//	  <Acronyms>
//	    <CasingExceptions><Acronym>NESW</Acronym></CasingExceptions>
//	  </Acronyms>
//	</Dictionary>
//
// Compound terms are recorded as deprecated alternates while deprecated terms are recorded
// as compound alternates and discrete exceptions. This mapping is kept for compatibility
// with existing dictionaries.
package dictionary
