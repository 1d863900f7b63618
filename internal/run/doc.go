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

// Package run implements the spellguard analysis pipeline.
//
// The first pass creates a session: settings are resolved, the spelling backend for the
// configured language is requested, and a dictionary registry is built. Every pass then
// collects the package's declared identifiers, binds the package's custom dictionaries to
// its import path, classifies the identifiers and reports the findings.
package run
