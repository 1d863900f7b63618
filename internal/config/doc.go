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

// Package config holds the analyzer's behavior switches and user settings.
//
// Settings resolve with this precedence: explicit options and flags, the environment
// (SPELLGUARD_LANGUAGE, SPELLGUARD_DICTIONARIES), a config file, the system locale and
// finally [DefaultLanguage].
package config
