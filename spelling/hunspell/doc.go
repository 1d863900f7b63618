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

// Package hunspell binds the hunspell spell checker as a [spelling.Engine].
//
// The shared library is loaded at run time with [purego], so no C toolchain is needed to
// build spellguard and the analyzer keeps working (with spelling disabled) on systems
// without hunspell.
//
// # Installation Probing
//
// A [Locator] searches dictionary directories for an affix/word list pair named after the
// language tag (en-US → en_US.aff and en_US.dic) and loads the first hunspell library it can
// open. [DefaultLocator] honors the DICPATH and SPELLGUARD_HUNSPELL_LIBRARY environment
// variables before the usual system locations.
//
// # Session Lifecycle
//
// An [Engine] owns one hunspell handle, the lexicons attached to it and a session-local
// ignore list. [Engine.Close] tears these down in order (ignore list, lexicons, session,
// library) and reports every failure.
//
// [purego]: https://pkg.go.dev/github.com/ebitengine/purego
package hunspell
