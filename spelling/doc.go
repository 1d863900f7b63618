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

// Package spelling provides the native spelling backend used by spellguard.
//
// # Overview
//
// A native spelling engine is modeled as a capability, not a concrete type:
//
//   - An [Engine] is one open session of a native spell checker. It answers single-word
//     queries and must not be called concurrently.
//   - A [Checker] turns an [Engine] into a thread-safe [Backend]: it serializes engine calls,
//     caches verdicts per word for the lifetime of the process and retries rejected words
//     once in title case.
//   - A [Pool] owns the process-wide set of backends, keyed by language. It resolves a
//     language tag by falling back to parent tags (en-US → en) until an engine is found.
//
// The production engine lives in package [fillmore-labs.com/spellguard/spelling/hunspell],
// tests substitute the deterministic engines from
// [fillmore-labs.com/spellguard/spelling/spellingtest].
//
// # Failure Model
//
// [ErrUnavailable] means spelling support is disabled and is expected to be handled
// gracefully by treating every word as spelled correctly. All other errors returned by an
// [Engine] are fatal for the backend and are passed through unchanged.
package spelling
