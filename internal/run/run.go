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

package run

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/spellguard/internal/config"
	"fillmore-labs.com/spellguard/internal/report"
	"fillmore-labs.com/spellguard/internal/symbols"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the spellguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("spellguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	s, err := r.getSession()
	if err != nil {
		return nil, fmt.Errorf("spellguard: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "SpellGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Stage 1: Collect declared identifiers
	region := trace.StartRegion(ctx, "Collect")
	pkg := symbols.Collect(p, in.Root(), symbols.Options{
		Generated: r.Behavior.Enabled(config.IncludeGenerated),
		Receivers: r.Behavior.Enabled(config.CheckReceivers),
	})
	region.End()

	if len(pkg.Symbols) == 0 {
		return nil, nil
	}

	// Stage 2: Bind the package's dictionaries
	if err := s.bind(ctx, p, pkg.Path); err != nil {
		return nil, fmt.Errorf("spellguard: %w", err)
	}

	// Stage 3: Classify names
	findings, err := s.classify(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("spellguard: %w", err)
	}

	// Stage 4: Emit diagnostics
	report.Findings(ctx, p, pkg.Anchor, findings)

	return nil, nil
}
