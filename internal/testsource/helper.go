// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package testsource provides utilities for parsing and type-checking Go source files in tests.
//
// It builds an [analysis.Pass] around complete source files so components of the
// spellguard analyzer can be tested without the analysistest driver.
package testsource

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// Parse parses complete Go source files, named file0.go, file1.go, and so on.
func Parse(tb testing.TB, srcs ...string) (*token.FileSet, []*ast.File) {
	tb.Helper()

	fset := token.NewFileSet()
	files := make([]*ast.File, 0, len(srcs))

	for i, src := range srcs {
		filename := fmt.Sprintf("file%d.go", i)

		f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			tb.Fatalf("Failed to parse source %q: %v", src, err)
		}

		files = append(files, f)
	}

	return fset, files
}

// Check performs type checking on the provided AST files as package path.
func Check(tb testing.TB, path string, fset *token.FileSet, files []*ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(path, fset, files, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Pass parses and checks srcs as package path, returning a pass that records
// reported diagnostics and a cursor at the inspector root.
func Pass(tb testing.TB, path string, srcs ...string) (*analysis.Pass, inspector.Cursor, *[]analysis.Diagnostic) {
	tb.Helper()

	fset, files := Parse(tb, srcs...)
	pkg, info := Check(tb, path, fset, files)

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{
		Fset:      fset,
		Files:     files,
		Pkg:       pkg,
		TypesInfo: info,
		Report:    func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
	}

	return p, inspector.New(files).Root(), &diagnostics
}
