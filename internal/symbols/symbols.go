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

package symbols

import (
	"go/ast"
	"go/token"
	"go/types"
	"path"

	"golang.org/x/mod/module"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/spellguard/internal/astutil"
	"fillmore-labs.com/spellguard/internal/naming"
)

// Options control which declarations are collected.
type Options struct {
	// Generated includes files marked as generated.
	Generated bool

	// Receivers checks method receiver names.
	Receivers bool
}

// Package holds the collected symbols of one package.
type Package struct {
	// Path is the package import path, the scope for dictionary lookups.
	Path string

	// Anchor is the package clause of the first checked file.
	Anchor token.Pos

	Symbols []naming.Symbol
}

type collector struct {
	pass    *analysis.Pass
	opts    Options
	file    astutil.CurrentFile
	symbols []naming.Symbol
}

// Collect gathers the declared identifiers of the files below root.
func Collect(p *analysis.Pass, root inspector.Cursor, opts Options) Package {
	c := &collector{pass: p, opts: opts}
	pkg := Package{Path: p.Pkg.Path()}
	namespace := naming.Symbol{Name: p.Pkg.Name(), Kind: naming.KindPackage}

	for f := range root.Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		c.file = astutil.NewCurrentFile(p.Fset, file)
		if !c.file.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		if c.file.Generated() && !opts.Generated {
			continue
		}

		if hasNoLint(file.Doc) {
			continue
		}

		if !pkg.Anchor.IsValid() {
			pkg.Anchor = file.Name.Pos()
		}

		if !c.file.NoLintComment(file.Name.Pos()) {
			namespace.Locations = append(namespace.Locations, file.Name.Pos())
		}

		for d := range f.Children() {
			switch decl := d.Node().(type) {
			case *ast.GenDecl:
				c.genDecl(decl)

			case *ast.FuncDecl:
				c.funcDecl(decl)
			}
		}
	}

	if !pkg.Anchor.IsValid() {
		return pkg
	}

	// The last path element usually repeats the package name, which is checked below.
	if name := pathName(pkg.Path); name != "" && name != namespace.Name {
		pkg.Symbols = append(pkg.Symbols, naming.Symbol{Name: name, Kind: naming.KindPackagePath, Display: pkg.Path})
	}

	if len(namespace.Locations) > 0 {
		pkg.Symbols = append(pkg.Symbols, namespace)
	}

	pkg.Symbols = append(pkg.Symbols, c.symbols...)

	return pkg
}

// pathName returns the last element of an import path, skipping a major version suffix.
func pathName(importPath string) string {
	if prefix, _, ok := module.SplitPathVersion(importPath); ok {
		importPath = prefix
	}

	return path.Base(importPath)
}

func hasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && astutil.CommentHasNoLint(doc.List[len(doc.List)-1])
}

func (c *collector) add(ident *ast.Ident, s naming.Symbol) {
	if ident == nil || ident.Name == "_" || c.file.NoLintComment(ident.Pos()) {
		return
	}

	s.Name = ident.Name
	s.Locations = []token.Pos{ident.Pos()}
	c.symbols = append(c.symbols, s)
}

func (c *collector) genDecl(decl *ast.GenDecl) {
	if hasNoLint(decl.Doc) {
		return
	}

	for _, spec := range decl.Specs {
		switch spec := spec.(type) {
		case *ast.TypeSpec:
			if hasNoLint(spec.Doc) || hasNoLint(spec.Comment) {
				continue
			}

			c.typeSpec(spec)

		case *ast.ValueSpec:
			if hasNoLint(spec.Doc) || hasNoLint(spec.Comment) {
				continue
			}

			kind := naming.KindVar
			if decl.Tok == token.CONST {
				kind = naming.KindConst
			}

			for _, name := range spec.Names {
				c.add(name, naming.Symbol{Kind: kind})
			}
		}
	}
}

func (c *collector) typeSpec(spec *ast.TypeSpec) {
	name := spec.Name.Name

	c.add(spec.Name, naming.Symbol{Kind: naming.KindType, Interface: c.isInterface(spec)})
	c.typeParams(spec.TypeParams, naming.Owner{Name: name, Kind: naming.OwnerType})

	switch t := spec.Type.(type) {
	case *ast.StructType:
		c.fields(name, t.Fields)

	case *ast.InterfaceType:
		c.methods(name, t.Methods)

	case *ast.FuncType:
		c.params(t, naming.Owner{Name: name, Kind: naming.OwnerFuncType})
	}
}

func (c *collector) isInterface(spec *ast.TypeSpec) bool {
	if obj := c.pass.TypesInfo.Defs[spec.Name]; obj != nil {
		return types.IsInterface(obj.Type())
	}

	_, ok := spec.Type.(*ast.InterfaceType)

	return ok
}

func (c *collector) fields(owner string, list *ast.FieldList) {
	if list == nil {
		return
	}

	for _, field := range list.List {
		if len(field.Names) == 0 { // embedded
			if ident := embeddedName(field.Type); ident != nil {
				c.add(ident, naming.Symbol{Kind: naming.KindField, Display: owner + "." + ident.Name, Synthesized: true})
			}

			continue
		}

		for _, name := range field.Names {
			c.add(name, naming.Symbol{Kind: naming.KindField, Display: owner + "." + name.Name})
		}
	}
}

func (c *collector) methods(owner string, list *ast.FieldList) {
	if list == nil {
		return
	}

	for _, method := range list.List {
		ft, ok := method.Type.(*ast.FuncType)
		if !ok { // embedded interface or type set
			continue
		}

		for _, name := range method.Names {
			display := owner + "." + name.Name
			c.add(name, naming.Symbol{Kind: naming.KindFunc, Display: display})
			c.params(ft, naming.Owner{Name: display, Kind: naming.OwnerFunc})
		}
	}
}

func (c *collector) funcDecl(decl *ast.FuncDecl) {
	if hasNoLint(decl.Doc) {
		return
	}

	var display string
	if decl.Recv != nil && len(decl.Recv.List) > 0 {
		if recv := baseTypeName(decl.Recv.List[0].Type); recv != nil {
			display = recv.Name + "." + decl.Name.Name
		}
	}

	c.add(decl.Name, naming.Symbol{Kind: naming.KindFunc, Display: display})

	owner := naming.Owner{Name: decl.Name.Name, Kind: naming.OwnerFunc}
	if display != "" {
		owner.Name = display
	}

	if decl.Recv != nil {
		for _, field := range decl.Recv.List {
			for _, name := range field.Names {
				c.add(name, naming.Symbol{Kind: naming.KindParameter, Owner: owner, Synthesized: !c.opts.Receivers})
			}
		}
	}

	c.typeParams(decl.Type.TypeParams, owner)
	c.params(decl.Type, owner)
}

func (c *collector) typeParams(list *ast.FieldList, owner naming.Owner) {
	if list == nil {
		return
	}

	for _, field := range list.List {
		for _, name := range field.Names {
			c.add(name, naming.Symbol{Kind: naming.KindTypeParameter, Owner: owner})
		}
	}
}

func (c *collector) params(ft *ast.FuncType, owner naming.Owner) {
	for _, list := range [...]*ast.FieldList{ft.Params, ft.Results} {
		if list == nil {
			continue
		}

		for _, field := range list.List {
			for _, name := range field.Names {
				c.add(name, naming.Symbol{Kind: naming.KindParameter, Owner: owner})
			}
		}
	}
}

// baseTypeName returns the type name of a receiver, stripping pointers and type arguments.
func baseTypeName(expr ast.Expr) *ast.Ident {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e

		case *ast.StarExpr:
			expr = e.X

		case *ast.ParenExpr:
			expr = e.X

		case *ast.IndexExpr:
			expr = e.X

		case *ast.IndexListExpr:
			expr = e.X

		default:
			return nil
		}
	}
}

// embeddedName returns the identifier naming an embedded field.
func embeddedName(expr ast.Expr) *ast.Ident {
	if sel, ok := expr.(*ast.SelectorExpr); ok {
		return sel.Sel
	}

	if star, ok := expr.(*ast.StarExpr); ok {
		return embeddedName(star.X)
	}

	return baseTypeName(expr)
}
