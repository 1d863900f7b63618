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

package naming_test

import (
	"errors"
	"go/token"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/spellguard/internal/dictionary"
	. "fillmore-labs.com/spellguard/internal/naming"
	"fillmore-labs.com/spellguard/internal/registry"
	"fillmore-labs.com/spellguard/spelling"
	"fillmore-labs.com/spellguard/spelling/spellingtest"
)

const scope = "example.com/project"

func newClassifier(t *testing.T, backend spelling.Backend, sources ...dictionary.Source) *Classifier {
	t.Helper()

	r := registry.New(backend, registry.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err := r.BindScope(t.Context(), scope, sources); err != nil {
		t.Fatalf("BindScope failed: %v", err)
	}

	c, err := NewClassifier(r, DefaultMemoSize)
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}

	return c
}

func classify(t *testing.T, c *Classifier, s Symbol) []Finding {
	t.Helper()

	findings, err := c.Classify(scope, s)
	if err != nil {
		t.Fatalf("Classify(%s) failed: %v", s.Name, err)
	}

	return findings
}

func TestMisspelledMethod(t *testing.T) {
	t.Parallel()

	c := newClassifier(t, spelling.NewChecker(spellingtest.Rejecting("mathod")))

	got := classify(t, c, Symbol{Name: "SomeMathod", Kind: KindFunc, Display: "Server.SomeMathod", Locations: []token.Pos{42}})

	want := []Finding{{Kind: MisspelledMember, Word: "Mathod", Name: "Server.SomeMathod", Pos: 42}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Findings mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleLetterNotMeaningful(t *testing.T) {
	t.Parallel()

	engine := spellingtest.Rejecting("a")
	c := newClassifier(t, spelling.NewChecker(engine))

	got := classify(t, c, Symbol{Name: "A", Kind: KindFunc, Locations: []token.Pos{7}})

	want := []Finding{{Kind: NotMeaningfulMember, Word: "A", Name: "A", Pos: 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Findings mismatch (-want +got):\n%s", diff)
	}

	if n := engine.TotalCalls(); n != 0 {
		t.Errorf("Expected no spelling check, got %d calls", n)
	}
}

func TestLengthGate(t *testing.T) {
	t.Parallel()

	engine := spellingtest.Rejecting("x", "ä")
	c := newClassifier(t, spelling.NewChecker(engine),
		dictionary.NewSource("custom.xml", []byte("<Dictionary><Words><Unrecognized><Word>x</Word></Unrecognized></Words></Dictionary>")))

	symbols := [...]Symbol{
		{Name: "x", Kind: KindVar},
		{Name: "ä", Kind: KindConst},
		{Name: "IX", Kind: KindType, Interface: true},
		{Name: "TX", Kind: KindTypeParameter, Owner: Owner{Name: "Map", Kind: OwnerType}},
		{Name: "e", Kind: KindParameter, Owner: Owner{Name: "Handle", Kind: OwnerFunc}},
	}

	for _, s := range symbols {
		got := classify(t, c, s)
		if len(got) != 1 || got[0].Kind.Outcome() != NotMeaningful {
			t.Errorf("Expected one not-meaningful finding for %s, got %v", s.Name, got)
		}
	}

	if n := engine.TotalCalls(); n != 0 {
		t.Errorf("Expected no spelling checks, got %d calls", n)
	}
}

func TestScopedDictionaries(t *testing.T) {
	t.Parallel()

	c := newClassifier(t, spelling.NewChecker(spellingtest.Rejecting("obj", "param", "tipe")),
		dictionary.NewSource("d1.xml", []byte(`<Dictionary><Words>
<Recognized><Word>obj</Word></Recognized><Unrecognized><Word>items</Word></Unrecognized>
</Words></Dictionary>`)),
		dictionary.NewSource("d2.xml", []byte(`<Dictionary><Words>
<Recognized><Word>param</Word></Recognized><Unrecognized><Word>program</Word></Unrecognized>
</Words></Dictionary>`)),
		dictionary.NewSource("d3.dic", []byte("tipe\n")),
	)

	tests := [...]struct {
		name   string
		symbol Symbol
		want   []Finding
	}{
		{
			"type",
			Symbol{Name: "Program", Kind: KindType, Locations: []token.Pos{1}},
			[]Finding{{Kind: MisspelledType, Word: "Program", Name: "Program", Pos: 1}},
		},
		{
			"method",
			Symbol{Name: "CombineItems", Kind: KindFunc, Locations: []token.Pos{2}},
			[]Finding{{Kind: MisspelledMember, Word: "Items", Name: "CombineItems", Pos: 2}},
		},
		{
			"method_type_parameter",
			Symbol{Name: "TTipe", Kind: KindTypeParameter, Owner: Owner{Name: "CombineItems", Kind: OwnerFunc}, Locations: []token.Pos{3}},
			nil,
		},
		{
			"recognized",
			Symbol{Name: "objParam", Kind: KindParameter, Owner: Owner{Name: "CombineItems", Kind: OwnerFunc}, Locations: []token.Pos{4}},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, classify(t, c, tt.symbol)); diff != "" {
				t.Errorf("Findings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBackendUnavailable(t *testing.T) {
	t.Parallel()

	c := newClassifier(t, nil)

	if got := classify(t, c, Symbol{Name: "SomeMathod", Kind: KindFunc, Locations: []token.Pos{1}}); len(got) != 0 {
		t.Errorf("Expected no misspellings without backend, got %v", got)
	}

	if got := classify(t, c, Symbol{Name: "A", Kind: KindType, Locations: []token.Pos{1}}); len(got) != 1 {
		t.Errorf("Expected not-meaningful finding without backend, got %v", got)
	}
}

func TestClassifyRoles(t *testing.T) {
	t.Parallel()

	c := newClassifier(t, spelling.NewChecker(spellingtest.Rejecting("wrng")))

	tests := [...]struct {
		name   string
		symbol Symbol
		want   Kind
	}{
		{"package_path", Symbol{Name: "wrng", Kind: KindPackagePath}, MisspelledAssembly},
		{"package", Symbol{Name: "wrng", Kind: KindPackage}, MisspelledNamespace},
		{"type", Symbol{Name: "Wrng", Kind: KindType}, MisspelledType},
		{"interface", Symbol{Name: "IWrng", Kind: KindType, Interface: true}, MisspelledType},
		{"field", Symbol{Name: "wrng", Kind: KindField}, MisspelledMember},
		{"const", Symbol{Name: "Wrng", Kind: KindConst}, MisspelledMember},
		{"parameter", Symbol{Name: "wrng", Kind: KindParameter, Owner: Owner{Name: "F", Kind: OwnerFunc}}, MisspelledMemberParameter},
		{"func_type_parameter", Symbol{Name: "wrng", Kind: KindParameter, Owner: Owner{Name: "F", Kind: OwnerFuncType}}, MisspelledDelegateParameter},
		{"type_type_parameter", Symbol{Name: "TWrng", Kind: KindTypeParameter, Owner: Owner{Name: "L", Kind: OwnerType}}, MisspelledTypeTypeParameter},
		{"func_type_param", Symbol{Name: "TWrng", Kind: KindTypeParameter, Owner: Owner{Name: "F", Kind: OwnerFunc}}, MisspelledMethodTypeParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classify(t, c, tt.symbol)
			if len(got) != 1 {
				t.Fatalf("Expected one finding, got %v", got)
			}

			if got[0].Kind != tt.want {
				t.Errorf("Got kind %v, want %v", got[0].Kind, tt.want)
			}

			if got[0].Word != "Wrng" && got[0].Word != "wrng" {
				t.Errorf("Got word %q", got[0].Word)
			}
		})
	}
}

func TestShaping(t *testing.T) {
	t.Parallel()

	c := newClassifier(t, spelling.NewChecker(spellingtest.Rejecting("i", "t")))

	tests := [...]struct {
		name   string
		symbol Symbol
		want   int
	}{
		{"interface_prefix", Symbol{Name: "IReader", Kind: KindType, Interface: true}, 0},
		{"struct_keeps_prefix", Symbol{Name: "IReader", Kind: KindType}, 1},
		{"type_parameter_prefix", Symbol{Name: "TReader", Kind: KindTypeParameter, Owner: Owner{Kind: OwnerType}}, 0},
		{"type_parameter_other_prefix", Symbol{Name: "IKey", Kind: KindTypeParameter, Owner: Owner{Kind: OwnerType}}, 1},
		{"lone_marker", Symbol{Name: "T", Kind: KindTypeParameter, Owner: Owner{Kind: OwnerFunc}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classify(t, c, tt.symbol); len(got) != tt.want {
				t.Errorf("Expected %d findings, got %v", tt.want, got)
			}
		})
	}
}

func TestFanOut(t *testing.T) {
	t.Parallel()

	c := newClassifier(t, spelling.NewChecker(spellingtest.Rejecting("wrng")))

	got := classify(t, c, Symbol{Name: "wrng", Kind: KindPackage, Locations: []token.Pos{10, 20, 30}})
	if len(got) != 3 {
		t.Fatalf("Expected one finding per site, got %v", got)
	}

	for i, f := range got {
		if want := token.Pos(10 * (i + 1)); f.Pos != want || f.Kind != MisspelledNamespace || f.Word != "wrng" {
			t.Errorf("Unexpected finding %d: %+v", i, f)
		}
	}

	asm := classify(t, c, Symbol{Name: "wrng", Kind: KindPackagePath, Locations: []token.Pos{10}})
	if len(asm) != 1 || asm[0].Pos != token.NoPos {
		t.Errorf("Expected one unanchored package path finding, got %v", asm)
	}
}

func TestSynthesized(t *testing.T) {
	t.Parallel()

	c := newClassifier(t, spelling.NewChecker(spellingtest.Rejecting("wrng", "x")))

	for _, name := range [...]string{"Wrng", "X"} {
		if got := classify(t, c, Symbol{Name: name, Kind: KindField, Synthesized: true, Locations: []token.Pos{1}}); got != nil {
			t.Errorf("Expected no findings for synthesized %s, got %v", name, got)
		}
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	engine := spellingtest.Rejecting("mathod")
	c := newClassifier(t, spelling.NewChecker(engine))
	s := Symbol{Name: "someMathod", Kind: KindFunc, Locations: []token.Pos{1}}

	first := classify(t, c, s)
	for range 3 {
		if diff := cmp.Diff(first, classify(t, c, s)); diff != "" {
			t.Errorf("Repeated classification differs (-first +got):\n%s", diff)
		}
	}

	if n := engine.Calls("some"); n != 1 {
		t.Errorf("Expected one backend call for some, got %d", n)
	}

	// One check plus one title case retry, then cache hits.
	if n := engine.Calls("Mathod"); n != 2 {
		t.Errorf("Expected two backend calls for Mathod, got %d", n)
	}
}

func TestAlternateSuggestion(t *testing.T) {
	t.Parallel()

	c := newClassifier(t, nil, dictionary.NewSource("CustomDictionary.xml", []byte(`<Dictionary><Words>
<Unrecognized><Word>login</Word></Unrecognized>
<Deprecated><Term PreferredAlternate="LogOn">login</Term></Deprecated>
</Words></Dictionary>`)))

	got := classify(t, c, Symbol{Name: "Login", Kind: KindFunc, Locations: []token.Pos{1}})

	want := []Finding{{Kind: MisspelledMember, Word: "Login", Name: "Login", Pos: 1, Alternate: "LogOn"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Findings mismatch (-want +got):\n%s", diff)
	}
}

func TestResolverError(t *testing.T) {
	t.Parallel()

	errNative := errors.New("native failure")
	c := newClassifier(t, spelling.NewChecker(spellingtest.Rejecting().FailOn("Boom", errNative)))

	if _, err := c.Classify(scope, Symbol{Name: "Boom", Kind: KindType}); !errors.Is(err, errNative) {
		t.Errorf("Expected %v, got %v", errNative, err)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	seen := make(map[Kind]struct{})

	for r := RoleAssembly; r <= RoleMethodTypeParameter; r++ {
		for _, o := range [...]Outcome{NotMeaningful, Misspelled} {
			k := KindOf(r, o)
			if k.Role() != r || k.Outcome() != o {
				t.Errorf("KindOf(%v, %v) = %v does not round trip", r, o, k)
			}

			seen[k] = struct{}{}
		}
	}

	if len(seen) != 16 {
		t.Errorf("Expected 16 distinct kinds, got %d", len(seen))
	}

	if KindOf(RoleDelegateParameter, Misspelled) != MisspelledDelegateParameter {
		t.Error("Unexpected delegate parameter kind")
	}
}
