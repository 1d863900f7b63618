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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/spellguard/analyzer"
	"fillmore-labs.com/spellguard/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.BehaviorFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.CheckReceivers,
			args:    []string{"-generated"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.IncludeGenerated,
			args:    []string{"-generated=false"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Behavior
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.IncludeGenerated
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "generated", "check generated files")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("IncludeGenerated enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if !flags.Enabled(tt.initial) && tt.initial != value {
				t.Errorf("Unrelated flag %v was cleared", tt.initial)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Behavior
	flags.Set(config.IncludeGenerated, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&flags, config.IncludeGenerated)
	fs.Var(fv, "generated", "check generated files")

	const expectedUsage = `
  -generated
    	check generated files (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestListValue(t *testing.T) {
	t.Parallel()

	var list []string

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(NewListValue(&list), "dict", "custom dictionaries")

	if err := fs.Parse([]string{"-dict", "a.dic, b.xml", "-dict=c.dic", "-dict", ","}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if diff := cmp.Diff([]string{"a.dic", "b.xml", "c.dic"}, list); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	if got := fs.Lookup("dict").Value.String(); got != "a.dic,b.xml,c.dic" {
		t.Errorf("String() = %q", got)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range [...]string{"generated", "receivers", "lang", "dict", "config"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Missing flag -%s", name)
		}
	}
}
