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

package report

import (
	"context"
	"fmt"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/spellguard/internal/naming"
)

// Findings reports each finding as a diagnostic.
//
// Findings without a declaration site, like package paths, are reported at anchor.
func Findings(ctx context.Context, p *analysis.Pass, anchor token.Pos, findings []naming.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		pos := f.Pos
		if !pos.IsValid() {
			pos = anchor
		}

		p.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: f.Kind.String(),
			Message:  Message(f),
		})
	}
}

// subject names the declaration kind in messages, indexed by role.
var subject = [...]string{
	naming.RoleAssembly:            "package path",
	naming.RoleNamespace:           "package name",
	naming.RoleType:                "type name",
	naming.RoleMember:              "member name",
	naming.RoleMemberParameter:     "parameter name",
	naming.RoleDelegateParameter:   "parameter name",
	naming.RoleTypeTypeParameter:   "type parameter name",
	naming.RoleMethodTypeParameter: "type parameter name",
}

// Message renders the diagnostic message of a finding.
func Message(f naming.Finding) string {
	role := f.Kind.Role()

	var msg []byte

	switch role {
	case naming.RoleMemberParameter:
		msg = fmt.Appendf(msg, "In function %s, ", f.Container)

	case naming.RoleDelegateParameter:
		msg = fmt.Appendf(msg, "In function type %s, ", f.Container)

	case naming.RoleTypeTypeParameter:
		msg = fmt.Appendf(msg, "On type %s, ", f.Container)

	case naming.RoleMethodTypeParameter:
		msg = fmt.Appendf(msg, "On function %s, ", f.Container)
	}

	capital := len(msg) == 0

	switch f.Kind.Outcome() {
	case naming.Misspelled:
		verb := "correct"
		if capital {
			verb = "Correct"
		}

		msg = fmt.Appendf(msg, "%s the spelling of '%s' in %s %s", verb, f.Word, subject[role], f.Name)
		if f.Alternate != "" {
			msg = fmt.Appendf(msg, ", consider '%s'", f.Alternate)
		}

		msg = fmt.Appendf(msg, " (sp:%s)", role.Code())

	default:
		verb := "consider"
		if capital {
			verb = "Consider"
		}

		msg = fmt.Appendf(msg, "%s providing a more meaningful name than %s %s (mn:%s)", verb, subject[role], f.Name, role.Code())
	}

	return string(msg)
}
