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

package analyzer

import (
	"flag"
	"strconv"
	"strings"

	"fillmore-labs.com/spellguard/internal/config"
)

// NewBehaviorValue returns a boolean [flag.Getter] toggling value in flags.
func NewBehaviorValue(flags *config.Behavior, value config.BehaviorFlags) flag.Getter {
	return boolValue[config.BehaviorFlags, *config.Behavior]{flags: flags, value: value}
}

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// NewListValue returns a [flag.Getter] appending comma-separated items to list.
func NewListValue(list *[]string) flag.Getter {
	return listValue{list: list}
}

type listValue struct{ list *[]string }

// Set implements [flag.Value].
func (l listValue) Set(s string) error {
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l.list = append(*l.list, item)
		}
	}

	return nil
}

// String implements [flag.Value].
func (l listValue) String() string {
	if l.list == nil {
		return ""
	}

	return strings.Join(*l.list, ",")
}

// Get implements [flag.Getter].
func (l listValue) Get() any {
	if l.list == nil {
		return []string(nil)
	}

	return *l.list
}
