// Copyright 2023 The Shac Authors
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

package engine

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRender(t *testing.T) {
	t.Parallel()
	data := []struct {
		e    Entry
		want string
	}{
		{
			Entry{Definition: "only"},
			"definition\n    only",
		},
		{
			Entry{See: []string{"a"}},
			"see\n    a",
		},
		{
			Entry{Examples: []string{"line1\nline2\n  nested"}},
			"examples\n    line1\n    line2\n      nested",
		},
		{
			// Declaration order, regardless of the order the fields are set.
			Entry{See: []string{"x", "y"}, Syntax: []string{"s"}, Definition: "d", Details: []string{"t"}},
			"definition\n    d\n\ndetails\n    t\n\nsyntax\n    s\n\nsee\n    x\n\n    y",
		},
		{
			// Blank lines inside a value stay empty.
			Entry{Details: []string{"a\n\nb"}},
			"details\n    a\n\n    b",
		},
		{
			Entry{},
			"",
		},
	}
	for i, line := range data {
		line := line
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(line.want, Render(&line.e, nil)); diff != "" {
				t.Fatalf("mismatch (+want -got):\n%s", diff)
			}
		})
	}
}

func TestRender_Header(t *testing.T) {
	t.Parallel()
	e := Entry{Definition: "d", Examples: []string{"a", "b"}}
	got := Render(&e, func(name string) string { return "[" + name + "]" })
	want := "[definition]\n    d\n\n[examples]\n    a\n\n    b"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (+want -got):\n%s", diff)
	}
}

func TestNoDoc(t *testing.T) {
	t.Parallel()
	if got := NoDoc("x"); got != "No doc for `x`" {
		t.Fatal(got)
	}
}

func TestEntry_Fields(t *testing.T) {
	t.Parallel()
	e := Entry{
		Definition: "d",
		Examples:   []string{"e1", "e2"},
		See:        []string{},
	}
	want := []Field{
		{Name: FieldDefinition, Values: []string{"d"}},
		{Name: FieldExamples, Values: []string{"e1", "e2"}},
	}
	if diff := cmp.Diff(want, e.Fields()); diff != "" {
		t.Fatalf("mismatch (+want -got):\n%s", diff)
	}
	if (&Entry{}).Fields() != nil {
		t.Fatal("expected no field")
	}
}
