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

import "slices"

// Field names, in the order they are rendered.
const (
	FieldDefinition = "definition"
	FieldDetails    = "details"
	FieldSyntax     = "syntax"
	FieldExamples   = "examples"
	FieldSee        = "see"
)

// Entry is the documentation for one symbol.
//
// Multi-valued fields are always sequences; a nil or empty slice means the
// field is absent.
type Entry struct {
	// Definition is a short description of the symbol.
	Definition string
	// Details is longer-form text.
	Details []string
	// Syntax shows syntax templates.
	Syntax []string
	// Examples are code snippets.
	Examples []string
	// See lists related symbols. The targets are not required to exist.
	See []string
}

// Field is one named part of an Entry.
type Field struct {
	Name   string
	Values []string
}

// Fields returns the fields present in e, in declaration order.
func (e *Entry) Fields() []Field {
	var out []Field
	if e.Definition != "" {
		out = append(out, Field{Name: FieldDefinition, Values: []string{e.Definition}})
	}
	for _, f := range [...]Field{
		{FieldDetails, e.Details},
		{FieldSyntax, e.Syntax},
		{FieldExamples, e.Examples},
		{FieldSee, e.See},
	} {
		if len(f.Values) != 0 {
			out = append(out, f)
		}
	}
	return out
}

// emptyValue returns the name of the first field holding an empty string, if
// any.
func (e *Entry) emptyValue() string {
	for _, f := range e.Fields() {
		for _, v := range f.Values {
			if v == "" {
				return f.Name
			}
		}
	}
	return ""
}

// isEmpty returns true if no field is set.
func (e *Entry) isEmpty() bool {
	return e.Definition == "" && len(e.Details) == 0 && len(e.Syntax) == 0 &&
		len(e.Examples) == 0 && len(e.See) == 0
}

func (e *Entry) clone() Entry {
	return Entry{
		Definition: e.Definition,
		Details:    slices.Clone(e.Details),
		Syntax:     slices.Clone(e.Syntax),
		Examples:   slices.Clone(e.Examples),
		See:        slices.Clone(e.See),
	}
}
