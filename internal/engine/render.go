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
	"io"
	"strings"

	"go.chromium.org/luci/common/data/text/indented"
)

// valueIndent is the number of spaces prepended to each line of a value.
const valueIndent = 4

// NoDoc is the text returned for a symbol without documentation.
func NoDoc(symbol string) string {
	return "No doc for `" + symbol + "`"
}

// Render formats the fields of e as blocks separated by a blank line.
//
// Each block is the field name on its own line followed by the field values,
// each indented by 4 spaces on every line and separated by a blank line.
//
// header, when not nil, decorates the field name line.
func Render(e *Entry, header func(name string) string) string {
	b := strings.Builder{}
	for i, f := range e.Fields() {
		if i != 0 {
			b.WriteString("\n\n")
		}
		name := f.Name
		if header != nil {
			name = header(name)
		}
		b.WriteString(name)
		b.WriteByte('\n')
		for j, v := range f.Values {
			if j != 0 {
				b.WriteString("\n\n")
			}
			// Blank lines inside v are left empty.
			w := indented.Writer{Writer: &b, Level: valueIndent, UseSpaces: true}
			// strings.Builder never fails.
			_, _ = io.WriteString(&w, v)
		}
	}
	return b.String()
}
