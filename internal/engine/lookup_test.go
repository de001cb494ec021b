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
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	data := []struct {
		symbol string
		want   string
	}{
		{
			"not",
			"definition\n" +
				"    `not` inverts a boolean\n" +
				"\n" +
				"examples\n" +
				"    not true # is false",
		},
		{
			"nonexistent-symbol",
			"No doc for `nonexistent-symbol`",
		},
		{
			"",
			"No doc for ``",
		},
		{
			"->",
			"definition\n" +
				"    A function\n" +
				"\n" +
				"details\n" +
				"    Takes the arguments (comma-separated) on the left, and the function's body on the right (or indented).\n" +
				"    The last expression is returned by default.\n" +
				"    You can put a \n" +
				"\n" +
				"syntax\n" +
				"    (Arguments) -> Body\n" +
				"\n" +
				"examples\n" +
				"    add = (x, y) -> x + y\n" +
				"\n" +
				"    upper = (str) -> str.toUpperCase()\n" +
				"\n" +
				"see\n" +
				"    -->\n" +
				"\n" +
				"    !->\n" +
				"\n" +
				"    ~>",
		},
		{
			"-->",
			"definition\n" +
				"    A curried function.\n" +
				"\n" +
				"examples\n" +
				"    add-curried = (x, y) --> x + y\n" +
				"    add2 = add-curried(2)\n" +
				"    add2(4)\n" +
				"\n" +
				"    call = (o, fn) --> obj[fn]()\n" +
				"    call('hey')('toUpperCase')\n" +
				"\n" +
				"see\n" +
				"    ->",
		},
		{
			"postfix:!",
			"definition\n" +
				"    Calls a function with no argument. Equivalent to empty parentheses (`()`)\n" +
				"\n" +
				"examples\n" +
				"    fn = ->\n" +
				"    fn! # equivalent to fn()",
		},
	}
	for i, line := range data {
		line := line
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(line.want, Lookup(line.symbol)); diff != "" {
				t.Fatalf("mismatch (+want -got):\n%s", diff)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"nonexistent-symbol", "NOT", " not", "`", "see", "definition"} {
		if got, want := Lookup(s), "No doc for `"+s+"`"; got != want {
			t.Errorf("Lookup(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestLookup_AllBuiltins(t *testing.T) {
	t.Parallel()
	tbl := Builtin()
	if tbl.Len() == 0 {
		t.Fatal("empty built-in table")
	}
	for _, s := range tbl.Symbols() {
		got := Lookup(s)
		if got == "" || strings.HasPrefix(got, "No doc for") {
			t.Errorf("%q: got %q", s, got)
			continue
		}
		if got != Lookup(s) {
			t.Errorf("%q: not idempotent", s)
		}
		if strings.HasPrefix(got, "\n") || strings.HasSuffix(got, "\n") {
			t.Errorf("%q: surrounding blank lines: %q", s, got)
		}
		e, _ := tbl.Get(s)
		// Every field header must be present in declaration order, and every
		// value line indented.
		last := -1
		for _, f := range e.Fields() {
			i := strings.Index(got, f.Name+"\n")
			if i <= last {
				t.Errorf("%q: field %q out of order", s, f.Name)
			}
			last = i
			for _, v := range f.Values {
				for _, l := range strings.Split(v, "\n") {
					if !strings.Contains(got, "    "+l) {
						t.Errorf("%q: missing indented line %q", s, l)
					}
				}
			}
		}
	}
}

func TestLookup_Concurrent(t *testing.T) {
	t.Parallel()
	want := Lookup("->")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range Builtin().Symbols() {
				Lookup(s)
			}
			if got := Lookup("->"); got != want {
				t.Errorf("got %q", got)
			}
		}()
	}
	wg.Wait()
}
