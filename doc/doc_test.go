// Copyright 2023 The Shac Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import (
	"strings"
	"testing"

	"go.starlark.net/syntax"
)

func TestStdlibSrc(t *testing.T) {
	t.Parallel()
	f, err := syntax.Parse("stdlib.star", StdlibSrc, 0)
	if err != nil {
		t.Fatal(err)
	}
	var defs []string
	for _, s := range f.Stmts {
		if d, ok := s.(*syntax.DefStmt); ok {
			defs = append(defs, d.Name.Name)
		}
	}
	if got := strings.Join(defs, ","); got != "_symdoc_entry,_symdoc_lookup,_symdoc_min_version" {
		t.Fatal(got)
	}
}
