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

// Package main implements a check that the engine package doesn't write to
// the standard streams.
//
// Rendering must stay side-effect free: the engine returns strings and the
// cli package decides where they go.
package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/types/typeutil"
)

// enginePkgSuffix selects the packages checked.
const enginePkgSuffix = "internal/engine"

var noPrint = &analysis.Analyzer{
	Name: "noprint",
	Doc:  "do not print or use os.Stdout/os.Stderr from the engine package",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if !strings.HasSuffix(pass.Pkg.Path(), enginePkgSuffix) {
		return nil, nil
	}
	for _, f := range pass.Files {
		if strings.HasSuffix(pass.Fset.File(f.Pos()).Name(), "_test.go") {
			continue
		}
		ast.Inspect(f, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.CallExpr:
				switch fn := typeutil.Callee(pass.TypesInfo, n).(type) {
				case *types.Builtin:
					if name := fn.Name(); name == "print" || name == "println" {
						pass.Reportf(n.Pos(), "do not call %s(), return the text instead", name)
					}
				case *types.Func:
					if fn.Pkg() != nil && fn.Pkg().Path() == "fmt" && strings.HasPrefix(fn.Name(), "Print") {
						pass.Reportf(n.Pos(), "do not call fmt.%s(), return the text instead", fn.Name())
					}
				}
			case *ast.SelectorExpr:
				v, ok := pass.TypesInfo.Uses[n.Sel].(*types.Var)
				if !ok || v.Pkg() == nil || v.Pkg().Path() != "os" {
					return true
				}
				if name := v.Name(); name == "Stdout" || name == "Stderr" {
					pass.Reportf(n.Pos(), "do not use os.%s, return the text instead", name)
				}
			}
			return true
		})
	}
	return nil, nil
}

func main() {
	multichecker.Main(noPrint)
}
