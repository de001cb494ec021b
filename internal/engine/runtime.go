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
	"fmt"

	"go.chromium.org/luci/starlark/builtins"
	"go.starlark.net/lib/json"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// getPredeclared returns the predeclared starlark symbols in the runtime.
func getPredeclared() starlark.StringDict {
	// The universe builtins (len, str, dict, ...) are always available.
	d := starlark.StringDict{
		"symdoc": toValue("symdoc", starlark.StringDict{
			"entry":       starlark.NewBuiltin("symdoc.entry", symdocEntry),
			"lookup":      starlark.NewBuiltin("symdoc.lookup", symdocLookup),
			"min_version": starlark.NewBuiltin("symdoc.min_version", symdocMinVersion),
			"version": starlark.Tuple{
				starlark.MakeInt(Version[0]), starlark.MakeInt(Version[1]), starlark.MakeInt(Version[2]),
			},
		}),

		"json": json.Module,

		// Override fail to include additional functionality.
		"fail": builtins.Fail,
		// struct is an helper function that enables users to create seamless
		// object instances.
		"struct": builtins.Struct,
	}
	d.Freeze()
	return d
}

// symdocEntry implements native function symdoc.entry().
func symdocEntry(th *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var symbol, definition string
	var details, syntax, examples, see starlark.Value = starlark.None, starlark.None, starlark.None, starlark.None
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"symbol", &symbol,
		"definition?", &definition,
		"details?", &details,
		"syntax?", &syntax,
		"examples?", &examples,
		"see?", &see,
	); err != nil {
		return nil, err
	}
	e := Entry{Definition: definition}
	var err error
	if e.Details, err = toStrings("details", details); err != nil {
		return nil, err
	}
	if e.Syntax, err = toStrings("syntax", syntax); err != nil {
		return nil, err
	}
	if e.Examples, err = toStrings("examples", examples); err != nil {
		return nil, err
	}
	if e.See, err = toStrings("see", see); err != nil {
		return nil, err
	}
	if err := ctxLoadState(th).declare(symbol, e); err != nil {
		return nil, err
	}
	return starlark.None, nil
}

// symdocLookup implements native function symdoc.lookup().
func symdocLookup(th *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var symbol string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "symbol", &symbol); err != nil {
		return nil, err
	}
	return starlark.String(ctxLoadState(th).lookup(symbol)), nil
}

// symdocMinVersion implements native function symdoc.min_version().
func symdocMinVersion(th *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "version", &v); err != nil {
		return nil, err
	}
	if err := checkMinVersion(v); err != nil {
		return nil, err
	}
	return starlark.None, nil
}

// toStrings normalizes a string or a sequence of strings into a slice.
//
// None and empty sequences return nil.
func toStrings(name string, v starlark.Value) ([]string, error) {
	switch x := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.String:
		if x == "" {
			return nil, fmt.Errorf("for parameter %q: empty string", name)
		}
		return []string{string(x)}, nil
	case *starlark.List, starlark.Tuple:
		it := x.(starlark.Iterable).Iterate()
		defer it.Done()
		var out []string
		var item starlark.Value
		for it.Next(&item) {
			s, ok := item.(starlark.String)
			if !ok {
				return nil, fmt.Errorf("for parameter %q: got %s in sequence, want string", name, item.Type())
			}
			if s == "" {
				return nil, fmt.Errorf("for parameter %q: empty string in sequence", name)
			}
			out = append(out, string(s))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("for parameter %q: got %s, want string or sequence of strings", name, v.Type())
	}
}

// toValue converts a StringDict to a Value.
func toValue(name string, d starlark.StringDict) starlark.Value {
	return starlarkstruct.FromStringDict(starlark.String(name), d)
}
