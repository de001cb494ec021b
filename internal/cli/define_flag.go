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

package cli

import (
	"errors"
	"strings"

	flag "github.com/spf13/pflag"
	"go.fuchsia.dev/shac-project/symdoc/internal/engine"
)

// defineFlag collects symbol=definition pairs in command line order.
type defineFlag []engine.Symbol

var _ flag.Value = (*defineFlag)(nil)

func (v *defineFlag) String() string {
	out := make([]string, 0, len(*v))
	for _, s := range *v {
		out = append(out, s.Name+"="+s.Entry.Definition)
	}
	return strings.Join(out, ",")
}

func (v *defineFlag) Set(s string) error {
	name, value, ok := splitDefine(s)
	if !ok {
		return errors.New("must be of the form symbol=definition")
	}
	if value == "" {
		return errors.New("definition must not be empty")
	}
	for _, d := range *v {
		if d.Name == name {
			return errors.New("duplicate symbol")
		}
	}
	*v = append(*v, engine.Symbol{Name: name, Entry: engine.Entry{Definition: value}})
	return nil
}

// splitDefine cuts s at the first '=' that is not followed by another '='.
//
// This lets symbols containing '=' be defined, e.g. "===equal" defines "==".
// The symbol must not be empty.
func splitDefine(s string) (string, string, bool) {
	for i := 1; i < len(s); i++ {
		if s[i] == '=' && (i+1 == len(s) || s[i+1] != '=') {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

func (v *defineFlag) Type() string {
	return "symbol=definition"
}
