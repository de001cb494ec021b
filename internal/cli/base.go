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
	"context"

	flag "github.com/spf13/pflag"
	"go.fuchsia.dev/shac-project/symdoc/internal/engine"
)

type commandBase struct {
	load    []string
	defines defineFlag
}

func (c *commandBase) SetFlags(f *flag.FlagSet) {
	f.StringArrayVarP(&c.load, "load", "l", nil, "starlark file adding documentation entries; can be repeated, later files win")
	f.VarP(&c.defines, "define", "D", "ad-hoc symbol=definition entry applied after --load files; the symbol ends at the first '=' not followed by another '='; can be repeated")
}

// table returns the built-in table overlaid with the --load files then the
// --define entries.
func (c *commandBase) table(ctx context.Context) (*engine.Table, error) {
	t, err := engine.Load(ctx, engine.Builtin(), c.load...)
	if err != nil || len(c.defines) == 0 {
		return t, err
	}
	return t.Overlay(c.defines)
}
