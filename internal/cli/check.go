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
	"fmt"

	flag "github.com/spf13/pflag"
	"go.chromium.org/luci/common/errors"
	"go.fuchsia.dev/shac-project/symdoc/internal/engine"
)

type checkCmd struct {
	commandBase
}

func (*checkCmd) Name() string {
	return "check"
}

func (*checkCmd) Description() string {
	return "Verifies that every cross-reference points to a documented symbol."
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
}

func (c *checkCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	t, err := c.table(ctx)
	if err != nil {
		return err
	}
	err = engine.Check(t)
	var errs errors.MultiError
	if !errors.As(err, &errs) {
		return err
	}
	for _, e := range errs {
		if _, err := fmt.Fprintln(stdout, e); err != nil {
			return err
		}
	}
	return fmt.Errorf("found %d dangling cross-reference(s)", len(errs))
}
