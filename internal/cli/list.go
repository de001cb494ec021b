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
	"errors"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

type listCmd struct {
	commandBase
}

func (*listCmd) Name() string {
	return "list"
}

func (*listCmd) Description() string {
	return "Lists the documented symbols."
}

func (l *listCmd) SetFlags(f *flag.FlagSet) {
	l.commandBase.SetFlags(f)
}

func (l *listCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	t, err := l.table(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, strings.Join(t.Symbols(), "\n")+"\n")
	return err
}
