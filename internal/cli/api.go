// Copyright 2023 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"io"

	flag "github.com/spf13/pflag"
	"go.fuchsia.dev/shac-project/symdoc/doc"
)

type apiCmd struct {
}

func (*apiCmd) Name() string {
	return "api"
}

func (*apiCmd) Description() string {
	return "Prints the API available to --load starlark files."
}

func (*apiCmd) SetFlags(f *flag.FlagSet) {
}

func (*apiCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	_, err := io.WriteString(stdout, doc.StdlibSrc)
	return err
}
