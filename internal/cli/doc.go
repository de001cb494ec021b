// Copyright 2023 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"io"

	flag "github.com/spf13/pflag"
	"go.fuchsia.dev/shac-project/symdoc/internal/engine"
)

type docCmd struct {
	commandBase
	json bool
}

func (*docCmd) Name() string {
	return "doc"
}

func (*docCmd) Description() string {
	return "Prints out documentation for one or more symbols."
}

func (d *docCmd) SetFlags(f *flag.FlagSet) {
	d.commandBase.SetFlags(f)
	f.BoolVar(&d.json, "json", false, "print as JSON")
}

func (d *docCmd) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("specify at least one symbol")
	}
	t, err := d.table(ctx)
	if err != nil {
		return err
	}
	if d.json {
		b, err := engine.Export(t, args...)
		if err != nil {
			return err
		}
		_, err = stdout.Write(append(b, '\n'))
		return err
	}
	p := newPrinter()
	for i, s := range args {
		if i != 0 {
			if _, err := io.WriteString(stdout, "\n"); err != nil {
				return err
			}
		}
		if err := p.Print(ctx, t, s); err != nil {
			return err
		}
	}
	return nil
}
