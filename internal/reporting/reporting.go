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

// Package reporting prints documentation in a way suited to the current
// environment.
package reporting

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.fuchsia.dev/shac-project/symdoc/internal/engine"
)

// Printer writes rendered documentation.
type Printer interface {
	// Print writes the documentation of symbol from t, followed by a newline.
	Print(ctx context.Context, t *engine.Table, symbol string) error
}

// Get returns the right Printer implementation based on the current
// environment.
func Get() Printer {
	switch {
	case os.Getenv("NO_COLOR") != "":
		// https://no-color.org/
		return &basic{out: os.Stdout}
	case os.Getenv("TERM") != "dumb" && isatty.IsTerminal(os.Stdout.Fd()):
		// Active terminal. Colors! This includes VSCode's integrated terminal.
		return &interactive{out: colorable.NewColorableStdout()}
	default:
		// Anything else, e.g. redirected output.
		return &basic{out: os.Stdout}
	}
}

// Plain returns a Printer writing to w without any decoration.
func Plain(w io.Writer) Printer {
	return &basic{out: w}
}

// basic writes exactly what engine.Table.Lookup returns.
type basic struct {
	out io.Writer
}

func (b *basic) Print(ctx context.Context, t *engine.Table, symbol string) error {
	_, err := io.WriteString(b.out, t.Lookup(symbol)+"\n")
	return err
}

// interactive highlights the field headers.
type interactive struct {
	out io.Writer
}

func (i *interactive) Print(ctx context.Context, t *engine.Table, symbol string) error {
	e, ok := t.Get(symbol)
	if !ok {
		_, err := io.WriteString(i.out, fgYellow.String()+engine.NoDoc(symbol)+reset.String()+"\n")
		return err
	}
	s := engine.Render(&e, func(name string) string {
		return bold.String() + fgHiCyan.String() + name + reset.String()
	})
	_, err := io.WriteString(i.out, s+"\n")
	return err
}
