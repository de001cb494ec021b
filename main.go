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

// Package symdoc is symdoc's CLI executable.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"
	"go.fuchsia.dev/shac-project/symdoc/internal/cli"
	"go.fuchsia.dev/shac-project/symdoc/internal/engine"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()
	err := cli.Main(ctx, os.Args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}
	var stackerr engine.BacktraceableError
	if errors.As(err, &stackerr) {
		_, _ = os.Stderr.WriteString(stackerr.Backtrace())
	}
	// A context cancellation on a terminal is likely a Ctrl-C, there's no need
	// to print anything.
	if !isatty.IsTerminal(os.Stderr.Fd()) || !errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintf(os.Stderr, "symdoc: %s\n", err)
	}
	cancel()
	os.Exit(1)
}
