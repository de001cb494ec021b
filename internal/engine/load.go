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
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"go.chromium.org/luci/common/errors"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"golang.org/x/sync/errgroup"
)

// Load returns base overlaid with the entries declared in the starlark
// files.
//
// Files are parsed concurrently and merged in the order specified, so an entry
// in a later file replaces the same symbol from an earlier one. base is not
// modified.
func Load(ctx context.Context, base *Table, files ...string) (*Table, error) {
	decls := make([][]Symbol, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, f := range files {
		i, f := i, f
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := loadFile(ctx, base, f)
			if err != nil {
				return errors.Annotate(err, "%s", f).Err()
			}
			decls[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	t := base
	for i, s := range decls {
		var err error
		if t, err = t.Overlay(s); err != nil {
			return nil, errors.Annotate(err, "%s", files[i]).Err()
		}
	}
	log.Printf("loaded %d file(s), %d symbols", len(files), t.Len())
	return t, nil
}

func starlarkOptions() *syntax.FileOptions {
	return &syntax.FileOptions{
		// Enable not-yet-standard Starlark features.
		Set:       true,
		While:     true,
		Recursion: true,
	}
}

// loadState is the state of a single starlark file being executed.
type loadState struct {
	base *Table
	// symbols are the entries declared via symdoc.entry(), in call order.
	//
	// A file is executed by a single thread, so no lock is needed.
	symbols     []Symbol
	index       map[string]int
	printCalled bool
}

const loadStateKey = "symdoc.loadState"

// ctxLoadState pulls out *loadState from the thread.
//
// Panics if not there.
func ctxLoadState(th *starlark.Thread) *loadState {
	return th.Local(loadStateKey).(*loadState)
}

// loadFile executes one starlark file and returns the entries it declared.
func loadFile(ctx context.Context, base *Table, file string) ([]Symbol, error) {
	if !strings.HasSuffix(file, ".star") {
		return nil, errors.New("invalid source file name, expecting .star suffix")
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	s := &loadState{base: base, index: map[string]int{}}
	th := &starlark.Thread{
		Name: file,
		Print: func(th *starlark.Thread, msg string) {
			s.printCalled = true
			pos := th.CallFrame(1).Pos
			log.Printf("[%s:%d] %s", pos.Filename(), pos.Line, msg)
		},
	}
	th.SetLocal(loadStateKey, s)
	stop := context.AfterFunc(ctx, func() {
		th.Cancel(ctx.Err().Error())
	})
	defer stop()

	if _, err = starlark.ExecFileOptions(starlarkOptions(), th, file, b, getPredeclared()); err != nil {
		return nil, toBacktraceable(err)
	}
	if len(s.symbols) == 0 && !s.printCalled {
		return nil, errors.New("did you forget to call symdoc.entry?")
	}
	return s.symbols, nil
}

// toBacktraceable converts starlark errors into a BacktraceableError when
// possible.
func toBacktraceable(err error) error {
	var errl resolve.ErrorList
	if errors.As(err, &errl) && len(errl) != 0 {
		// Only keep the first one.
		return &failure{
			Message: errl[0].Msg,
			Stack:   starlark.CallStack{starlark.CallFrame{Name: "<toplevel>", Pos: errl[0].Pos}},
		}
	}
	var errs syntax.Error
	if errors.As(err, &errs) {
		return &failure{
			Message: errs.Msg,
			Stack:   starlark.CallStack{starlark.CallFrame{Name: "<toplevel>", Pos: errs.Pos}},
		}
	}
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return &evalError{evalErr}
	}
	return err
}

// declare records an entry declared by symdoc.entry().
func (s *loadState) declare(name string, e Entry) error {
	if name == "" {
		return errors.New("symbol must be set")
	}
	if e.isEmpty() {
		return fmt.Errorf("symbol %q: %w", name, ErrEmptyEntry)
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("symbol %q was already declared", name)
	}
	s.index[name] = len(s.symbols)
	s.symbols = append(s.symbols, Symbol{Name: name, Entry: e})
	return nil
}

// lookup renders a symbol declared so far in this file, falling back to
// the base table.
func (s *loadState) lookup(name string) string {
	if i, ok := s.index[name]; ok {
		return Render(&s.symbols[i].Entry, nil)
	}
	return s.base.Lookup(name)
}
