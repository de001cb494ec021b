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
	"slices"

	"go.chromium.org/luci/common/errors"
)

// ErrEmptyEntry is returned when an entry has no field set.
var ErrEmptyEntry = errors.New("entry has no field")

// ErrEmptyValue is returned when a multi-valued field contains an empty
// string.
var ErrEmptyValue = errors.New("empty value")

// Symbol associates a documentation Entry to its symbol name.
type Symbol struct {
	Name  string
	Entry Entry
}

// Table is an immutable mapping of symbols to their documentation.
//
// It is safe for concurrent use since it is never modified after
// construction.
type Table struct {
	entries map[string]*Entry
	// order is the authored order of the symbols.
	order []string
}

// NewTable returns a Table containing the entries, in the order given.
//
// Entries are copied.
func NewTable(entries []Symbol) (*Table, error) {
	t := &Table{entries: make(map[string]*Entry, len(entries))}
	for i := range entries {
		if err := t.add(&entries[i], false); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(s *Symbol, replace bool) error {
	if s.Name == "" {
		return errors.New("symbol name must be set")
	}
	if s.Entry.isEmpty() {
		return fmt.Errorf("symbol %q: %w", s.Name, ErrEmptyEntry)
	}
	if f := s.Entry.emptyValue(); f != "" {
		return fmt.Errorf("symbol %q: %s: %w", s.Name, f, ErrEmptyValue)
	}
	e := s.Entry.clone()
	if _, ok := t.entries[s.Name]; ok {
		if !replace {
			return fmt.Errorf("symbol %q was already listed", s.Name)
		}
	} else {
		t.order = append(t.order, s.Name)
	}
	t.entries[s.Name] = &e
	return nil
}

// Overlay returns a new Table where entries replace the ones with the same
// name, keeping their position, and new ones are appended.
//
// t is not modified. A symbol may only be listed once in entries.
func (t *Table) Overlay(entries []Symbol) (*Table, error) {
	n := &Table{
		entries: make(map[string]*Entry, len(t.entries)+len(entries)),
		order:   slices.Clone(t.order),
	}
	for k, v := range t.entries {
		n.entries[k] = v
	}
	seen := make(map[string]struct{}, len(entries))
	for i := range entries {
		if _, ok := seen[entries[i].Name]; ok {
			return nil, fmt.Errorf("symbol %q was already listed", entries[i].Name)
		}
		seen[entries[i].Name] = struct{}{}
		if err := n.add(&entries[i], true); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Get returns a copy of the entry for symbol.
func (t *Table) Get(symbol string) (Entry, bool) {
	e, ok := t.entries[symbol]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// Symbols returns the symbols in authored order.
func (t *Table) Symbols() []string {
	return slices.Clone(t.order)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.order)
}

// Lookup returns the rendered documentation for symbol.
//
// It never fails: an unknown symbol returns a message stating there is no
// documentation for it.
func (t *Table) Lookup(symbol string) string {
	e, ok := t.entries[symbol]
	if !ok {
		return NoDoc(symbol)
	}
	return Render(e, nil)
}

// Lookup returns the rendered documentation for symbol from the built-in
// table.
func Lookup(symbol string) string {
	return builtin.Lookup(symbol)
}

// Builtin returns the built-in table.
func Builtin() *Table {
	return builtin
}

// builtin is constructed once at initialization and never modified.
var builtin = mustTable(builtinEntries)

func mustTable(entries []Symbol) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}
