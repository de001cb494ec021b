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
	"go.chromium.org/luci/common/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Export returns the documentation of symbols as JSON.
//
// When no symbol is specified, all the symbols in t are exported in authored
// order. The output is a list of objects with the keys "symbol" and
// "fields", the latter being a list of {"name", "values"} objects in
// declaration order. An unknown symbol is exported as
// {"symbol": name, "missing": true}.
func Export(t *Table, symbols ...string) ([]byte, error) {
	l, err := exportList(t, symbols)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true}.Marshal(l)
}

func exportList(t *Table, symbols []string) (*structpb.ListValue, error) {
	if len(symbols) == 0 {
		symbols = t.order
	}
	items := make([]any, 0, len(symbols))
	for _, s := range symbols {
		e, ok := t.entries[s]
		if !ok {
			items = append(items, map[string]any{"symbol": s, "missing": true})
			continue
		}
		var fields []any
		for _, f := range e.Fields() {
			values := make([]any, 0, len(f.Values))
			for _, v := range f.Values {
				values = append(values, v)
			}
			fields = append(fields, map[string]any{"name": f.Name, "values": values})
		}
		items = append(items, map[string]any{"symbol": s, "fields": fields})
	}
	l, err := structpb.NewList(items)
	if err != nil {
		return nil, errors.Annotate(err, "converting documentation").Err()
	}
	return l, nil
}
