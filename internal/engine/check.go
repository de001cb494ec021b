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
	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
)

// Check verifies that every cross-reference in t points to a documented
// symbol.
//
// It returns an errors.MultiError of *DanglingRefError, in table order, or
// nil. Each symbol/target pair is reported once.
func Check(t *Table) error {
	var errs errors.MultiError
	for _, name := range t.order {
		seen := stringset.New(len(t.entries[name].See))
		for _, target := range t.entries[name].See {
			if _, ok := t.entries[target]; ok || !seen.Add(target) {
				continue
			}
			errs = append(errs, &DanglingRefError{Symbol: name, Target: target})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
