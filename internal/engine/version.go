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

	"golang.org/x/mod/semver"
)

type toolVersion [3]int

var (
	// Version is the current tool version.
	Version = toolVersion{0, 2, 0}
)

func (v toolVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

// checkMinVersion returns an error if want is not a valid version or is newer
// than Version.
//
// The "v" prefix is optional.
func checkMinVersion(want string) error {
	s := want
	if len(s) == 0 || s[0] != 'v' {
		s = "v" + s
	}
	if !semver.IsValid(s) {
		return fmt.Errorf("invalid version %q", want)
	}
	if semver.Compare(s, "v"+Version.String()) > 0 {
		return fmt.Errorf("unsupported version %q, running %s", want, Version)
	}
	return nil
}
