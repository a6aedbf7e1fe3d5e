// Copyright (c) 2025, The Read Frog Authors.  All rights reserved.
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

package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a string is not exactly three
// dot-separated non-negative integers.
var ErrInvalidFormat = errors.New("invalid version format")

// grammar accepts exactly "<digits>.<digits>.<digits>" with nothing around it.
var grammar = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)

// Result is the ordering of one version relative to another.
type Result int

const (
	// Less means the left version is older.
	Less Result = -1
	// Equal means all three components match.
	Equal Result = 0
	// Greater means the left version is newer.
	Greater Result = 1
)

// String returns "less", "equal" or "greater".
func (r Result) String() string {
	switch r {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Int returns -1, 0 or 1.
func (r Result) Int() int {
	return int(r)
}

// Version is a three component semantic version. Pre-release and build
// metadata are not supported.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// New creates a Version from its components.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// String returns "Major.Minor.Patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses a "Major.Minor.Patch" string.
// Leading "v" prefixes, surrounding whitespace, fewer or more than three
// components, signs and non-digit characters are all rejected with an error
// wrapping ErrInvalidFormat. A component too large for an int is rejected too.
func Parse(s string) (Version, error) {
	if !grammar.MatchString(s) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	parts := strings.Split(s, ".")
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: component %q out of range", ErrInvalidFormat, s, part)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParse parses a version string and panics if parsing fails.
//
// Only use this for hardcoded strings or in tests. For request input or
// content metadata always use Parse and handle the error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// IsValid reports whether s is a well formed three component version.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Compare orders v relative to other, component by component.
func (v Version) Compare(other Version) Result {
	if r := compareInt(v.Major, other.Major); r != Equal {
		return r
	}
	if r := compareInt(v.Minor, other.Minor); r != Equal {
		return r
	}
	return compareInt(v.Patch, other.Patch)
}

// LessThan reports whether v is strictly older than other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) == Less
}

// AtLeast reports whether v is equal to or newer than other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) != Less
}

// Compare parses a and b and orders a relative to b.
// Both inputs are validated, a first, before any component is compared;
// the returned error wraps ErrInvalidFormat and names the offending string.
func Compare(a, b string) (Result, error) {
	va, err := Parse(a)
	if err != nil {
		return Equal, err
	}
	vb, err := Parse(b)
	if err != nil {
		return Equal, err
	}
	return va.Compare(vb), nil
}

func compareInt(a, b int) Result {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
