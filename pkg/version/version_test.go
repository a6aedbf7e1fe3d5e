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
	"strings"
	"testing"

	"golang.org/x/mod/semver"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Version
		wantErr  bool
	}{
		{name: "simple", input: "1.2.3", expected: New(1, 2, 3)},
		{name: "zeros", input: "0.0.0", expected: New(0, 0, 0)},
		{name: "multi digit", input: "1.10.0", expected: New(1, 10, 0)},
		{name: "large", input: "999.999.999", expected: New(999, 999, 999)},
		{name: "leading zero", input: "01.2.3", expected: New(1, 2, 3)},
		{name: "empty", input: "", wantErr: true},
		{name: "major only", input: "1", wantErr: true},
		{name: "two components", input: "1.2", wantErr: true},
		{name: "four components", input: "1.2.3.4", wantErr: true},
		{name: "non numeric", input: "1.a.3", wantErr: true},
		{name: "v prefix", input: "v1.2.3", wantErr: true},
		{name: "negative", input: "1.-2.3", wantErr: true},
		{name: "plus sign", input: "+1.2.3", wantErr: true},
		{name: "prerelease", input: "1.2.3-beta", wantErr: true},
		{name: "build metadata", input: "1.2.3+build", wantErr: true},
		{name: "leading space", input: " 1.2.3", wantErr: true},
		{name: "trailing space", input: "1.2.3 ", wantErr: true},
		{name: "trailing newline", input: "1.2.3\n", wantErr: true},
		{name: "inner space", input: "1. 2.3", wantErr: true},
		{name: "empty component", input: "1..3", wantErr: true},
		{name: "trailing dot", input: "1.2.", wantErr: true},
		{name: "overflow", input: "1.2.99999999999999999999", wantErr: true},
		{name: "unicode digit", input: "1.２.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %+v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want Result
	}{
		{"exact equality", "1.2.3", "1.2.3", Equal},
		{"numeric not lexicographic", "1.9.0", "1.10.0", Less},
		{"numeric not lexicographic reversed", "1.10.0", "1.9.0", Greater},
		{"major dominates", "2.0.0", "1.99.99", Greater},
		{"minor dominates patch", "1.2.0", "1.1.99", Greater},
		{"patch decides", "1.2.3", "1.2.4", Less},
		{"zero", "0.0.0", "0.0.1", Less},
		{"leading zero is numeric", "1.02.0", "1.2.0", Equal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Compare(%q, %q) unexpected error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Compare(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompare_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		a       string
		b       string
		invalid string
	}{
		{"two components left", "1.2", "1.2.3", "1.2"},
		{"four components left", "1.2.3.4", "1.2.3", "1.2.3.4"},
		{"non numeric left", "1.a.3", "1.2.3", "1.a.3"},
		{"invalid right", "1.2.3", "x", "x"},
		{"both invalid reports left", "bad", "worse", "bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			if err == nil {
				t.Fatalf("Compare(%q, %q) = %v, expected error", tt.a, tt.b, got)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("expected ErrInvalidFormat, got %v", err)
			}
			want := fmt.Sprintf("%q", tt.invalid)
			if msg := err.Error(); !strings.Contains(msg, want) {
				t.Errorf("error %q does not name %s", msg, want)
			}
		})
	}
}

var propertyVersions = []string{
	"0.0.0", "0.0.1", "0.1.0", "0.9.9", "1.0.0", "1.0.1", "1.2.3",
	"1.9.0", "1.10.0", "1.10.1", "1.99.99", "2.0.0", "10.0.0", "10.2.0",
}

func TestCompare_Reflexive(t *testing.T) {
	for _, v := range propertyVersions {
		got, err := Compare(v, v)
		if err != nil {
			t.Fatalf("Compare(%q, %q) unexpected error: %v", v, v, err)
		}
		if got != Equal {
			t.Errorf("Compare(%q, %q) = %v, want equal", v, v, got)
		}
	}
}

func TestCompare_Antisymmetric(t *testing.T) {
	for _, a := range propertyVersions {
		for _, b := range propertyVersions {
			ab, err := Compare(a, b)
			if err != nil {
				t.Fatal(err)
			}
			ba, err := Compare(b, a)
			if err != nil {
				t.Fatal(err)
			}
			if ab != -ba {
				t.Errorf("Compare(%q,%q)=%v but Compare(%q,%q)=%v", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestCompare_Transitive(t *testing.T) {
	for _, a := range propertyVersions {
		for _, b := range propertyVersions {
			for _, c := range propertyVersions {
				ab, _ := Compare(a, b)
				bc, _ := Compare(b, c)
				if ab == Greater || bc == Greater {
					continue
				}
				if ac, _ := Compare(a, c); ac == Greater {
					t.Errorf("%q <= %q <= %q but Compare(%q,%q) = greater", a, b, c, a, c)
				}
			}
		}
	}
}

// x/mod/semver requires a "v" prefix but otherwise orders plain
// Major.Minor.Patch versions the same way.
func TestCompare_AgreesWithModSemver(t *testing.T) {
	for _, a := range propertyVersions {
		for _, b := range propertyVersions {
			got, err := Compare(a, b)
			if err != nil {
				t.Fatal(err)
			}
			want := semver.Compare("v"+a, "v"+b)
			if got.Int() != want {
				t.Errorf("Compare(%q,%q) = %d, semver.Compare = %d", a, b, got.Int(), want)
			}
		}
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Less, "less"},
		{Equal, "equal"},
		{Greater, "greater"},
		{Result(7), "Result(7)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", int(tt.r), got, tt.want)
		}
	}
}

func TestVersionPredicates(t *testing.T) {
	older := MustParse("1.4.0")
	newer := MustParse("1.5.0")

	if !older.LessThan(newer) {
		t.Error("expected 1.4.0 < 1.5.0")
	}
	if older.AtLeast(newer) {
		t.Error("expected 1.4.0 not at least 1.5.0")
	}
	if !newer.AtLeast(older) || !newer.AtLeast(newer) {
		t.Error("expected 1.5.0 at least 1.4.0 and itself")
	}
	if newer.String() != "1.5.0" {
		t.Errorf("String() = %q", newer.String())
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("1.2.3") {
		t.Error("expected 1.2.3 to be valid")
	}
	if IsValid("1.2") {
		t.Error("expected 1.2 to be invalid")
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid version")
		}
	}()
	MustParse("not-a-version")
}
