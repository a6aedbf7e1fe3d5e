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

package compat

import (
	"fmt"
	"strings"
	"time"

	"github.com/mengxi-ream/read-frog-server/pkg/version"
)

// Policy decides what happens to an item whose minimum version cannot be
// compared against the target.
type Policy int

const (
	// FailOpen keeps items whose comparison failed.
	FailOpen Policy = iota
	// FailClosed drops items whose comparison failed.
	FailClosed
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case FailOpen:
		return "fail-open"
	case FailClosed:
		return "fail-closed"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// SupportedPolicies returns the names accepted by ParsePolicy.
func SupportedPolicies() []string {
	return []string{FailOpen.String(), FailClosed.String()}
}

// ParsePolicy parses "fail-open" or "fail-closed" (case-insensitive).
// An empty string yields FailOpen.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail-open", "open":
		return FailOpen, nil
	case "fail-closed", "closed":
		return FailClosed, nil
	default:
		return FailOpen, fmt.Errorf("invalid compatibility policy %q (supported values: %s)",
			s, strings.Join(SupportedPolicies(), ", "))
	}
}

// Filter selects items compatible with a target version.
//
// An item is compatible when MinVersion returns "" or the target is equal to
// or newer than the returned version. When the comparison fails, for a
// malformed requirement or a malformed target, Policy decides.
//
// A Filter holds no state and is safe for concurrent use as long as its
// callbacks are.
type Filter[T any] struct {
	// MinVersion returns the lowest version the item supports, or "".
	MinVersion func(T) string

	// Recency orders items for Latest; later is more recent.
	Recency func(T) time.Time

	// Policy resolves comparison errors.
	Policy Policy

	// OnError, when set, observes every comparison error. It does not
	// change the outcome.
	OnError func(item T, err error)
}

// Compatible reports whether item may be shown to a caller running target.
func (f Filter[T]) Compatible(target string, item T) bool {
	if f.MinVersion == nil {
		return true
	}
	required := f.MinVersion(item)
	if required == "" {
		return true
	}

	r, err := version.Compare(target, required)
	if err != nil {
		if f.OnError != nil {
			f.OnError(item, err)
		}
		return f.Policy == FailOpen
	}
	return r != version.Less
}

// Retain returns the compatible items in their original order.
// An empty target disables filtering and every item is returned.
func (f Filter[T]) Retain(target string, items []T) []T {
	if target == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.Compatible(target, item) {
			out = append(out, item)
		}
	}
	return out
}

// Latest returns the most recent compatible item. The boolean is false when
// nothing is compatible. Items with equal recency resolve to the one that
// comes first in items.
func (f Filter[T]) Latest(target string, items []T) (T, bool) {
	var (
		best  T
		found bool
		at    time.Time
	)
	for _, item := range f.Retain(target, items) {
		var ts time.Time
		if f.Recency != nil {
			ts = f.Recency(item)
		}
		if !found || ts.After(at) {
			best, at, found = item, ts, true
		}
	}
	return best, found
}
