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

package blog

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"

	frogerrors "github.com/mengxi-ream/read-frog-server/pkg/errors"
)

// DefaultLocales is the locale set served when none is configured.
var DefaultLocales = []string{"en", "zh"}

// Locales is the set of locales posts are served for. The first entry is
// the default.
type Locales struct {
	names []string
	tags  []language.Tag
}

// NewLocales validates names as BCP 47 tags. A name is kept only if it is
// already in canonical form up to letter case, so "en_US" is refused
// rather than silently rewritten. Duplicates are dropped.
func NewLocales(names ...string) (*Locales, error) {
	l := &Locales{}
	for _, raw := range names {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", raw, err)
		}
		if !strings.EqualFold(tag.String(), raw) {
			return nil, fmt.Errorf("invalid locale %q: canonical form is %q", raw, tag.String())
		}
		if slices.Contains(l.tags, tag) {
			continue
		}
		l.names = append(l.names, tag.String())
		l.tags = append(l.tags, tag)
	}
	if len(l.names) == 0 {
		return nil, fmt.Errorf("no locales configured")
	}
	return l, nil
}

// ParseLocales parses a comma-separated list such as "en,zh".
func ParseLocales(list string) (*Locales, error) {
	return NewLocales(strings.Split(list, ",")...)
}

// MustLocales is NewLocales that panics on error.
func MustLocales(names ...string) *Locales {
	l, err := NewLocales(names...)
	if err != nil {
		panic(err)
	}
	return l
}

// Default returns the first configured locale.
func (l *Locales) Default() string {
	return l.names[0]
}

// Names returns the configured locales in order.
func (l *Locales) Names() []string {
	return slices.Clone(l.names)
}

// Resolve returns the configured name for raw. An empty raw yields the
// default. Anything that is not a well-formed tag equal to a configured
// locale is an ErrCodeInvalidRequest error; no fallback matching is done.
func (l *Locales) Resolve(raw string) (string, error) {
	if raw == "" {
		return l.Default(), nil
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", frogerrors.WrapWithContext(frogerrors.ErrCodeInvalidRequest,
			"Invalid locale parameter", err, map[string]any{
				"locale":    raw,
				"supported": l.Names(),
			})
	}

	if i := slices.Index(l.tags, tag); i >= 0 {
		return l.names[i], nil
	}

	return "", frogerrors.NewWithContext(frogerrors.ErrCodeInvalidRequest,
		"Invalid locale parameter", map[string]any{
			"locale":    raw,
			"supported": l.Names(),
		})
}
