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
	"bytes"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	frontMatterDelim = []byte("---")
	datePrefix       = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)

	dateLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	errNoFrontMatter = errors.New("missing front matter")
	errNoDate        = errors.New("no date in front matter or file name")
)

// frontMatter is the YAML header of a post. Dates and versions are kept as
// strings so an unquoted 2024-07-01 or 1.5 is read verbatim.
type frontMatter struct {
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	Date             string `yaml:"date"`
	ExtensionVersion string `yaml:"extensionVersion"`
}

// splitFrontMatter returns the YAML between the leading pair of "---" lines
// and the remaining body.
func splitFrontMatter(data []byte) ([]byte, []byte, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	first, rest, ok := bytes.Cut(data, []byte("\n"))
	if !ok || !bytes.Equal(bytes.TrimSpace(first), frontMatterDelim) {
		return nil, nil, errNoFrontMatter
	}

	var header []byte
	for len(rest) > 0 {
		line, next, _ := bytes.Cut(rest, []byte("\n"))
		if bytes.Equal(bytes.TrimSpace(line), frontMatterDelim) {
			return header, next, nil
		}
		header = append(header, line...)
		header = append(header, '\n')
		rest = next
	}
	return nil, nil, fmt.Errorf("%w: unterminated header", errNoFrontMatter)
}

func parseFrontMatter(data []byte) (*frontMatter, error) {
	header, _, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, fmt.Errorf("failed to parse front matter: %w", err)
	}
	fm.Title = strings.TrimSpace(fm.Title)
	fm.Description = strings.TrimSpace(fm.Description)
	fm.Date = strings.TrimSpace(fm.Date)
	fm.ExtensionVersion = strings.TrimSpace(fm.ExtensionVersion)

	if fm.Title == "" {
		return nil, errors.New("front matter has no title")
	}
	return &fm, nil
}

// parseDate accepts RFC 3339 timestamps and plain dates. Values without a
// zone are read as UTC.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// resolveDate returns the front matter date, falling back to a leading
// YYYY-MM-DD in the file name.
func resolveDate(raw, filePath string) (time.Time, error) {
	if raw != "" {
		return parseDate(raw)
	}
	if m := datePrefix.FindString(path.Base(filePath)); m != "" {
		return parseDate(m)
	}
	return time.Time{}, errNoDate
}

// slugsFromPath maps guides/custom-styles.mdx to [guides custom-styles].
// An index file takes the name of its directory.
func slugsFromPath(rel string) []string {
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	parts := strings.Split(rel, "/")
	if len(parts) > 1 && parts[len(parts)-1] == "index" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// isPostFile reports whether name is a markdown page. Names starting with
// "_" or "." are drafts and partials.
func isPostFile(name string) bool {
	if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".mdx":
		return true
	default:
		return false
	}
}

// newPost builds a Post from a file below the locale directory.
// rel is relative to the locale directory.
func newPost(locale, rel string, data []byte) (Post, error) {
	fm, err := parseFrontMatter(data)
	if err != nil {
		return Post{}, err
	}

	date, err := resolveDate(fm.Date, rel)
	if err != nil {
		return Post{}, err
	}

	return Post{
		Locale:           locale,
		Slugs:            slugsFromPath(rel),
		Path:             path.Join(locale, rel),
		Title:            fm.Title,
		Description:      fm.Description,
		Date:             date,
		ExtensionVersion: fm.ExtensionVersion,
	}, nil
}
