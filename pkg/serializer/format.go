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

package serializer

import (
	"path"
	"slices"
	"strings"
)

// Format names an encoding for CLI output and content indexes.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

var knownFormats = []Format{FormatJSON, FormatYAML, FormatTable}

// IsUnknown reports whether f is not one of the supported formats.
// Matching is exact.
func (f Format) IsUnknown() bool {
	return !slices.Contains(knownFormats, f)
}

// Decodable reports whether documents in f can be read back. Table output
// is write-only.
func (f Format) Decodable() bool {
	return f == FormatJSON || f == FormatYAML
}

// ContentType is the media type used when requesting or serving f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatTable:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// SupportedFormats lists the format names in display order.
func SupportedFormats() []string {
	out := make([]string, len(knownFormats))
	for i, f := range knownFormats {
		out[i] = string(f)
	}
	return out
}

// FormatFromPath picks a format from the extension of p, so that both file
// paths and URL paths work. Anything unrecognised is JSON.
func FormatFromPath(p string) Format {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".table", ".txt":
		return FormatTable
	default:
		return FormatJSON
	}
}
