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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Writer encodes values to an output in one Format.
type Writer struct {
	format Format
	out    io.Writer
	file   *os.File
}

// NewWriter returns a Writer for out, or for stdout when out is nil.
// An unknown format is logged and replaced with JSON; callers that must
// reject bad input validate with Format.IsUnknown first.
func NewWriter(format Format, out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown output format, using json", "format", format)
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewFileWriterOrStdout creates path and writes to it. A blank path, or a
// file that cannot be created, writes to stdout instead. The caller must
// Close the Writer.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewWriter(format, nil)
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("cannot create output file, writing to stdout", "path", path, "error", err)
		return NewWriter(format, nil)
	}

	w := NewWriter(format, f)
	w.file = f
	return w
}

// Close closes the output file, if the Writer opened one. Further calls
// return nil.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	return f.Close()
}

// Serialize writes data as one document. Writes are not cancellable, so
// the context is unused.
func (w *Writer) Serialize(_ context.Context, data any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(w.out, data)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}
