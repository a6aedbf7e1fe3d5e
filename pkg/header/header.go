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

package header

import (
	"fmt"
	"time"
)

// APIVersion is the schema version written into every document header.
const APIVersion = "readfrog.app/v1"

// Kind is the type of a Read Frog document.
type Kind string

const (
	// KindBlogIndex is a list of posts served to HTTP content sources.
	KindBlogIndex Kind = "BlogIndex"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindBlogIndex:
		return true
	default:
		return false
	}
}

// Option configures a Header.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithTimestamp records t as the generation time.
func WithTimestamp(t time.Time) Option {
	return WithMetadata("timestamp", t.UTC().Format(time.RFC3339))
}

// New creates a header for kind with the current APIVersion.
// The generator version is recorded in metadata when not empty.
func New(kind Kind, version string, opts ...Option) *Header {
	h := &Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header identifies the type and schema of a serialized document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Check verifies that a decoded header describes a document of kind.
// A document without kind and apiVersion predates headers and is accepted.
func (h *Header) Check(kind Kind) error {
	if h.Kind == "" && h.APIVersion == "" {
		return nil
	}
	if h.Kind != kind {
		return fmt.Errorf("unexpected document kind %q, want %q", h.Kind, kind)
	}
	if h.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q for %s, want %q", h.APIVersion, kind, APIVersion)
	}
	return nil
}
