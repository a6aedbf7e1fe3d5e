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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decode reads a single document in format from r into v, which must be a
// pointer. An empty input is an error in both encodings.
func Decode(format Format, r io.Reader, v any) error {
	if r == nil {
		return errors.New("nil input")
	}
	if !format.Decodable() {
		return fmt.Errorf("format %q cannot be decoded", format)
	}

	var err error
	if format == FormatYAML {
		err = yaml.NewDecoder(r).Decode(v)
	} else {
		err = json.NewDecoder(r).Decode(v)
	}
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s: empty document", format)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", format, err)
	}
	return nil
}

// FromBytes decodes data in the given format into a new T.
func FromBytes[T any](format Format, data []byte) (*T, error) {
	v := new(T)
	if err := Decode(format, bytes.NewReader(data), v); err != nil {
		return nil, err
	}
	return v, nil
}
