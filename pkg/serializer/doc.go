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

// Package serializer encodes CLI output and HTTP responses and fetches and
// decodes remote content indexes.
//
// Writers support json, yaml and table. Table output renders a list of
// records one row per record and any other value as FIELD/VALUE pairs:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, path)
//	defer w.Close()
//	err := w.Serialize(ctx, posts)
//
// Indexes are fetched with a size cap and decoded by format:
//
//	body, err := serializer.NewFetcher(serializer.WithAccept(format)).Fetch(ctx, url)
//	idx, err := serializer.FromBytes[blog.Index](format, body)
package serializer
