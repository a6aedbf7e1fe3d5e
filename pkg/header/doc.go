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

// Package header provides the kind/apiVersion/metadata envelope of
// documents exchanged between frog tools, such as the blog index that
// `frog blog index` writes and HTTP content sources read.
//
//	kind: BlogIndex
//	apiVersion: readfrog.app/v1
//	metadata:
//	  timestamp: "2025-06-10T08:00:00Z"
//	  version: 1.2.0
//
// Readers call Check before using the document body.
package header
