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
	"testing"
	"time"
)

func BenchmarkLatest(b *testing.B) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, n := range []int{10, 100, 1000} {
		items := make([]item, n)
		for i := range items {
			items[i] = item{
				Name:    fmt.Sprintf("post-%d", i),
				Version: fmt.Sprintf("1.%d.0", i%20),
				Date:    base.AddDate(0, 0, i).Format(time.DateOnly),
			}
		}
		f := newFilter(FailOpen)

		b.Run(fmt.Sprintf("posts=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = f.Latest("1.10.0", items)
			}
		})
	}
}
