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
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"
	"time"
)

const (
	emptyTable = "<empty>"
	emptyCell  = "-"
)

var timeType = reflect.TypeFor[time.Time]()

// writeTable renders a list of records as one row per record, with a
// column per field. Anything else is flattened into FIELD/VALUE pairs
// keyed by JSON field path, e.g. "posts[0].title".
func writeTable(out io.Writer, data any) error {
	v := indirect(reflect.ValueOf(data))
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if recordType, ok := recordList(v); ok {
		if v.Len() == 0 {
			_, err := fmt.Fprintln(out, emptyTable)
			return err
		}
		cols := columns(recordType)
		names := make([]string, len(cols))
		for i, c := range cols {
			names[i] = strings.ToUpper(c.name)
		}
		fmt.Fprintln(tw, strings.Join(names, "\t"))

		for i := range v.Len() {
			row := indirect(v.Index(i))
			cells := make([]string, len(cols))
			for j, c := range cols {
				cells[j] = emptyCell
				if row.IsValid() {
					if fv, err := row.FieldByIndexErr(c.index); err == nil {
						cells[j] = cell(fv)
					}
				}
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		return tw.Flush()
	}

	fields := flatten(nil, v, "")
	if len(fields) == 0 {
		_, err := fmt.Fprintln(out, emptyTable)
		return err
	}
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\n", f.key, f.value)
	}
	return tw.Flush()
}

type column struct {
	name  string
	index []int
}

type pair struct {
	key   string
	value string
}

// recordList reports whether v is a slice or array of structs and returns
// the struct type.
func recordList(v reflect.Value) (reflect.Type, bool) {
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, false
	}
	t := v.Type().Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct && t != timeType
}

func columns(t reflect.Type) []column {
	var cols []column
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		if name, ok := fieldName(f); ok {
			cols = append(cols, column{name: name, index: f.Index})
		}
	}
	return cols
}

func flatten(out []pair, v reflect.Value, prefix string) []pair {
	v = indirect(v)
	if !v.IsValid() {
		if prefix != "" {
			out = append(out, pair{prefix, emptyCell})
		}
		return out
	}
	if v.Type() == timeType {
		return append(out, pair{keyOrValue(prefix), cell(v)})
	}

	//nolint:exhaustive // scalars share the default branch
	switch v.Kind() {
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(v.Type()) {
			if f.Anonymous || !f.IsExported() {
				continue
			}
			name, ok := fieldName(f)
			if !ok {
				continue
			}
			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil {
				continue
			}
			out = flatten(out, fv, joinKey(prefix, name))
		}
	case reflect.Map:
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
		})
		for _, k := range keys {
			out = flatten(out, v.MapIndex(k), joinKey(prefix, fmt.Sprint(k)))
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			out = flatten(out, v.Index(i), fmt.Sprintf("%s[%d]", prefix, i))
		}
	default:
		out = append(out, pair{keyOrValue(prefix), cell(v)})
	}
	return out
}

// cell formats a single value for display.
func cell(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() {
		return emptyCell
	}
	if v.Type() == timeType && v.CanInterface() {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return emptyCell
		}
		return t.UTC().Format(time.RFC3339)
	}

	//nolint:exhaustive // everything else prints with fmt
	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			return emptyCell
		}
		return v.String()
	case reflect.Map:
		if v.Len() == 0 {
			return emptyCell
		}
		return fmt.Sprint(v)
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return emptyCell
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = cell(v.Index(i))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

// fieldName is the JSON name of f. Fields tagged "-" are skipped.
func fieldName(f reflect.StructField) (string, bool) {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return name, true
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func joinKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func keyOrValue(prefix string) string {
	if prefix == "" {
		return "value"
	}
	return prefix
}
