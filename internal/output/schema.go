// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
)

// DumpSchema writes the sorted attribute names of typ's `attr` struct tags,
// together with the JSON key each one is emitted under. If w is nil,
// os.Stdout is used.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	var lines []string
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		attr := f.Tag.Get("attr")
		if attr == "" {
			continue
		}
		jsonKey := strings.Split(f.Tag.Get("json"), ",")[0]
		lines = append(lines, fmt.Sprintf("%-10s %s", attr, jsonKey))
	}
	sort.Strings(lines)

	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
