// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package driller

import (
	"regexp"
	"strconv"

	"github.com/tidwall/gjson"
)

// segmentRe splits a path element into its key name and optional [n] indexes.
var segmentRe = regexp.MustCompile(`^([^\[\]]*)((?:\[\d+\])*)$`)

var indexRe = regexp.MustCompile(`\[(\d+)\]`)

// Driller extracts the value at a dotted path from a raw JSON document.
// Paths support explicit array indexes ("chapters[2].summary"). As a
// convenience, single-element arrays are drilled through without an index, so
// "output_metadata.segment_metadata.standard_output_path" resolves against
// the common one-asset, one-segment job metadata shape. Multi-element arrays
// are returned as-is unless indexed.
func Driller(raw string, path string) gjson.Result {
	current := gjson.Parse(raw)

	for _, segment := range splitPath(path) {
		if !current.Exists() {
			return current
		}

		m := segmentRe.FindStringSubmatch(segment)
		if m == nil {
			return gjson.Result{}
		}

		name := m[1]
		if name != "" {
			// Unwrap a single-element array before a key access.
			if current.IsArray() {
				if arr := current.Array(); len(arr) == 1 {
					current = arr[0]
				}
			}
			current = current.Get(name)
		}

		for _, im := range indexRe.FindAllStringSubmatch(m[2], -1) {
			idx, _ := strconv.Atoi(im[1])
			current = current.Get(strconv.Itoa(idx))
		}
	}

	// A trailing single-element array collapses to its element.
	if current.IsArray() {
		if arr := current.Array(); len(arr) == 1 {
			return arr[0]
		}
	}

	return current
}

// splitPath splits on dots. Key names themselves never contain dots in the
// documents we handle, so no escaping is supported.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	var segments []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			segments = append(segments, path[start:i])
			start = i + 1
		}
	}
	return append(segments, path[start:])
}
