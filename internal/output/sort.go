// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package output

import (
	"sort"
	"strings"

	"github.com/apex/log"
)

// sortKey is one parsed element of a --sort spec. A leading - reverses the
// order and a leading ! makes string comparison case-sensitive.
type sortKey struct {
	Key           string
	Descending    bool
	CaseSensitive bool
}

// SortDataset sorts the result set in place per the provided comma delimited
// spec. Numeric values (timestamps, indexes, counts) compare numerically and
// everything else compares as a case-insensitive string.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" || len(dataset) < 2 {
		return
	}

	//nolint:prealloc
	var keys []sortKey
	for _, s := range strings.Split(spec, ",") {
		s = strings.TrimSpace(s)

		key := sortKey{}
		for strings.HasPrefix(s, "-") || strings.HasPrefix(s, "!") {
			if s[0] == '-' {
				key.Descending = true
			} else {
				key.CaseSensitive = true
			}
			s = s[1:]
		}

		// A modifiers-only element ("-", "!") names no attribute.
		if s == "" {
			if key.Descending || key.CaseSensitive {
				log.Warnf("SortDataset(): ignoring sort element with no attribute")
			}
			continue
		}

		key.Key = s
		keys = append(keys, key)
	}

	if len(keys) == 0 {
		return
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, key := range keys {
			c := compareValues(dataset[i][key.Key], dataset[j][key.Key], key.CaseSensitive)
			if c == 0 {
				continue
			}
			if key.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareValues returns -1, 0 or 1. Missing values sort first.
func compareValues(a, b interface{}, caseSensitive bool) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	// JSON numbers decode as float64.
	if fa, ok := a.(float64); ok {
		if fb, ok := b.(float64); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}

	sa := InterfaceToString(a)
	sb := InterfaceToString(b)
	if !caseSensitive {
		sa = strings.ToLower(sa)
		sb = strings.ToLower(sb)
	}
	return strings.Compare(sa, sb)
}
