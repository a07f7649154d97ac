// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package differ compares two result documents, typically the same media
// processed by different project configurations or stages.
package differ

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	gojsondiff "github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Diff compares two JSON documents and renders the differences. With ascii
// set, the output is a unified-style listing of the left document with
// changes marked; otherwise a compact delta document is returned. An empty
// string means the documents match.
func Diff(left []byte, right []byte, ascii bool, color bool) (string, error) {
	d, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return "", fmt.Errorf("compare documents: %w", err)
	}

	if !d.Modified() {
		return "", nil
	}

	if ascii {
		var leftDoc map[string]interface{}
		if err := json.Unmarshal(left, &leftDoc); err != nil {
			return "", fmt.Errorf("parse left document: %w", err)
		}

		return formatter.NewAsciiFormatter(leftDoc, formatter.AsciiFormatterConfig{
			ShowArrayIndex: true,
			Coloring:       color,
		}).Format(d)
	}

	return formatter.NewDeltaFormatter().Format(d)
}
