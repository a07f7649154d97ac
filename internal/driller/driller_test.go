// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package driller

import (
	"testing"
)

func TestDriller(t *testing.T) {
	tests := []struct {
		name        string
		json        string
		path        string
		expectedStr string
		isNil       bool
		isArray     bool
	}{
		// Simple key tests
		{
			name:        "simple string key",
			json:        `{"job_id": "abc123"}`,
			path:        "job_id",
			expectedStr: "abc123",
		},
		{
			name:        "simple number key",
			json:        `{"chapter_index": 42}`,
			path:        "chapter_index",
			expectedStr: "42",
		},
		{
			name:        "simple boolean key true",
			json:        `{"enabled": true}`,
			path:        "enabled",
			expectedStr: "true",
		},
		{
			name:        "simple boolean key false",
			json:        `{"enabled": false}`,
			path:        "enabled",
			expectedStr: "false",
		},
		{
			name:  "simple null key",
			json:  `{"value": null}`,
			path:  "value",
			isNil: true,
		},
		// Nested object tests
		{
			name:        "nested single level",
			json:        `{"video": {"summary": "a movie"}}`,
			path:        "video.summary",
			expectedStr: "a movie",
		},
		{
			name:        "nested multiple levels",
			json:        `{"video": {"transcript": {"representation": {"text": "hello"}}}}`,
			path:        "video.transcript.representation.text",
			expectedStr: "hello",
		},
		// Array access tests - single element array
		{
			name:        "single element array returns element",
			json:        `{"items": ["only"]}`,
			path:        "items",
			expectedStr: "only",
		},
		{
			name:        "single element array of objects drills through",
			json:        `{"items": [{"id": "first"}]}`,
			path:        "items.id",
			expectedStr: "first",
		},
		// Array access tests - multi element array (returns array)
		{
			name:    "multi element array returns array",
			json:    `{"items": ["first", "second"]}`,
			path:    "items",
			isArray: true,
		},
		// Array access tests - explicit index
		{
			name:        "array with explicit index 0",
			json:        `{"items": ["first", "second", "third"]}`,
			path:        "items[0]",
			expectedStr: "first",
		},
		{
			name:        "array with explicit index 1",
			json:        `{"items": ["first", "second", "third"]}`,
			path:        "items[1]",
			expectedStr: "second",
		},
		{
			name:        "array with last valid index",
			json:        `{"items": [10, 20, 30]}`,
			path:        "items[2]",
			expectedStr: "30",
		},
		// Array inside nested objects
		{
			name:        "nested object with array access explicit index",
			json:        `{"chapter": {"iab_categories": [{"category": "Movies"}, {"category": "TV"}]}}`,
			path:        "chapter.iab_categories[0].category",
			expectedStr: "Movies",
		},
		// Array of objects
		{
			name:        "single element array of objects drills through property",
			json:        `{"chapters": [{"chapter_index": 0, "summary": "opening"}]}`,
			path:        "chapters.summary",
			expectedStr: "opening",
		},
		{
			name:        "array of objects with explicit index",
			json:        `{"chapters": [{"summary": "opening"}, {"summary": "closing"}]}`,
			path:        "chapters[1].summary",
			expectedStr: "closing",
		},
		{
			name:        "array of objects with multiple levels",
			json:        `{"chapters": [{"frames": [{"text_lines": [{"text": "MERIDIAN"}]}]}]}`,
			path:        "chapters[0].frames[0].text_lines[0].text",
			expectedStr: "MERIDIAN",
		},
		// Key names with special characters
		{
			name:        "key with hyphen",
			json:        `{"targeted-object-detection": "enabled"}`,
			path:        "targeted-object-detection",
			expectedStr: "enabled",
		},
		{
			name:        "key with underscore",
			json:        `{"start_timecode_smpte": "00:00:00:00"}`,
			path:        "start_timecode_smpte",
			expectedStr: "00:00:00:00",
		},
		// Error cases - invalid paths
		{
			name:  "nonexistent key returns empty result",
			json:  `{"name": "test"}`,
			path:  "missing",
			isNil: true,
		},
		{
			name:  "invalid array index returns empty result",
			json:  `{"items": ["a", "b"]}`,
			path:  "items[10]",
			isNil: true,
		},
		{
			name:  "nested missing key returns empty result",
			json:  `{"video": {"summary": "x"}}`,
			path:  "video.missing",
			isNil: true,
		},
		// Empty structures
		{
			name:  "empty object returns empty result for any key",
			json:  `{}`,
			path:  "any",
			isNil: true,
		},
		{
			name:  "empty array with index returns empty result",
			json:  `{"items": []}`,
			path:  "items[0]",
			isNil: true,
		},
		// Job metadata shapes
		{
			name:        "job metadata standard output path",
			json:        `{"output_metadata": [{"segment_metadata": [{"standard_output_path": "s3://bucket/result.json"}]}]}`,
			path:        "output_metadata.segment_metadata.standard_output_path",
			expectedStr: "s3://bucket/result.json",
		},
		{
			name:        "job metadata with explicit indexes",
			json:        `{"output_metadata": [{"segment_metadata": [{"custom_output_path": "s3://b/custom.json"}, {"custom_output_path": "s3://b/custom2.json"}]}]}`,
			path:        "output_metadata[0].segment_metadata[1].custom_output_path",
			expectedStr: "s3://b/custom2.json",
		},
		{
			name:    "multi element array access without index returns array",
			json:    `{"shots": [{"shot_index": 0}, {"shot_index": 1}]}`,
			path:    "shots",
			isArray: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Driller(tt.json, tt.path)

			if tt.isNil {
				if result.Exists() && result.Type.String() != "Null" {
					t.Errorf("Expected nil/empty result but got: %v", result.Value())
				}
				return
			}

			if !result.Exists() {
				t.Errorf("Expected result but got nil/empty")
				return
			}

			if tt.isArray {
				if !result.IsArray() {
					t.Errorf("Expected array but got: %v (type: %T)", result.Value(), result.Value())
				}
				return
			}

			if got := result.String(); got != tt.expectedStr {
				t.Errorf("Expected %q but got %q", tt.expectedStr, got)
			}
		})
	}
}
