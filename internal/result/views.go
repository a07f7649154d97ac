// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package result

import (
	"bytes"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ChapterRow is the flattened per-chapter view.
type ChapterRow struct {
	ChapterIndex  int      `json:"chapter_index"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	StartMillis   int64    `json:"start_timestamp_millis"`
	EndMillis     int64    `json:"end_timestamp_millis"`
	Summary       string   `json:"summary,omitempty"`
	IABCategories []string `json:"iab_categories,omitempty"`
}

// Chapters flattens the document into chapter rows using SMPTE timecodes for
// display and millis for filtering.
func Chapters(doc *Document) []ChapterRow {
	rows := make([]ChapterRow, 0, len(doc.Chapters))
	for _, c := range doc.Chapters {
		row := ChapterRow{
			ChapterIndex: c.ChapterIndex,
			Start:        c.StartTimecodeSMPTE,
			End:          c.EndTimecodeSMPTE,
			StartMillis:  c.StartTimestampMillis,
			EndMillis:    c.EndTimestampMillis,
			Summary:      c.Summary,
		}
		for _, iab := range c.IABCategories {
			row.IABCategories = append(row.IABCategories, iab.Category)
		}
		rows = append(rows, row)
	}
	return rows
}

// SegmentRow is one transcript span with its chapter.
type SegmentRow struct {
	ChapterIndex int    `json:"chapter_index"`
	Start        string `json:"start"`
	End          string `json:"end"`
	StartMillis  int64  `json:"start_timestamp_millis"`
	EndMillis    int64  `json:"end_timestamp_millis"`
	Text         string `json:"text,omitempty"`
}

// Segments flattens chapter audio segments into rows.
func Segments(doc *Document) []SegmentRow {
	var rows []SegmentRow
	for _, c := range doc.Chapters {
		for _, seg := range c.AudioSegments {
			rows = append(rows, SegmentRow{
				ChapterIndex: c.ChapterIndex,
				Start:        FormatMillis(seg.StartTimestampMillis),
				End:          FormatMillis(seg.EndTimestampMillis),
				StartMillis:  seg.StartTimestampMillis,
				EndMillis:    seg.EndTimestampMillis,
				Text:         seg.Text,
			})
		}
	}
	return rows
}

// Detection kinds surfaced in frame rows.
const (
	KindTextLine = "text_line"
	KindTextWord = "text_word"
	KindLogo     = "logo"
)

// FrameRow is one detection at one sampled frame.
type FrameRow struct {
	ChapterIndex    int          `json:"chapter_index"`
	Timestamp       string       `json:"timestamp"`
	TimestampMillis int64        `json:"timestamp_millis"`
	Kind            string       `json:"kind"`
	Text            string       `json:"text,omitempty"`
	Confidence      float64      `json:"confidence,omitempty"`
	BoundingBox     *BoundingBox `json:"bounding_box,omitempty"`
}

// Frames flattens frame-level detections into one row per detection. Word
// detections are noisy, so they are excluded unless includeWords is set.
func Frames(doc *Document, includeWords bool) []FrameRow {
	var rows []FrameRow

	add := func(chapter int, ts int64, kind string, detections []Detection) {
		for _, d := range detections {
			rows = append(rows, FrameRow{
				ChapterIndex:    chapter,
				Timestamp:       FormatMillis(ts),
				TimestampMillis: ts,
				Kind:            kind,
				Text:            d.Text,
				Confidence:      d.Confidence,
				BoundingBox:     d.BoundingBox,
			})
		}
	}

	for _, c := range doc.Chapters {
		for _, f := range c.Frames {
			add(c.ChapterIndex, f.TimestampMillis, KindTextLine, f.TextLines)
			if includeWords {
				add(c.ChapterIndex, f.TimestampMillis, KindTextWord, f.TextWords)
			}
			add(c.ChapterIndex, f.TimestampMillis, KindLogo, f.Logos)
		}
	}
	return rows
}

// ShotRow is one camera shot.
type ShotRow struct {
	ShotIndex   int    `json:"shot_index"`
	Start       string `json:"start"`
	End         string `json:"end"`
	StartMillis int64  `json:"start_timestamp_millis"`
	EndMillis   int64  `json:"end_timestamp_millis"`
}

// Shots flattens the shot list into rows.
func Shots(doc *Document) []ShotRow {
	rows := make([]ShotRow, 0, len(doc.Shots))
	for _, s := range doc.Shots {
		rows = append(rows, ShotRow{
			ShotIndex:   s.ShotIndex,
			Start:       FormatMillis(s.StartTimestampMillis),
			End:         FormatMillis(s.EndTimestampMillis),
			StartMillis: s.StartTimestampMillis,
			EndMillis:   s.EndTimestampMillis,
		})
	}
	return rows
}

// InferenceRow is one field of a blueprint's inference result.
type InferenceRow struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// Inference flattens the custom output's inference_result into sorted
// field/value rows.
func Inference(doc *CustomDocument) []InferenceRow {
	fields := make([]string, 0, len(doc.InferenceResult))
	for field := range doc.InferenceResult {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	rows := make([]InferenceRow, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, InferenceRow{Field: field, Value: doc.InferenceResult[field]})
	}
	return rows
}

// Marshal renders any row slice into the buffer shape the output pipeline
// consumes.
func Marshal(rows any) (bytes.Buffer, error) {
	var buf bytes.Buffer
	data, err := json.Marshal(rows)
	if err != nil {
		return buf, err
	}
	buf.Write(data)
	return buf, nil
}
