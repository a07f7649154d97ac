// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package export writes result views to analytics-friendly formats: parquet
// for warehouse ingestion and JSONL (optionally zstd-compressed) for
// streaming pipelines.
package export

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/zstd"
	"github.com/parquet-go/parquet-go"

	"github.com/eddieramirez/bdactl/internal/result"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ChapterRecord is the columnar projection of a chapter.
type ChapterRecord struct {
	ChapterIndex  int32  `parquet:"chapter_index"`
	StartMillis   int64  `parquet:"start_timestamp_millis"`
	EndMillis     int64  `parquet:"end_timestamp_millis"`
	StartSMPTE    string `parquet:"start_timecode_smpte"`
	EndSMPTE      string `parquet:"end_timecode_smpte"`
	Summary       string `parquet:"summary"`
	IABCategories string `parquet:"iab_categories"`
}

// SegmentRecord is the columnar projection of a transcript segment.
type SegmentRecord struct {
	ChapterIndex int32  `parquet:"chapter_index"`
	StartMillis  int64  `parquet:"start_timestamp_millis"`
	EndMillis    int64  `parquet:"end_timestamp_millis"`
	Text         string `parquet:"text"`
}

// FrameRecord is the columnar projection of one frame detection with the
// bounding box flattened.
type FrameRecord struct {
	ChapterIndex    int32   `parquet:"chapter_index"`
	TimestampMillis int64   `parquet:"timestamp_millis"`
	Kind            string  `parquet:"kind"`
	Text            string  `parquet:"text"`
	Confidence      float64 `parquet:"confidence"`
	BoxLeft         float64 `parquet:"box_left"`
	BoxTop          float64 `parquet:"box_top"`
	BoxWidth        float64 `parquet:"box_width"`
	BoxHeight       float64 `parquet:"box_height"`
}

// ShotRecord is the columnar projection of a shot.
type ShotRecord struct {
	ShotIndex   int32 `parquet:"shot_index"`
	StartMillis int64 `parquet:"start_timestamp_millis"`
	EndMillis   int64 `parquet:"end_timestamp_millis"`
}

// ChapterRecords projects the document's chapters.
func ChapterRecords(doc *result.Document) []ChapterRecord {
	rows := make([]ChapterRecord, 0, len(doc.Chapters))
	for _, c := range doc.Chapters {
		categories := make([]string, 0, len(c.IABCategories))
		for _, iab := range c.IABCategories {
			categories = append(categories, iab.Category)
		}
		rows = append(rows, ChapterRecord{
			ChapterIndex:  int32(c.ChapterIndex),
			StartMillis:   c.StartTimestampMillis,
			EndMillis:     c.EndTimestampMillis,
			StartSMPTE:    c.StartTimecodeSMPTE,
			EndSMPTE:      c.EndTimecodeSMPTE,
			Summary:       c.Summary,
			IABCategories: strings.Join(categories, ", "),
		})
	}
	return rows
}

// SegmentRecords projects every chapter's audio segments.
func SegmentRecords(doc *result.Document) []SegmentRecord {
	var rows []SegmentRecord
	for _, c := range doc.Chapters {
		for _, seg := range c.AudioSegments {
			rows = append(rows, SegmentRecord{
				ChapterIndex: int32(c.ChapterIndex),
				StartMillis:  seg.StartTimestampMillis,
				EndMillis:    seg.EndTimestampMillis,
				Text:         seg.Text,
			})
		}
	}
	return rows
}

// FrameRecords projects frame detections, reusing the view flattening so the
// exported rows match what results --frames shows.
func FrameRecords(doc *result.Document, includeWords bool) []FrameRecord {
	views := result.Frames(doc, includeWords)
	rows := make([]FrameRecord, 0, len(views))
	for _, v := range views {
		row := FrameRecord{
			ChapterIndex:    int32(v.ChapterIndex),
			TimestampMillis: v.TimestampMillis,
			Kind:            v.Kind,
			Text:            v.Text,
			Confidence:      v.Confidence,
		}
		if v.BoundingBox != nil {
			row.BoxLeft = v.BoundingBox.Left
			row.BoxTop = v.BoundingBox.Top
			row.BoxWidth = v.BoundingBox.Width
			row.BoxHeight = v.BoundingBox.Height
		}
		rows = append(rows, row)
	}
	return rows
}

// ShotRecords projects the shot list.
func ShotRecords(doc *result.Document) []ShotRecord {
	rows := make([]ShotRecord, 0, len(doc.Shots))
	for _, s := range doc.Shots {
		rows = append(rows, ShotRecord{
			ShotIndex:   int32(s.ShotIndex),
			StartMillis: s.StartTimestampMillis,
			EndMillis:   s.EndTimestampMillis,
		})
	}
	return rows
}

// WriteParquet writes rows as a single row group.
func WriteParquet[T any](w io.Writer, rows []T) error {
	pw := parquet.NewGenericWriter[T](w)
	if _, err := pw.Write(rows); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet: %w", err)
	}
	return nil
}

// WriteJSONL writes one JSON object per line, compressed when requested.
func WriteJSONL[T any](w io.Writer, rows []T, compress bool) error {
	out := w
	if compress {
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("create zstd writer: %w", err)
		}
		defer func() { _ = zw.Close() }()
		out = zw
	}

	enc := json.NewEncoder(out)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("encode row: %w", err)
		}
	}
	return nil
}
