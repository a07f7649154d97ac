// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package result models the documents a data automation job writes to S3:
// the job metadata envelope, the standard output document and the custom
// (blueprint) output document.
package result

import (
	"fmt"
	"time"
)

// JobMetadata is the job_metadata.json envelope written next to job results.
// It points at the per-segment output documents.
type JobMetadata struct {
	JobID          string          `json:"job_id"`
	JobStatus      string          `json:"job_status,omitempty"`
	Modality       string          `json:"semantic_modality,omitempty"`
	OutputMetadata []AssetMetadata `json:"output_metadata"`
}

// AssetMetadata groups segment outputs for one input asset. Video jobs have
// a single asset with a single segment.
type AssetMetadata struct {
	AssetID         int               `json:"asset_id"`
	SegmentMetadata []SegmentMetadata `json:"segment_metadata"`
}

// SegmentMetadata locates the output documents for one segment. The custom
// path is only present when the project carries blueprints, and its status
// says whether any blueprint matched.
type SegmentMetadata struct {
	StandardOutputPath string `json:"standard_output_path,omitempty"`
	CustomOutputPath   string `json:"custom_output_path,omitempty"`
	CustomOutputStatus string `json:"custom_output_status,omitempty"`
}

// FirstSegment returns the first segment of the first asset, the common
// shape for video jobs.
func (m *JobMetadata) FirstSegment() (SegmentMetadata, error) {
	if len(m.OutputMetadata) == 0 || len(m.OutputMetadata[0].SegmentMetadata) == 0 {
		return SegmentMetadata{}, fmt.Errorf("job %s has no output segments", m.JobID)
	}
	return m.OutputMetadata[0].SegmentMetadata[0], nil
}

// Document is the standard output for a video job.
type Document struct {
	Metadata map[string]any `json:"metadata,omitempty"`
	Video    *Video         `json:"video,omitempty"`
	Chapters []Chapter      `json:"chapters,omitempty"`
	Shots    []Shot         `json:"shots,omitempty"`
}

// Video holds the video-level generative fields.
type Video struct {
	Summary    string      `json:"summary,omitempty"`
	Transcript *Transcript `json:"transcript,omitempty"`
}

type Transcript struct {
	Representation *Representation `json:"representation,omitempty"`
}

type Representation struct {
	Text string `json:"text,omitempty"`
}

// Text returns the full transcript text, or empty when transcription was not
// enabled.
func (v *Video) TranscriptText() string {
	if v == nil || v.Transcript == nil || v.Transcript.Representation == nil {
		return ""
	}
	return v.Transcript.Representation.Text
}

// Chapter is a sequence of shots forming a coherent unit of the video.
type Chapter struct {
	ChapterIndex         int            `json:"chapter_index"`
	StartTimecodeSMPTE   string         `json:"start_timecode_smpte,omitempty"`
	EndTimecodeSMPTE     string         `json:"end_timecode_smpte,omitempty"`
	StartTimestampMillis int64          `json:"start_timestamp_millis"`
	EndTimestampMillis   int64          `json:"end_timestamp_millis"`
	Summary              string         `json:"summary,omitempty"`
	IABCategories        []IABCategory  `json:"iab_categories,omitempty"`
	AudioSegments        []AudioSegment `json:"audio_segments,omitempty"`
	Frames               []Frame        `json:"frames,omitempty"`
}

// IABCategory is an advertising taxonomy classification for a chapter.
type IABCategory struct {
	Category string `json:"category"`
}

// AudioSegment is a transcript span within a chapter.
type AudioSegment struct {
	StartTimestampMillis int64  `json:"start_timestamp_millis"`
	EndTimestampMillis   int64  `json:"end_timestamp_millis"`
	Type                 string `json:"type,omitempty"`
	Text                 string `json:"text,omitempty"`
}

// Frame carries the detections captured at one sampled timestamp.
type Frame struct {
	TimestampMillis int64       `json:"timestamp_millis"`
	TextLines       []Detection `json:"text_lines,omitempty"`
	TextWords       []Detection `json:"text_words,omitempty"`
	Logos           []Detection `json:"logos,omitempty"`
}

// Detection is one detected text line, word or logo with its placement.
type Detection struct {
	Text        string       `json:"text,omitempty"`
	Confidence  float64      `json:"confidence,omitempty"`
	BoundingBox *BoundingBox `json:"bounding_box,omitempty"`
}

// BoundingBox is in pixel coordinates of the source frame.
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Shot is a contiguous single-camera span.
type Shot struct {
	ShotIndex            int   `json:"shot_index"`
	StartTimestampMillis int64 `json:"start_timestamp_millis"`
	EndTimestampMillis   int64 `json:"end_timestamp_millis"`
}

// CustomDocument is the custom output produced by blueprint matching.
type CustomDocument struct {
	Metadata         map[string]any `json:"metadata,omitempty"`
	MatchedBlueprint map[string]any `json:"matched_blueprint,omitempty"`
	InferenceResult  map[string]any `json:"inference_result,omitempty"`
}

// FormatMillis renders a millisecond offset as h:mm:ss.mmm, dropping the
// hour when zero.
func FormatMillis(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	frac := ms % 1000

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, frac)
	}
	return fmt.Sprintf("%d:%02d.%03d", m, s, frac)
}
