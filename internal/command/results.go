// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/bda"
	"github.com/eddieramirez/bdactl/internal/jobstore"
	"github.com/eddieramirez/bdactl/internal/meta"
	"github.com/eddieramirez/bdactl/internal/result"
	"github.com/eddieramirez/bdactl/internal/s3io"
)

// jobDocuments bundles everything resolvable from one invocation's metadata.
type jobDocuments struct {
	Metadata result.JobMetadata
	Segment  result.SegmentMetadata

	Standard    *result.Document
	StandardRaw []byte

	// Custom is nil unless a blueprint matched the media.
	Custom    *result.CustomDocument
	CustomRaw []byte
}

// resolveMetadataURI turns a job spec into the job_metadata.json location.
// The spec may be an s3:// URI, an invocation ARN or id prefix, a JOB~n
// relative spec, or empty for the newest job. Job-store records that have
// not seen a terminal status yet are refreshed once.
func resolveMetadataURI(ctx context.Context, cmd *cli.Command, spec string) (string, error) {
	if strings.HasPrefix(spec, "s3://") {
		return spec, nil
	}

	record, err := jobstore.Find(spec)
	if err != nil {
		return "", err
	}

	if record.MetadataURI == "" || !bda.Terminal(record.Status) {
		svc, _, err := NewService(ctx, cmd)
		if err != nil {
			return "", err
		}
		status, err := svc.Status(ctx, record.InvocationARN)
		if err != nil {
			return "", err
		}

		record.Status = status.Status
		record.MetadataURI = status.MetadataURI
		if err := jobstore.Save(record); err != nil {
			log.Warnf("job store: %v", err)
		}

		if !status.Succeeded() {
			return "", fmt.Errorf("job %s is %s, no results yet", record.ID(), status.Status)
		}
	}

	if record.MetadataURI == "" {
		return "", fmt.Errorf("job %s has no output metadata", record.ID())
	}
	return record.MetadataURI, nil
}

// readRawJSON fetches a document keeping its raw bytes alongside the decoded
// value so --output=raw and diff see the service's document verbatim.
func readRawJSON(ctx context.Context, store *s3io.Store, uri string, v any) ([]byte, error) {
	parsed, err := s3io.ParseURI(uri)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := store.ReadJSON(ctx, parsed, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", uri, err)
	}
	return raw, nil
}

// loadJobDocuments resolves a job spec through job_metadata.json to the
// standard output document and, when a blueprint matched, the custom one.
func loadJobDocuments(ctx context.Context, cmd *cli.Command, spec string) (*jobDocuments, error) {
	metadataURI, err := resolveMetadataURI(ctx, cmd, spec)
	if err != nil {
		return nil, err
	}

	store, err := NewStore(ctx, cmd)
	if err != nil {
		return nil, err
	}

	docs := &jobDocuments{}
	if _, err := readRawJSON(ctx, store, metadataURI, &docs.Metadata); err != nil {
		return nil, err
	}

	docs.Segment, err = docs.Metadata.FirstSegment()
	if err != nil {
		return nil, err
	}

	if docs.Segment.StandardOutputPath != "" {
		docs.Standard = &result.Document{}
		docs.StandardRaw, err = readRawJSON(ctx, store, docs.Segment.StandardOutputPath, docs.Standard)
		if err != nil {
			return nil, err
		}
	}

	if docs.Segment.CustomOutputPath != "" && docs.Segment.CustomOutputStatus == "MATCH" {
		docs.Custom = &result.CustomDocument{}
		docs.CustomRaw, err = readRawJSON(ctx, store, docs.Segment.CustomOutputPath, docs.Custom)
		if err != nil {
			return nil, err
		}
	}

	return docs, nil
}

// viewSchemaTypes maps each view to the row type backing --schema.
var viewSchemaTypes = map[string]reflect.Type{
	"chapters":  reflect.TypeOf(result.ChapterRow{}),
	"segments":  reflect.TypeOf(result.SegmentRow{}),
	"frames":    reflect.TypeOf(result.FrameRow{}),
	"shots":     reflect.TypeOf(result.ShotRow{}),
	"inference": reflect.TypeOf(result.InferenceRow{}),
}

// viewDefaultAttrs maps each view to its default columns.
var viewDefaultAttrs = map[string][]string{
	"chapters":  {"chapter_index", "start", "end", "summary"},
	"segments":  {"chapter_index", "start", "end", "text"},
	"frames":    {"chapter_index", "timestamp", "kind", "text", "confidence"},
	"shots":     {"shot_index", "start", "end"},
	"inference": {"field", "value"},
}

// resultsCommandAction resolves a job to its result documents and renders
// the selected view through the common output pipeline.
func resultsCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "results") {
		return nil
	}

	view := cmd.String("view")
	if t, ok := viewSchemaTypes[view]; ok {
		if DumpSchemaIfRequested(cmd, t) {
			return nil
		}
	}

	docs, err := loadJobDocuments(ctx, cmd, cmd.Args().First())
	if err != nil {
		return err
	}

	if cmd.String("output") == "raw" {
		raw := docs.StandardRaw
		if view == "inference" {
			raw = docs.CustomRaw
		}
		_, _ = os.Stdout.Write(raw)
		return nil
	}

	if view != "inference" && docs.Standard == nil {
		return fmt.Errorf("job %s has no standard output", docs.Metadata.JobID)
	}

	switch view {
	case "summary":
		if docs.Standard.Video == nil || docs.Standard.Video.Summary == "" {
			return fmt.Errorf("no video summary in this document")
		}
		fmt.Println(docs.Standard.Video.Summary)
		return nil

	case "transcript":
		text := docs.Standard.Video.TranscriptText()
		if text == "" {
			return fmt.Errorf("no transcript in this document")
		}
		fmt.Println(text)
		return nil

	case "segments":
		al := BuildAttrs(cmd, viewDefaultAttrs[view]...)
		return EmitRows(result.Segments(docs.Standard), al, cmd)

	case "frames":
		al := BuildAttrs(cmd, viewDefaultAttrs[view]...)
		return EmitRows(result.Frames(docs.Standard, cmd.Bool("words")), al, cmd)

	case "shots":
		al := BuildAttrs(cmd, viewDefaultAttrs[view]...)
		return EmitRows(result.Shots(docs.Standard), al, cmd)

	case "inference":
		if docs.Custom == nil {
			return fmt.Errorf("job %s has no custom output (no blueprint matched)", docs.Metadata.JobID)
		}
		al := BuildAttrs(cmd, viewDefaultAttrs[view]...)
		return EmitRows(result.Inference(docs.Custom), al, cmd)

	default: // chapters
		al := BuildAttrs(cmd, viewDefaultAttrs["chapters"]...)
		return EmitRows(result.Chapters(docs.Standard), al, cmd)
	}
}

// resultsCommandBuilder constructs the cli.Command for "results".
func resultsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "results",
		Usage:     "explore a finished job's result documents",
		UsageText: "bdactl results [JOB~n|ID|ARN|s3://URI] [--view VIEW]",
		Flags: []cli.Flag{
			NewProfileFlag("results", meta.Config.Source),
			NewRegionFlag("results", meta.Config.Source),
			&cli.StringFlag{
				Name:    "view",
				Aliases: []string{"V"},
				Usage:   "summary, transcript, chapters, segments, frames, shots or inference",
				Value:   "chapters",
				Validator: func(value string) error {
					return FlagValidators(value, ViewValidator)
				},
			},
			&cli.BoolFlag{
				Name:        "words",
				Usage:       "include per-word text detections in the frames view",
				HideDefault: true,
			},
		},
		Examples: [][2]string{
			{"bdactl results", "chapter view of the newest job"},
			{"bdactl results JOB~1 --view transcript", "transcript of the job before that"},
			{"bdactl results --view frames -f kind=logo", "logo detections only"},
			{"bdactl results -o raw", "the raw standard output document"},
		},
		Action: resultsCommandAction,
		Meta:   meta,
	}).Build()
}
