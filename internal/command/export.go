// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/export"
	"github.com/eddieramirez/bdactl/internal/meta"
)

// exportFormat derives the output format from the destination file name.
func exportFormat(path string) (format string, compress bool, err error) {
	switch {
	case strings.HasSuffix(path, ".parquet"):
		return "parquet", false, nil
	case strings.HasSuffix(path, ".jsonl.zst"):
		return "jsonl", true, nil
	case strings.HasSuffix(path, ".jsonl"):
		return "jsonl", false, nil
	default:
		return "", false, fmt.Errorf("cannot derive format from %q, use .parquet, .jsonl or .jsonl.zst", path)
	}
}

// writeExport writes one row set in the derived format.
func writeExport[T any](f *os.File, format string, compress bool, rows []T) error {
	if format == "parquet" {
		return export.WriteParquet(f, rows)
	}
	return export.WriteJSONL(f, rows, compress)
}

// exportCommandAction flattens a result document into analytics-friendly
// rows and writes them to a local file.
func exportCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "export") {
		return nil
	}

	args := cmd.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("a job spec and a destination file are required")
	}
	spec, dest := args[0], args[1]

	format, compress, err := exportFormat(dest)
	if err != nil {
		return err
	}

	docs, err := loadJobDocuments(ctx, cmd, spec)
	if err != nil {
		return err
	}
	if docs.Standard == nil {
		return fmt.Errorf("job %s has no standard output", docs.Metadata.JobID)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	var count int
	switch view := cmd.String("view"); view {
	case "segments":
		rows := export.SegmentRecords(docs.Standard)
		count, err = len(rows), writeExport(f, format, compress, rows)
	case "frames":
		rows := export.FrameRecords(docs.Standard, cmd.Bool("words"))
		count, err = len(rows), writeExport(f, format, compress, rows)
	case "shots":
		rows := export.ShotRecords(docs.Standard)
		count, err = len(rows), writeExport(f, format, compress, rows)
	case "chapters":
		rows := export.ChapterRecords(docs.Standard)
		count, err = len(rows), writeExport(f, format, compress, rows)
	default:
		return fmt.Errorf("view %q cannot be exported, use chapters, segments, frames or shots", view)
	}
	if err != nil {
		return err
	}

	log.Infof("wrote %d rows to %s", count, dest)
	return nil
}

// exportCommandBuilder constructs the cli.Command for "export".
func exportCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export result rows to Parquet or JSONL",
		UsageText: "bdactl export [JOB~n|ID|ARN|s3://URI] DEST.{parquet,jsonl,jsonl.zst} [--view VIEW]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewProfileFlag("export", meta.Config.Source),
			NewRegionFlag("export", meta.Config.Source),
			&cli.StringFlag{
				Name:    "view",
				Aliases: []string{"V"},
				Usage:   "chapters, segments, frames or shots",
				Value:   "chapters",
			},
			&cli.BoolFlag{
				Name:        "words",
				Usage:       "include per-word text detections in the frames view",
				HideDefault: true,
			},
		},
		Action: exportCommandAction,
	}
}
