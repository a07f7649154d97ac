// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/awsx"
	"github.com/eddieramirez/bdactl/internal/bda"
	"github.com/eddieramirez/bdactl/internal/jobstore"
	"github.com/eddieramirez/bdactl/internal/meta"
	"github.com/eddieramirez/bdactl/internal/s3io"
)

// submitCommandAction uploads the input media if it's a local file, starts
// an async data automation job against the selected project, records the
// invocation in the job store, and optionally waits for completion.
func submitCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "submit") {
		return nil
	}

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("an input file or s3:// URI is required")
	}
	input := args[0]

	project := cmd.String("project")
	if project == "" {
		return fmt.Errorf("--project is required")
	}

	svc, cfg, err := NewService(ctx, cmd)
	if err != nil {
		return err
	}
	store := s3io.New(awsx.NewS3(cfg))

	stage := cmd.String("stage")

	projectARN := project
	projectName := ""
	if !isARN(project) {
		p, err := svc.FindProjectByName(ctx, project, stage)
		if err != nil {
			return err
		}
		projectARN = p.ARN
		projectName = p.Name
	}

	bucket := cmd.String("bucket")
	jobID := shortID()

	// Local files get uploaded first. s3:// inputs pass through untouched.
	inputURI := input
	if !strings.HasPrefix(input, "s3://") {
		if bucket == "" {
			return fmt.Errorf("--bucket is required to upload a local file")
		}
		if err := store.EnsureBucket(ctx, bucket); err != nil {
			return err
		}

		dest := s3io.URI{Bucket: bucket}.Join(cmd.String("input-prefix"), filepath.Base(input))
		log.Infof("uploading %s to %s", input, dest)
		if err := store.Upload(ctx, input, dest); err != nil {
			return err
		}
		inputURI = dest.String()
	}

	outputURI := cmd.String("output-uri")
	if outputURI == "" {
		if bucket == "" {
			return fmt.Errorf("--bucket or --output-uri is required")
		}
		outputURI = s3io.URI{Bucket: bucket}.Join(cmd.String("output-prefix"), jobID).String()
	}

	account, err := awsx.AccountID(ctx, cfg)
	if err != nil {
		return err
	}

	arn, err := svc.Invoke(ctx, bda.InvokeInput{
		InputURI:   inputURI,
		OutputURI:  outputURI,
		ProjectARN: projectARN,
		Stage:      stage,
		ProfileARN: bda.ProfileARN(cfg.Region, account),
	})
	if err != nil {
		return err
	}

	record := jobstore.Record{
		InvocationARN: arn,
		ProjectARN:    projectARN,
		ProjectName:   projectName,
		Stage:         stage,
		InputURI:      inputURI,
		OutputURI:     outputURI,
		Status:        "Created",
		SubmittedAt:   time.Now(),
	}
	if err := jobstore.Save(record); err != nil {
		log.Warnf("job store: %v", err)
	}

	fmt.Println(arn)

	if !cmd.Bool("wait") {
		return nil
	}

	waitCtx := ctx
	if timeout := cmd.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	status, err := svc.Poll(waitCtx, arn, cmd.Duration("interval"), func(s bda.JobStatus) {
		log.Infof("job %s: %s", record.ID(), s.Status)
	})

	// A canceled wait returns a zero status. Keep the stored record as-is in
	// that case so jq can pick the job up later.
	if status.Status != "" {
		record.Status = status.Status
		record.MetadataURI = status.MetadataURI
		if bda.Terminal(status.Status) {
			now := time.Now()
			record.CompletedAt = &now
		}
		if saveErr := jobstore.Save(record); saveErr != nil {
			log.Warnf("job store: %v", saveErr)
		}
	}

	if err != nil {
		return err
	}

	fmt.Println(status.MetadataURI)
	return nil
}

// submitCommandBuilder constructs the cli.Command for "submit".
func submitCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "submit",
		Usage:     "start an async data automation job",
		UsageText: "bdactl submit FILE|s3://URI --project NAME|ARN [--wait]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewProfileFlag("submit", meta.Config.Source),
			NewRegionFlag("submit", meta.Config.Source),
			NewBucketFlag("submit", meta.Config.Source),
			NewStageFlag("submit", meta.Config.Source),
			NewIntervalFlag(bda.DefaultPollInterval),
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "project to process the media with, by name or ARN",
			},
			&cli.StringFlag{
				Name:  "input-prefix",
				Usage: "key prefix for uploaded media",
				Value: "bdactl/input",
			},
			&cli.StringFlag{
				Name:  "output-prefix",
				Usage: "key prefix for job output",
				Value: "bdactl/output",
			},
			&cli.StringFlag{
				Name:  "output-uri",
				Usage: "explicit s3:// URI for job output, overrides --output-prefix",
			},
			&cli.BoolFlag{
				Name:        "wait",
				Aliases:     []string{"w"},
				Usage:       "poll until the job finishes",
				HideDefault: true,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "give up waiting after this long (0 waits forever)",
			},
		},
		Action: submitCommandAction,
	}
}
