// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/jobstore"
	"github.com/eddieramirez/bdactl/internal/meta"
	"github.com/eddieramirez/bdactl/internal/s3io"
)

// purgeCommandAction deletes a job's S3 output folder and drops its
// job-store record. With --project/--blueprint the resources the lab created
// go away too.
func purgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "purge") {
		return nil
	}

	record, err := jobstore.Find(cmd.Args().First())
	if err != nil {
		return err
	}

	metadataURI := record.MetadataURI
	if metadataURI == "" {
		// A job that never finished still has a configured output location.
		metadataURI = record.OutputURI
	}

	if metadataURI != "" {
		uri, err := s3io.ParseURI(metadataURI)
		if err != nil {
			return err
		}
		// The metadata URI points at job_metadata.json; its folder is the
		// purge root.
		root := uri
		if record.MetadataURI != "" {
			root = uri.Dir()
		}

		store, err := NewStore(ctx, cmd)
		if err != nil {
			return err
		}

		deleted, err := store.DeletePrefix(ctx, root)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %d objects under %s\n", deleted, root)
	}

	if cmd.Bool("project") && record.ProjectARN != "" {
		svc, _, err := NewService(ctx, cmd)
		if err != nil {
			return err
		}
		if err := svc.DeleteProject(ctx, record.ProjectARN); err != nil {
			return err
		}
		fmt.Println("deleted", record.ProjectARN)
	}

	if bp := cmd.String("blueprint"); bp != "" {
		svc, _, err := NewService(ctx, cmd)
		if err != nil {
			return err
		}
		arn, err := resolveBlueprintARN(ctx, svc, bp)
		if err != nil {
			return err
		}
		if err := svc.DeleteBlueprint(ctx, arn); err != nil {
			return err
		}
		fmt.Println("deleted", arn)
	}

	if err := jobstore.Remove(record.InvocationARN); err != nil {
		log.Warnf("job store: %v", err)
	}

	return nil
}

// purgeCommandBuilder constructs the cli.Command for "purge".
func purgeCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "purge",
		Usage:     "delete a job's output and, optionally, its project and blueprint",
		UsageText: "bdactl purge [JOB~n|ID|ARN] [--project] [--blueprint NAME|ARN]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewProfileFlag("purge", meta.Config.Source),
			NewRegionFlag("purge", meta.Config.Source),
			&cli.BoolFlag{
				Name:        "project",
				Usage:       "also delete the project the job ran against",
				HideDefault: true,
			},
			&cli.StringFlag{
				Name:  "blueprint",
				Usage: "also delete this blueprint, by name or ARN",
			},
		},
		Action: purgeCommandAction,
	}
}
