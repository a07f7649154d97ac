// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/bda"
	"github.com/eddieramirez/bdactl/internal/jobstore"
	"github.com/eddieramirez/bdactl/internal/meta"
	"github.com/eddieramirez/bdactl/internal/tui"
)

// watchCommandAction runs the live status view for a job until it reaches a
// terminal state or the user quits.
func watchCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "watch") {
		return nil
	}

	record, err := jobstore.Find(cmd.Args().First())
	if err != nil {
		return err
	}

	svc, _, err := NewService(ctx, cmd)
	if err != nil {
		return err
	}

	status, err := tui.Watch(ctx, func(ctx context.Context) (bda.JobStatus, error) {
		return svc.Status(ctx, record.InvocationARN)
	}, cmd.Duration("interval"))

	if status.Status != "" {
		record.Status = status.Status
		record.MetadataURI = status.MetadataURI
		if bda.Terminal(status.Status) && record.CompletedAt == nil {
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

	if status.Succeeded() {
		fmt.Println(status.MetadataURI)
	}
	return nil
}

// watchCommandBuilder constructs the cli.Command for "watch".
func watchCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "watch a job until it finishes",
		UsageText: "bdactl watch [JOB~n|ID|ARN]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewProfileFlag("watch", meta.Config.Source),
			NewRegionFlag("watch", meta.Config.Source),
			NewIntervalFlag(10 * time.Second),
		},
		Action: watchCommandAction,
	}
}
