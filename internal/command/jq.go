// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"reflect"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/bda"
	"github.com/eddieramirez/bdactl/internal/jobstore"
	"github.com/eddieramirez/bdactl/internal/meta"
)

// jobRow is the flattened job-store view emitted by "jq".
type jobRow struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	ProjectName   string `json:"projectName,omitempty"`
	Stage         string `json:"stage"`
	Submitted     string `json:"submitted"`
	Elapsed       string `json:"elapsed"`
	InputURI      string `json:"inputUri"`
	InvocationARN string `json:"invocationArn"`
}

// jobRows flattens job records, humanizing the time columns.
func jobRows(records []jobstore.Record) []jobRow {
	rows := make([]jobRow, 0, len(records))
	for _, r := range records {
		row := jobRow{
			ID:            r.ID(),
			Status:        r.Status,
			ProjectName:   r.ProjectName,
			Stage:         r.Stage,
			Submitted:     humanize.Time(r.SubmittedAt),
			InputURI:      r.InputURI,
			InvocationARN: r.InvocationARN,
		}
		if r.CompletedAt != nil {
			row.Elapsed = r.CompletedAt.Sub(r.SubmittedAt).Round(time.Second).String()
		} else {
			row.Elapsed = time.Since(r.SubmittedAt).Round(time.Second).String()
		}
		rows = append(rows, row)
	}
	return rows
}

// refreshRecords asks the service for the current status of every record
// still in flight and rewrites the store. Refresh failures only warn so the
// local listing still renders without credentials.
func refreshRecords(ctx context.Context, cmd *cli.Command, records []jobstore.Record) []jobstore.Record {
	var svc *bda.Service

	for i, r := range records {
		if bda.Terminal(r.Status) {
			continue
		}

		if svc == nil {
			s, _, err := NewService(ctx, cmd)
			if err != nil {
				log.Warnf("status refresh unavailable: %v", err)
				return records
			}
			svc = s
		}

		status, err := svc.Status(ctx, r.InvocationARN)
		if err != nil {
			log.Warnf("refresh %s: %v", r.ID(), err)
			continue
		}

		records[i].Status = status.Status
		records[i].MetadataURI = status.MetadataURI
		if bda.Terminal(status.Status) && records[i].CompletedAt == nil {
			now := time.Now()
			records[i].CompletedAt = &now
		}
		if err := jobstore.Save(records[i]); err != nil {
			log.Warnf("save %s: %v", r.ID(), err)
		}
	}

	return records
}

// jqCommandAction is the action handler for the "jq" subcommand. It lists
// invocations recorded in the local job store, newest first.
func jqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[jobRow]{
		CommandName:  "jq",
		SchemaType:   reflect.TypeOf(jobRow{}),
		DefaultAttrs: []string{"id", "status", "projectName", "submitted"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) ([]jobRow, error) {
			records, err := jobstore.List()
			if err != nil {
				return nil, err
			}
			if cmd.Bool("refresh") {
				records = refreshRecords(ctx, cmd, records)
			}
			return jobRows(records), nil
		},
	}
	return runner.Run(ctx, cmd)
}

// jqCommandBuilder constructs the cli.Command for "jq", wiring metadata,
// flags, and action/validator handlers.
func jqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:  "jq",
		Usage: "job query",
		Flags: []cli.Flag{
			NewProfileFlag("jq", meta.Config.Source),
			NewRegionFlag("jq", meta.Config.Source),
			&cli.BoolWithInverseFlag{
				Name:  "refresh",
				Usage: "refresh in-flight job statuses from the service",
				Value: true,
			},
		},
		Examples: [][2]string{
			{"bdactl jq", "list submitted jobs, newest first"},
			{"bdactl jq -f status=Success", "finished jobs only"},
			{"bdactl jq --no-refresh", "skip the live status refresh"},
		},
		Action: jqCommandAction,
		Meta:   meta,
	}).Build()
}
