// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/bda"
	"github.com/eddieramirez/bdactl/internal/meta"
)

// bqCommandAction is the action handler for the "bq" subcommand. It lists
// custom output blueprints.
func bqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[bda.Blueprint]{
		CommandName:  "bq",
		SchemaType:   reflect.TypeOf(bda.Blueprint{}),
		DefaultAttrs: []string{"blueprintName", "blueprintStage", "blueprintArn"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) (
			[]bda.Blueprint,
			error,
		) {
			svc, _, err := NewService(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return svc.ListBlueprints(ctx)
		},
	}
	return runner.Run(ctx, cmd)
}

// bqCommandBuilder constructs the cli.Command for "bq", wiring metadata,
// flags, and action/validator handlers.
func bqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:  "bq",
		Usage: "blueprint query",
		Flags: []cli.Flag{
			NewProfileFlag("bq", meta.Config.Source),
			NewRegionFlag("bq", meta.Config.Source),
		},
		Examples: [][2]string{
			{"bdactl bq", "list blueprints with default columns"},
			{"bdactl bq -a blueprintName,creationTime -s blueprintName", "pick and sort columns"},
		},
		Action: bqCommandAction,
		Meta:   meta,
	}).Build()
}
