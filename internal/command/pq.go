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

// pqCommandAction is the action handler for the "pq" subcommand. It lists
// data automation projects, supports --tldr/--schema short-circuit behavior,
// and emits output per common flags.
func pqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[bda.Project]{
		CommandName:  "pq",
		SchemaType:   reflect.TypeOf(bda.Project{}),
		DefaultAttrs: []string{"projectName", "projectStage", "projectArn"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) (
			[]bda.Project,
			error,
		) {
			svc, _, err := NewService(ctx, cmd)
			if err != nil {
				return nil, err
			}
			return svc.ListProjects(ctx, cmd.String("stage"))
		},
	}
	return runner.Run(ctx, cmd)
}

// pqCommandBuilder constructs the cli.Command for "pq", wiring metadata,
// flags, and action/validator handlers.
func pqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:  "pq",
		Usage: "project query",
		Flags: []cli.Flag{
			NewProfileFlag("pq", meta.Config.Source),
			NewRegionFlag("pq", meta.Config.Source),
			&cli.StringFlag{
				Name:  "stage",
				Usage: "limit results to a stage (DEVELOPMENT or LIVE)",
			},
		},
		Examples: [][2]string{
			{"bdactl pq", "list projects with default columns"},
			{"bdactl pq --stage LIVE -o json", "LIVE projects as JSON"},
			{"bdactl pq -f 'projectName^bdactl-'", "projects with a name prefix"},
		},
		Action: pqCommandAction,
		Meta:   meta,
	}).Build()
}
