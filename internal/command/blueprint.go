// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/bda"
	"github.com/eddieramirez/bdactl/internal/meta"
	"github.com/eddieramirez/bdactl/internal/schema"
)

// blueprintCommandAction creates a custom output blueprint from a schema
// file, or deletes one with --rm. With --compile the compiled schema is
// printed without touching the service, which is handy while authoring the
// HCL dialect.
func blueprintCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "blueprint") {
		return nil
	}

	if rm := cmd.String("rm"); rm != "" {
		svc, _, err := NewService(ctx, cmd)
		if err != nil {
			return err
		}
		arn, err := resolveBlueprintARN(ctx, svc, rm)
		if err != nil {
			return err
		}
		if err := svc.DeleteBlueprint(ctx, arn); err != nil {
			return err
		}
		fmt.Println("deleted", arn)
		return nil
	}

	file := cmd.String("file")
	if file == "" {
		return fmt.Errorf("--file is required to create a blueprint")
	}

	bp, err := schema.LoadFile(file)
	if err != nil {
		return err
	}

	compiled, err := bp.Compile()
	if err != nil {
		return err
	}

	if cmd.Bool("compile") {
		fmt.Fprintln(os.Stdout, compiled)
		return nil
	}

	name := cmd.String("name")
	if name == "" {
		name = "bdactl-blueprint-" + shortID()
	}

	svc, _, err := NewService(ctx, cmd)
	if err != nil {
		return err
	}

	in := bda.CreateBlueprintInput{
		Name:   name,
		Type:   cmd.String("type"),
		Stage:  cmd.String("stage"),
		Schema: compiled,
	}
	log.Debugf("creating blueprint %s from %s", in.Name, file)

	arn, err := svc.CreateBlueprint(ctx, in)
	if err != nil {
		return err
	}

	fmt.Println(arn)
	return nil
}

// blueprintCommandBuilder constructs the cli.Command for "blueprint".
func blueprintCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "blueprint",
		Usage:     "create or delete a custom output blueprint",
		UsageText: "bdactl blueprint --file SCHEMA[.json|.bp|.hcl] [--name NAME] | bdactl blueprint --rm NAME|ARN",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewProfileFlag("blueprint", meta.Config.Source),
			NewRegionFlag("blueprint", meta.Config.Source),
			NewStageFlag("blueprint", meta.Config.Source),
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"F"},
				Usage:   "blueprint schema file, JSON or the HCL authoring dialect",
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "blueprint name (generated when omitted)",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "modality the blueprint applies to",
				Value: "VIDEO",
			},
			&cli.BoolFlag{
				Name:        "compile",
				Usage:       "print the compiled schema without creating anything",
				HideDefault: true,
			},
			&cli.StringFlag{
				Name:  "rm",
				Usage: "delete the named blueprint instead of creating one",
			},
		},
		Action: blueprintCommandAction,
	}
}
