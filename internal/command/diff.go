// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/differ"
	"github.com/eddieramirez/bdactl/internal/meta"
)

// diffCommandAction compares the result documents of two jobs, typically the
// same media run through different project configurations or stages.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "diff") {
		return nil
	}

	args := cmd.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("two job specs are required")
	}

	inference := cmd.Bool("inference")

	pick := func(spec string) ([]byte, error) {
		docs, err := loadJobDocuments(ctx, cmd, spec)
		if err != nil {
			return nil, err
		}
		if inference {
			if docs.Custom == nil {
				return nil, fmt.Errorf("job %s has no custom output", docs.Metadata.JobID)
			}
			return docs.CustomRaw, nil
		}
		if docs.Standard == nil {
			return nil, fmt.Errorf("job %s has no standard output", docs.Metadata.JobID)
		}
		return docs.StandardRaw, nil
	}

	left, err := pick(args[0])
	if err != nil {
		return err
	}
	right, err := pick(args[1])
	if err != nil {
		return err
	}

	out, err := differ.Diff(left, right, !cmd.Bool("delta"), cmd.Bool("color"))
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println("documents match")
		return nil
	}

	fmt.Print(out)
	return nil
}

// diffCommandBuilder constructs the cli.Command for "diff".
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "diff the result documents of two jobs",
		UsageText: "bdactl diff JOB~1 JOB~0 [--delta] [--inference]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewProfileFlag("diff", meta.Config.Source),
			NewRegionFlag("diff", meta.Config.Source),
			&cli.BoolWithInverseFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored diff output",
				Value:   false,
			},
			&cli.BoolFlag{
				Name:        "delta",
				Usage:       "emit a compact delta document instead of ascii",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "inference",
				Usage:       "diff the custom output documents instead of the standard ones",
				HideDefault: true,
			},
		},
		Action: diffCommandAction,
	}
}
