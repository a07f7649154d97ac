// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/bda"
	"github.com/eddieramirez/bdactl/internal/meta"
)

// shortID returns an 8-character unique suffix for generated resource names.
func shortID() string {
	return uuid.NewString()[:8]
}

// isARN reports whether the spec is already a full ARN rather than a name.
func isARN(spec string) bool {
	return strings.HasPrefix(spec, "arn:")
}

// videoOptionsFromFlags maps the feature toggle flags onto VideoOptions.
// Every feature defaults to enabled, matching the service's full standard
// output set.
func videoOptionsFromFlags(cmd *cli.Command) bda.VideoOptions {
	return bda.VideoOptions{
		TextDetection:     cmd.Bool("text-detection"),
		Transcript:        cmd.Bool("transcript"),
		Logos:             cmd.Bool("logos"),
		ContentModeration: cmd.Bool("moderation"),
		BoundingBoxes:     cmd.Bool("bounding-boxes"),
		VideoSummary:      cmd.Bool("video-summary"),
		ChapterSummaries:  cmd.Bool("chapter-summaries"),
		IABCategories:     cmd.Bool("iab"),
	}
}

// resolveProjectARN accepts a project ARN or name and returns the ARN.
func resolveProjectARN(ctx context.Context, svc *bda.Service, spec string, stage string) (string, error) {
	if isARN(spec) {
		return spec, nil
	}
	p, err := svc.FindProjectByName(ctx, spec, stage)
	if err != nil {
		return "", err
	}
	return p.ARN, nil
}

// resolveBlueprintARN accepts a blueprint ARN or name and returns the ARN.
func resolveBlueprintARN(ctx context.Context, svc *bda.Service, spec string) (string, error) {
	if isARN(spec) {
		return spec, nil
	}
	b, err := svc.FindBlueprintByName(ctx, spec)
	if err != nil {
		return "", err
	}
	return b.ARN, nil
}

// projectCommandAction creates a data automation project, or deletes one
// with --rm.
func projectCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "project") {
		return nil
	}

	svc, _, err := NewService(ctx, cmd)
	if err != nil {
		return err
	}

	stage := cmd.String("stage")

	if rm := cmd.String("rm"); rm != "" {
		arn, err := resolveProjectARN(ctx, svc, rm, stage)
		if err != nil {
			return err
		}
		if err := svc.DeleteProject(ctx, arn); err != nil {
			return err
		}
		fmt.Println("deleted", arn)
		return nil
	}

	name := cmd.String("name")
	if name == "" {
		name = "bdactl-video-" + shortID()
	}

	var blueprintARNs []string
	for _, spec := range cmd.StringSlice("blueprint") {
		arn, err := resolveBlueprintARN(ctx, svc, spec)
		if err != nil {
			return err
		}
		blueprintARNs = append(blueprintARNs, arn)
	}

	in := bda.CreateProjectInput{
		Name:          name,
		Description:   cmd.String("description"),
		Stage:         stage,
		Video:         videoOptionsFromFlags(cmd),
		BlueprintARNs: blueprintARNs,
	}
	log.Debugf("creating project %s (stage %s)", in.Name, in.Stage)

	arn, err := svc.CreateProject(ctx, in)
	if err != nil {
		return err
	}

	fmt.Println(arn)
	return nil
}

// projectCommandBuilder constructs the cli.Command for "project".
func projectCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "project",
		Usage:     "create or delete a data automation project",
		UsageText: "bdactl project [--name NAME] [--blueprint NAME|ARN]... | bdactl project --rm NAME|ARN",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewProfileFlag("project", meta.Config.Source),
			NewRegionFlag("project", meta.Config.Source),
			NewStageFlag("project", meta.Config.Source),
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "project name (generated when omitted)",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "project description",
			},
			&cli.StringSliceFlag{
				Name:  "blueprint",
				Usage: "attach a custom output blueprint, by name or ARN",
			},
			&cli.StringFlag{
				Name:  "rm",
				Usage: "delete the named project instead of creating one",
			},
			&cli.BoolWithInverseFlag{Name: "text-detection", Usage: "extract on-screen text", Value: true},
			&cli.BoolWithInverseFlag{Name: "transcript", Usage: "extract the audio transcript", Value: true},
			&cli.BoolWithInverseFlag{Name: "logos", Usage: "detect logos", Value: true},
			&cli.BoolWithInverseFlag{Name: "moderation", Usage: "detect moderated content", Value: true},
			&cli.BoolWithInverseFlag{Name: "bounding-boxes", Usage: "include detection bounding boxes", Value: true},
			&cli.BoolWithInverseFlag{Name: "video-summary", Usage: "generate a full-video summary", Value: true},
			&cli.BoolWithInverseFlag{Name: "chapter-summaries", Usage: "generate per-chapter summaries", Value: true},
			&cli.BoolWithInverseFlag{Name: "iab", Usage: "classify chapters into IAB categories", Value: true},
		},
		Action: projectCommandAction,
	}
}
