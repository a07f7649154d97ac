// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/config"
	"github.com/eddieramirez/bdactl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// Save the CWD at startup and then defer restoring it so we're tidy.
	sd, _ := os.Getwd()
	defer func() {
		if err := os.Chdir(sd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore directory: %v\n", err)
		}
	}()

	// The arg[1] immediately following the binary (arg[0]) is the bdactl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns)
	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "bdactl",
		Usage: "Bedrock Data Automation Control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "bdactl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		pqCommandBuilder(meta),
		bqCommandBuilder(meta),
		jqCommandBuilder(meta),
		projectCommandBuilder(meta),
		blueprintCommandBuilder(meta),
		submitCommandBuilder(meta),
		watchCommandBuilder(meta),
		resultsCommandBuilder(meta),
		exportCommandBuilder(meta),
		diffCommandBuilder(meta),
		purgeCommandBuilder(meta),
		CompletionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
