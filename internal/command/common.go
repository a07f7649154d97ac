// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"
	"os/exec"
	"reflect"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/attrs"
	"github.com/eddieramirez/bdactl/internal/awsx"
	"github.com/eddieramirez/bdactl/internal/bda"
	"github.com/eddieramirez/bdactl/internal/meta"
	"github.com/eddieramirez/bdactl/internal/output"
	"github.com/eddieramirez/bdactl/internal/result"
	"github.com/eddieramirez/bdactl/internal/s3io"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr bdactl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "bdactl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// DumpSchemaIfRequested prints the JSON schema for the provided type when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema("", t)
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// EmitRows marshals a row slice and passes it to the common output routine.
func EmitRows(rows any, al attrs.AttrList, cmd *cli.Command) error {
	raw, err := result.Marshal(rows)
	if err != nil {
		return err
	}
	output.SliceDiceSpit(raw, al, cmd, "", os.Stdout)
	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewAWSConfig loads the AWS config honoring the --profile and --region
// flags.
func NewAWSConfig(ctx context.Context, cmd *cli.Command) (aws.Config, error) {
	return awsx.LoadConfig(ctx,
		awsx.WithProfile(cmd.String("profile")),
		awsx.WithRegion(cmd.String("region")),
	)
}

// NewService builds the Bedrock Data Automation service facade from command
// flags.
func NewService(ctx context.Context, cmd *cli.Command) (*bda.Service, aws.Config, error) {
	cfg, err := NewAWSConfig(ctx, cmd)
	if err != nil {
		return nil, aws.Config{}, err
	}
	log.Debugf("aws region: %s", cfg.Region)

	return bda.New(awsx.NewControl(cfg), awsx.NewRuntime(cfg)), cfg, nil
}

// NewStore builds the S3 document store from command flags.
func NewStore(ctx context.Context, cmd *cli.Command) (*s3io.Store, error) {
	cfg, err := NewAWSConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return s3io.New(awsx.NewS3(cfg)), nil
}

// QueryCommandBuilder is a helper that constructs a cli.Command for query
// subcommands (pq, bq, jq) and the result views using a consistent pattern.
// It accepts the command name, usage text, optional UsageText, custom flags,
// the action handler, and meta. The builder automatically wires metadata,
// adds tldr/schema flags, applies global flags, and sets up validators.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Examples  [][2]string
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: append(qcb.Flags, append([]cli.Flag{
			tldrFlag,
			schemaFlag,
			examplesFlag,
		}, NewGlobalFlags(qcb.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("examples") {
				output.DumpExamples(qcb.Examples)
				return nil
			}
			return qcb.Action(ctx, c)
		},
	}
}

// QueryActionRunner[T] encapsulates the common query action pattern for the
// query subcommands. It handles GetMeta, short-circuit checks, BuildAttrs,
// schema dumping, and output emission, with data fetching provided by
// FetchFn.
type QueryActionRunner[T any] struct {
	CommandName  string
	SchemaType   reflect.Type
	DefaultAttrs []string
	FetchFn      func(context.Context, *cli.Command) ([]T, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}
	if DumpSchemaIfRequested(cmd, qar.SchemaType) {
		return nil
	}

	attrs := BuildAttrs(cmd, qar.DefaultAttrs...)
	log.Debugf("attrs: %v", attrs)

	results, err := qar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}

	return EmitRows(results, attrs, cmd)
}
