// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package bda

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockdataautomation"
	"github.com/aws/aws-sdk-go-v2/service/bedrockdataautomation/types"

	"github.com/eddieramirez/bdactl/internal/awsx"
)

// Blueprint is the subset of blueprint detail bdactl reports on.
type Blueprint struct {
	ARN       string     `json:"blueprintArn"`
	Name      string     `json:"blueprintName"`
	Stage     string     `json:"blueprintStage"`
	Version   string     `json:"blueprintVersion,omitempty"`
	Type      string     `json:"type,omitempty"`
	Schema    string     `json:"schema,omitempty"`
	CreatedAt *time.Time `json:"creationTime,omitempty"`
}

// CreateBlueprintInput names a custom output blueprint and its schema
// document. Type is the modality the blueprint applies to (VIDEO, AUDIO,
// DOCUMENT or IMAGE).
type CreateBlueprintInput struct {
	Name   string
	Type   string
	Stage  string
	Schema string
}

// CreateBlueprint registers a custom output blueprint and returns its ARN.
func (s *Service) CreateBlueprint(ctx context.Context, in CreateBlueprintInput) (string, error) {
	out, err := s.Control.CreateBlueprint(ctx, &bedrockdataautomation.CreateBlueprintInput{
		BlueprintName:  aws.String(in.Name),
		Type:           types.Type(in.Type),
		BlueprintStage: types.BlueprintStage(in.Stage),
		Schema:         aws.String(in.Schema),
	})
	if err != nil {
		return "", awsx.FriendlyAPI(err, awsx.ErrorContext{
			Operation: "create",
			Resource:  "blueprint",
		})
	}

	return aws.ToString(out.Blueprint.BlueprintArn), nil
}

// ListBlueprints pages through the caller's custom blueprints.
func (s *Service) ListBlueprints(ctx context.Context) ([]Blueprint, error) {
	var blueprints []Blueprint
	var token *string
	for {
		out, err := s.Control.ListBlueprints(ctx, &bedrockdataautomation.ListBlueprintsInput{
			NextToken: token,
		})
		if err != nil {
			return nil, awsx.FriendlyAPI(err, awsx.ErrorContext{
				Operation: "list",
				Resource:  "blueprints",
			})
		}

		for _, b := range out.Blueprints {
			blueprints = append(blueprints, Blueprint{
				ARN:       aws.ToString(b.BlueprintArn),
				Name:      aws.ToString(b.BlueprintName),
				Stage:     string(b.BlueprintStage),
				Version:   aws.ToString(b.BlueprintVersion),
				CreatedAt: b.CreationTime,
			})
		}

		if out.NextToken == nil {
			return blueprints, nil
		}
		token = out.NextToken
	}
}

// GetBlueprint fetches blueprint detail including its schema document.
func (s *Service) GetBlueprint(ctx context.Context, arn string, stage string) (Blueprint, error) {
	params := &bedrockdataautomation.GetBlueprintInput{
		BlueprintArn: aws.String(arn),
	}
	if stage != "" {
		params.BlueprintStage = types.BlueprintStage(stage)
	}

	out, err := s.Control.GetBlueprint(ctx, params)
	if err != nil {
		return Blueprint{}, awsx.FriendlyAPI(err, awsx.ErrorContext{
			Operation: "get",
			Resource:  "blueprint",
			ARN:       arn,
		})
	}

	b := out.Blueprint
	return Blueprint{
		ARN:       aws.ToString(b.BlueprintArn),
		Name:      aws.ToString(b.BlueprintName),
		Stage:     string(b.BlueprintStage),
		Version:   aws.ToString(b.BlueprintVersion),
		Type:      string(b.Type),
		Schema:    aws.ToString(b.Schema),
		CreatedAt: b.CreationTime,
	}, nil
}

// FindBlueprintByName resolves a blueprint name to its summary.
func (s *Service) FindBlueprintByName(ctx context.Context, name string) (Blueprint, error) {
	blueprints, err := s.ListBlueprints(ctx)
	if err != nil {
		return Blueprint{}, err
	}

	for _, b := range blueprints {
		if b.Name == name {
			return b, nil
		}
	}

	return Blueprint{}, fmt.Errorf("blueprint not found: %s", name)
}

// DeleteBlueprint removes a custom blueprint.
func (s *Service) DeleteBlueprint(ctx context.Context, arn string) error {
	_, err := s.Control.DeleteBlueprint(ctx, &bedrockdataautomation.DeleteBlueprintInput{
		BlueprintArn: aws.String(arn),
	})
	return awsx.FriendlyAPI(err, awsx.ErrorContext{
		Operation: "delete",
		Resource:  "blueprint",
		ARN:       arn,
	})
}
