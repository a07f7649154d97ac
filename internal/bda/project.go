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

// VideoOptions selects which standard output features a project extracts
// from video. The zero value disables everything, so callers normally start
// from DefaultVideoOptions.
type VideoOptions struct {
	TextDetection     bool
	Transcript        bool
	Logos             bool
	ContentModeration bool
	BoundingBoxes     bool

	VideoSummary     bool
	ChapterSummaries bool
	IABCategories    bool
}

// DefaultVideoOptions enables the full extraction and generative set.
func DefaultVideoOptions() VideoOptions {
	return VideoOptions{
		TextDetection:     true,
		Transcript:        true,
		Logos:             true,
		ContentModeration: true,
		BoundingBoxes:     true,
		VideoSummary:      true,
		ChapterSummaries:  true,
		IABCategories:     true,
	}
}

// StandardOutput builds the service-side standard output configuration for
// the selected video features.
func (o VideoOptions) StandardOutput() *types.StandardOutputConfiguration {
	var categories []types.VideoExtractionCategoryType
	if o.TextDetection {
		categories = append(categories, types.VideoExtractionCategoryTypeTextDetection)
	}
	if o.Transcript {
		categories = append(categories, types.VideoExtractionCategoryTypeTranscript)
	}
	if o.Logos {
		categories = append(categories, types.VideoExtractionCategoryTypeLogos)
	}
	if o.ContentModeration {
		categories = append(categories, types.VideoExtractionCategoryTypeContentModeration)
	}

	var generative []types.VideoStandardGenerativeFieldType
	if o.VideoSummary {
		generative = append(generative, types.VideoStandardGenerativeFieldTypeVideoSummary)
	}
	if o.ChapterSummaries {
		generative = append(generative, types.VideoStandardGenerativeFieldTypeChapterSummary)
	}
	if o.IABCategories {
		generative = append(generative, types.VideoStandardGenerativeFieldTypeIab)
	}

	state := func(enabled bool) types.State {
		if enabled {
			return types.StateEnabled
		}
		return types.StateDisabled
	}

	return &types.StandardOutputConfiguration{
		Video: &types.VideoStandardOutputConfiguration{
			Extraction: &types.VideoStandardExtraction{
				Category: &types.VideoExtractionCategory{
					State: state(len(categories) > 0),
					Types: categories,
				},
				BoundingBox: &types.VideoBoundingBox{
					State: state(o.BoundingBoxes),
				},
			},
			GenerativeField: &types.VideoStandardGenerativeField{
				State: state(len(generative) > 0),
				Types: generative,
			},
		},
	}
}

// Project is the subset of project detail bdactl reports on.
type Project struct {
	ARN         string     `json:"projectArn"`
	Name        string     `json:"projectName"`
	Description string     `json:"projectDescription,omitempty"`
	Stage       string     `json:"projectStage"`
	CreatedAt   *time.Time `json:"creationTime,omitempty"`
}

// CreateProjectInput carries everything needed to stand up a project,
// optionally attached to custom output blueprints.
type CreateProjectInput struct {
	Name          string
	Description   string
	Stage         string
	Video         VideoOptions
	BlueprintARNs []string
}

// CreateProject creates a data automation project and returns its ARN.
func (s *Service) CreateProject(ctx context.Context, in CreateProjectInput) (string, error) {
	params := &bedrockdataautomation.CreateDataAutomationProjectInput{
		ProjectName:                 aws.String(in.Name),
		ProjectStage:                types.DataAutomationProjectStage(in.Stage),
		StandardOutputConfiguration: in.Video.StandardOutput(),
	}
	if in.Description != "" {
		params.ProjectDescription = aws.String(in.Description)
	}

	if len(in.BlueprintARNs) > 0 {
		items := make([]types.BlueprintItem, 0, len(in.BlueprintARNs))
		for _, arn := range in.BlueprintARNs {
			items = append(items, types.BlueprintItem{
				BlueprintArn: aws.String(arn),
			})
		}
		params.CustomOutputConfiguration = &types.CustomOutputConfiguration{
			Blueprints: items,
		}
	}

	out, err := s.Control.CreateDataAutomationProject(ctx, params)
	if err != nil {
		return "", awsx.FriendlyAPI(err, awsx.ErrorContext{
			Operation: "create",
			Resource:  "project",
		})
	}

	return aws.ToString(out.ProjectArn), nil
}

// ListProjects pages through every project visible to the caller. An empty
// stage lists all stages.
func (s *Service) ListProjects(ctx context.Context, stage string) ([]Project, error) {
	filter := types.DataAutomationProjectStageFilterAll
	if stage != "" {
		filter = types.DataAutomationProjectStageFilter(stage)
	}

	var projects []Project
	var token *string
	for {
		out, err := s.Control.ListDataAutomationProjects(ctx, &bedrockdataautomation.ListDataAutomationProjectsInput{
			NextToken:          token,
			ProjectStageFilter: filter,
		})
		if err != nil {
			return nil, awsx.FriendlyAPI(err, awsx.ErrorContext{
				Operation: "list",
				Resource:  "projects",
			})
		}

		for _, p := range out.Projects {
			projects = append(projects, Project{
				ARN:       aws.ToString(p.ProjectArn),
				Name:      aws.ToString(p.ProjectName),
				Stage:     string(p.ProjectStage),
				CreatedAt: p.CreationTime,
			})
		}

		if out.NextToken == nil {
			return projects, nil
		}
		token = out.NextToken
	}
}

// GetProject fetches project detail for a stage.
func (s *Service) GetProject(ctx context.Context, arn string, stage string) (Project, error) {
	params := &bedrockdataautomation.GetDataAutomationProjectInput{
		ProjectArn: aws.String(arn),
	}
	if stage != "" {
		params.ProjectStage = types.DataAutomationProjectStage(stage)
	}

	out, err := s.Control.GetDataAutomationProject(ctx, params)
	if err != nil {
		return Project{}, awsx.FriendlyAPI(err, awsx.ErrorContext{
			Operation: "get",
			Resource:  "project",
			ARN:       arn,
		})
	}

	p := out.Project
	return Project{
		ARN:         aws.ToString(p.ProjectArn),
		Name:        aws.ToString(p.ProjectName),
		Description: aws.ToString(p.ProjectDescription),
		Stage:       string(p.ProjectStage),
		CreatedAt:   p.CreationTime,
	}, nil
}

// FindProjectByName resolves a project name to its summary. Names are not
// unique across stages, so the stage narrows the match when provided.
func (s *Service) FindProjectByName(ctx context.Context, name string, stage string) (Project, error) {
	projects, err := s.ListProjects(ctx, stage)
	if err != nil {
		return Project{}, err
	}

	for _, p := range projects {
		if p.Name == name {
			return p, nil
		}
	}

	return Project{}, fmt.Errorf("project not found: %s", name)
}

// DeleteProject removes a project. Deletion applies to all stages of the
// project.
func (s *Service) DeleteProject(ctx context.Context, arn string) error {
	_, err := s.Control.DeleteDataAutomationProject(ctx, &bedrockdataautomation.DeleteDataAutomationProjectInput{
		ProjectArn: aws.String(arn),
	})
	return awsx.FriendlyAPI(err, awsx.ErrorContext{
		Operation: "delete",
		Resource:  "project",
		ARN:       arn,
	})
}
