// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package bda

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/bedrockdataautomation"
	"github.com/aws/aws-sdk-go-v2/service/bedrockdataautomationruntime"
)

// ControlAPI is the build-time surface of Bedrock Data Automation used by
// bdactl. Narrowed to an interface so tests can run against fakes.
type ControlAPI interface {
	CreateDataAutomationProject(ctx context.Context, params *bedrockdataautomation.CreateDataAutomationProjectInput, optFns ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.CreateDataAutomationProjectOutput, error)
	ListDataAutomationProjects(ctx context.Context, params *bedrockdataautomation.ListDataAutomationProjectsInput, optFns ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.ListDataAutomationProjectsOutput, error)
	GetDataAutomationProject(ctx context.Context, params *bedrockdataautomation.GetDataAutomationProjectInput, optFns ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.GetDataAutomationProjectOutput, error)
	DeleteDataAutomationProject(ctx context.Context, params *bedrockdataautomation.DeleteDataAutomationProjectInput, optFns ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.DeleteDataAutomationProjectOutput, error)
	CreateBlueprint(ctx context.Context, params *bedrockdataautomation.CreateBlueprintInput, optFns ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.CreateBlueprintOutput, error)
	ListBlueprints(ctx context.Context, params *bedrockdataautomation.ListBlueprintsInput, optFns ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.ListBlueprintsOutput, error)
	GetBlueprint(ctx context.Context, params *bedrockdataautomation.GetBlueprintInput, optFns ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.GetBlueprintOutput, error)
	DeleteBlueprint(ctx context.Context, params *bedrockdataautomation.DeleteBlueprintInput, optFns ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.DeleteBlueprintOutput, error)
}

// RuntimeAPI is the invocation surface used to start jobs and poll them.
type RuntimeAPI interface {
	InvokeDataAutomationAsync(ctx context.Context, params *bedrockdataautomationruntime.InvokeDataAutomationAsyncInput, optFns ...func(*bedrockdataautomationruntime.Options)) (*bedrockdataautomationruntime.InvokeDataAutomationAsyncOutput, error)
	GetDataAutomationStatus(ctx context.Context, params *bedrockdataautomationruntime.GetDataAutomationStatusInput, optFns ...func(*bedrockdataautomationruntime.Options)) (*bedrockdataautomationruntime.GetDataAutomationStatusOutput, error)
}

// Service wraps the two Bedrock Data Automation clients behind bdactl's
// operations.
type Service struct {
	Control ControlAPI
	Runtime RuntimeAPI
}

func New(control ControlAPI, runtime RuntimeAPI) *Service {
	return &Service{Control: control, Runtime: runtime}
}

// profileName is the only cross-region inference profile the service offers
// today.
const profileName = "us.data-automation-v1"

// ProfileARN builds the data automation profile ARN every invocation must
// reference.
func ProfileARN(region string, account string) string {
	return fmt.Sprintf("arn:aws:bedrock:%s:%s:data-automation-profile/%s", region, account, profileName)
}
