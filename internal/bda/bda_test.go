// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT
// no-cloc

package bda

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockdataautomation"
	"github.com/aws/aws-sdk-go-v2/service/bedrockdataautomation/types"
	"github.com/aws/aws-sdk-go-v2/service/bedrockdataautomationruntime"
	runtimetypes "github.com/aws/aws-sdk-go-v2/service/bedrockdataautomationruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeControl implements ControlAPI with canned responses.
type fakeControl struct {
	ControlAPI

	createProjectIn *bedrockdataautomation.CreateDataAutomationProjectInput
	listPages       []*bedrockdataautomation.ListDataAutomationProjectsOutput
	listCalls       int
	deletedARN      string
}

func (f *fakeControl) CreateDataAutomationProject(_ context.Context, params *bedrockdataautomation.CreateDataAutomationProjectInput, _ ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.CreateDataAutomationProjectOutput, error) {
	f.createProjectIn = params
	return &bedrockdataautomation.CreateDataAutomationProjectOutput{
		ProjectArn: aws.String("arn:aws:bedrock:us-west-2:123456789012:data-automation-project/p1"),
	}, nil
}

func (f *fakeControl) ListDataAutomationProjects(_ context.Context, _ *bedrockdataautomation.ListDataAutomationProjectsInput, _ ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.ListDataAutomationProjectsOutput, error) {
	out := f.listPages[f.listCalls]
	f.listCalls++
	return out, nil
}

func (f *fakeControl) DeleteDataAutomationProject(_ context.Context, params *bedrockdataautomation.DeleteDataAutomationProjectInput, _ ...func(*bedrockdataautomation.Options)) (*bedrockdataautomation.DeleteDataAutomationProjectOutput, error) {
	f.deletedARN = aws.ToString(params.ProjectArn)
	return &bedrockdataautomation.DeleteDataAutomationProjectOutput{}, nil
}

// fakeRuntime implements RuntimeAPI with a scripted status sequence.
type fakeRuntime struct {
	invokeIn    *bedrockdataautomationruntime.InvokeDataAutomationAsyncInput
	statuses    []runtimetypes.AutomationJobStatus
	statusCalls int
	metadataURI string
	errType     string
	errMsg      string
}

func (f *fakeRuntime) InvokeDataAutomationAsync(_ context.Context, params *bedrockdataautomationruntime.InvokeDataAutomationAsyncInput, _ ...func(*bedrockdataautomationruntime.Options)) (*bedrockdataautomationruntime.InvokeDataAutomationAsyncOutput, error) {
	f.invokeIn = params
	return &bedrockdataautomationruntime.InvokeDataAutomationAsyncOutput{
		InvocationArn: aws.String("arn:aws:bedrock:us-west-2:123456789012:data-automation-invocation/j1"),
	}, nil
}

func (f *fakeRuntime) GetDataAutomationStatus(_ context.Context, _ *bedrockdataautomationruntime.GetDataAutomationStatusInput, _ ...func(*bedrockdataautomationruntime.Options)) (*bedrockdataautomationruntime.GetDataAutomationStatusOutput, error) {
	status := f.statuses[f.statusCalls]
	if f.statusCalls < len(f.statuses)-1 {
		f.statusCalls++
	}

	out := &bedrockdataautomationruntime.GetDataAutomationStatusOutput{
		Status: status,
	}
	if f.metadataURI != "" {
		out.OutputConfiguration = &runtimetypes.OutputConfiguration{
			S3Uri: aws.String(f.metadataURI),
		}
	}
	if f.errType != "" {
		out.ErrorType = aws.String(f.errType)
		out.ErrorMessage = aws.String(f.errMsg)
	}
	return out, nil
}

func TestProfileARN(t *testing.T) {
	got := ProfileARN("us-west-2", "123456789012")
	assert.Equal(t,
		"arn:aws:bedrock:us-west-2:123456789012:data-automation-profile/us.data-automation-v1",
		got)
}

func TestVideoOptions_StandardOutput(t *testing.T) {
	t.Run("defaults enable everything", func(t *testing.T) {
		std := DefaultVideoOptions().StandardOutput()
		video := std.Video

		require.NotNil(t, video)
		assert.Equal(t, types.StateEnabled, video.Extraction.Category.State)
		assert.Len(t, video.Extraction.Category.Types, 4)
		assert.Equal(t, types.StateEnabled, video.Extraction.BoundingBox.State)
		assert.Equal(t, types.StateEnabled, video.GenerativeField.State)
		assert.Len(t, video.GenerativeField.Types, 3)
	})

	t.Run("zero value disables everything", func(t *testing.T) {
		std := VideoOptions{}.StandardOutput()
		video := std.Video

		assert.Equal(t, types.StateDisabled, video.Extraction.Category.State)
		assert.Empty(t, video.Extraction.Category.Types)
		assert.Equal(t, types.StateDisabled, video.Extraction.BoundingBox.State)
		assert.Equal(t, types.StateDisabled, video.GenerativeField.State)
	})

	t.Run("partial selection", func(t *testing.T) {
		std := VideoOptions{Transcript: true, VideoSummary: true}.StandardOutput()
		video := std.Video

		require.Len(t, video.Extraction.Category.Types, 1)
		assert.Equal(t, types.VideoExtractionCategoryTypeTranscript, video.Extraction.Category.Types[0])
		require.Len(t, video.GenerativeField.Types, 1)
		assert.Equal(t, types.VideoStandardGenerativeFieldTypeVideoSummary, video.GenerativeField.Types[0])
	})
}

func TestCreateProject(t *testing.T) {
	control := &fakeControl{}
	svc := New(control, nil)

	arn, err := svc.CreateProject(context.Background(), CreateProjectInput{
		Name:          "bda-video-project",
		Description:   "workshop project",
		Stage:         "LIVE",
		Video:         DefaultVideoOptions(),
		BlueprintARNs: []string{"arn:aws:bedrock:us-west-2:123456789012:blueprint/b1"},
	})

	require.NoError(t, err)
	assert.Contains(t, arn, "data-automation-project/p1")

	in := control.createProjectIn
	assert.Equal(t, "bda-video-project", aws.ToString(in.ProjectName))
	assert.Equal(t, types.DataAutomationProjectStage("LIVE"), in.ProjectStage)
	require.NotNil(t, in.CustomOutputConfiguration)
	require.Len(t, in.CustomOutputConfiguration.Blueprints, 1)
}

func TestListProjects_Pagination(t *testing.T) {
	control := &fakeControl{
		listPages: []*bedrockdataautomation.ListDataAutomationProjectsOutput{
			{
				Projects: []types.DataAutomationProjectSummary{
					{ProjectArn: aws.String("arn/p1"), ProjectName: aws.String("one")},
				},
				NextToken: aws.String("page2"),
			},
			{
				Projects: []types.DataAutomationProjectSummary{
					{ProjectArn: aws.String("arn/p2"), ProjectName: aws.String("two")},
				},
			},
		},
	}
	svc := New(control, nil)

	projects, err := svc.ListProjects(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, 2, control.listCalls)
	assert.Equal(t, "two", projects[1].Name)
}

func TestFindProjectByName(t *testing.T) {
	control := &fakeControl{
		listPages: []*bedrockdataautomation.ListDataAutomationProjectsOutput{
			{
				Projects: []types.DataAutomationProjectSummary{
					{ProjectArn: aws.String("arn/p1"), ProjectName: aws.String("bda-video-project")},
				},
			},
		},
	}
	svc := New(control, nil)

	p, err := svc.FindProjectByName(context.Background(), "bda-video-project", "")
	require.NoError(t, err)
	assert.Equal(t, "arn/p1", p.ARN)

	control.listCalls = 0
	_, err = svc.FindProjectByName(context.Background(), "missing", "")
	assert.ErrorContains(t, err, "project not found")
}

func TestInvoke(t *testing.T) {
	runtime := &fakeRuntime{}
	svc := New(nil, runtime)

	arn, err := svc.Invoke(context.Background(), InvokeInput{
		InputURI:   "s3://bucket/media/video.mp4",
		OutputURI:  "s3://bucket/output",
		ProjectARN: "arn/p1",
		Stage:      "LIVE",
		ProfileARN: ProfileARN("us-west-2", "123456789012"),
	})

	require.NoError(t, err)
	assert.Contains(t, arn, "data-automation-invocation/j1")

	in := runtime.invokeIn
	assert.Equal(t, "s3://bucket/media/video.mp4", aws.ToString(in.InputConfiguration.S3Uri))
	assert.Equal(t, "s3://bucket/output", aws.ToString(in.OutputConfiguration.S3Uri))
	assert.Equal(t, runtimetypes.DataAutomationStage("LIVE"), in.DataAutomationConfiguration.Stage)
	assert.Contains(t, aws.ToString(in.DataAutomationProfileArn), "us.data-automation-v1")
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal("Success"))
	assert.True(t, Terminal("ServiceError"))
	assert.True(t, Terminal("ClientError"))
	assert.False(t, Terminal("Created"))
	assert.False(t, Terminal("InProgress"))
	assert.False(t, Terminal(""))
}

func TestPoll_Succeeds(t *testing.T) {
	runtime := &fakeRuntime{
		statuses: []runtimetypes.AutomationJobStatus{
			runtimetypes.AutomationJobStatusCreated,
			runtimetypes.AutomationJobStatusInProgress,
			runtimetypes.AutomationJobStatusSuccess,
		},
		metadataURI: "s3://bucket/output/job-1/job_metadata.json",
	}
	svc := New(nil, runtime)

	var seen []string
	status, err := svc.Poll(context.Background(), "arn/j1", time.Millisecond, func(s JobStatus) {
		seen = append(seen, s.Status)
	})

	require.NoError(t, err)
	assert.True(t, status.Succeeded())
	assert.Equal(t, "s3://bucket/output/job-1/job_metadata.json", status.MetadataURI)
	assert.Equal(t, []string{"Created", "InProgress", "Success"}, seen)
}

func TestPoll_Fails(t *testing.T) {
	runtime := &fakeRuntime{
		statuses: []runtimetypes.AutomationJobStatus{
			runtimetypes.AutomationJobStatusInProgress,
			runtimetypes.AutomationJobStatusClientError,
		},
		errType: "ValidationException",
		errMsg:  "input video too long",
	}
	svc := New(nil, runtime)

	status, err := svc.Poll(context.Background(), "arn/j1", time.Millisecond, nil)
	assert.ErrorContains(t, err, "job failed")
	assert.ErrorContains(t, err, "input video too long")
	assert.Equal(t, "ClientError", status.Status)
}

func TestPoll_ContextCancel(t *testing.T) {
	runtime := &fakeRuntime{
		statuses: []runtimetypes.AutomationJobStatus{
			runtimetypes.AutomationJobStatusInProgress,
		},
	}
	svc := New(nil, runtime)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Poll(ctx, "arn/j1", time.Hour, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
