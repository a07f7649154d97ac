// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package bda

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockdataautomationruntime"
	runtimetypes "github.com/aws/aws-sdk-go-v2/service/bedrockdataautomationruntime/types"

	"github.com/eddieramirez/bdactl/internal/awsx"
)

// DefaultPollInterval is how often job status is refreshed while waiting.
const DefaultPollInterval = 5 * time.Second

// InvokeInput describes an async job: where the media is, where results go,
// and which project processes it.
type InvokeInput struct {
	InputURI   string
	OutputURI  string
	ProjectARN string
	Stage      string
	ProfileARN string
}

// Invoke starts an async data automation job and returns the invocation ARN.
func (s *Service) Invoke(ctx context.Context, in InvokeInput) (string, error) {
	out, err := s.Runtime.InvokeDataAutomationAsync(ctx, &bedrockdataautomationruntime.InvokeDataAutomationAsyncInput{
		InputConfiguration: &runtimetypes.InputConfiguration{
			S3Uri: aws.String(in.InputURI),
		},
		OutputConfiguration: &runtimetypes.OutputConfiguration{
			S3Uri: aws.String(in.OutputURI),
		},
		DataAutomationConfiguration: &runtimetypes.DataAutomationConfiguration{
			DataAutomationProjectArn: aws.String(in.ProjectARN),
			Stage:                    runtimetypes.DataAutomationStage(in.Stage),
		},
		DataAutomationProfileArn: aws.String(in.ProfileARN),
	})
	if err != nil {
		return "", awsx.FriendlyAPI(err, awsx.ErrorContext{
			Operation: "invoke",
			Resource:  "job",
			ARN:       in.ProjectARN,
		})
	}

	return aws.ToString(out.InvocationArn), nil
}

// JobStatus is a point-in-time view of a running or finished job.
type JobStatus struct {
	InvocationARN string `json:"invocationArn"`
	Status        string `json:"status"`
	ErrorType     string `json:"errorType,omitempty"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
	// MetadataURI points at the job_metadata.json the service writes on
	// completion.
	MetadataURI string `json:"metadataUri,omitempty"`
}

// Succeeded reports whether the job finished with results.
func (j JobStatus) Succeeded() bool {
	return j.Status == string(runtimetypes.AutomationJobStatusSuccess)
}

// Terminal reports whether the status will never change again.
func Terminal(status string) bool {
	switch runtimetypes.AutomationJobStatus(status) {
	case runtimetypes.AutomationJobStatusSuccess,
		runtimetypes.AutomationJobStatusServiceError,
		runtimetypes.AutomationJobStatusClientError:
		return true
	default:
		return false
	}
}

// Status fetches the current status of an invocation.
func (s *Service) Status(ctx context.Context, invocationARN string) (JobStatus, error) {
	out, err := s.Runtime.GetDataAutomationStatus(ctx, &bedrockdataautomationruntime.GetDataAutomationStatusInput{
		InvocationArn: aws.String(invocationARN),
	})
	if err != nil {
		return JobStatus{}, awsx.FriendlyAPI(err, awsx.ErrorContext{
			Operation: "get status of",
			Resource:  "job",
			ARN:       invocationARN,
		})
	}

	status := JobStatus{
		InvocationARN: invocationARN,
		Status:        string(out.Status),
		ErrorType:     aws.ToString(out.ErrorType),
		ErrorMessage:  aws.ToString(out.ErrorMessage),
	}
	if out.OutputConfiguration != nil {
		status.MetadataURI = aws.ToString(out.OutputConfiguration.S3Uri)
	}

	return status, nil
}

// Poll refreshes job status every interval until the job reaches a terminal
// state or the context is done. The progress callback, when provided, fires
// after every refresh.
func (s *Service) Poll(ctx context.Context, invocationARN string, interval time.Duration, progress func(JobStatus)) (JobStatus, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := s.Status(ctx, invocationARN)
		if err != nil {
			return JobStatus{}, err
		}

		log.Debugf("job %s: %s", invocationARN, status.Status)

		if progress != nil {
			progress(status)
		}

		if Terminal(status.Status) {
			if !status.Succeeded() {
				return status, fmt.Errorf("job failed: %s: %s", status.ErrorType, status.ErrorMessage)
			}
			return status, nil
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}
