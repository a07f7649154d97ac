// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package awsx

import (
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/aws/smithy-go"
)

// ErrorContext carries the operation and resource that produced an API error
// so the message shown to the user names what actually failed.
type ErrorContext struct {
	Operation string
	Resource  string
	ARN       string
}

// FriendlyAPI maps raw SDK errors into something a user can act on. The
// original error stays wrapped for errors.Is/As callers.
func FriendlyAPI(err error, ctxErr ErrorContext) error {
	if err == nil {
		return nil
	}

	where := ctxErr.Operation
	if ctxErr.Resource != "" {
		where = fmt.Sprintf("%s %s", ctxErr.Operation, ctxErr.Resource)
	}
	if ctxErr.ARN != "" {
		where = fmt.Sprintf("%s (%s)", where, ctxErr.ARN)
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("failed to %s: %w", where, err)
	}

	log.Debugf("api error: code=%s fault=%s", apiErr.ErrorCode(), apiErr.ErrorFault())

	switch apiErr.ErrorCode() {
	case "AccessDeniedException", "AccessDenied", "UnauthorizedOperation":
		return fmt.Errorf(
			"failed to %s: access denied. Check the active profile's IAM permissions for Bedrock Data Automation and S3: %w",
			where, err)
	case "ResourceNotFoundException", "NoSuchBucket", "NoSuchKey", "NotFound":
		return fmt.Errorf("failed to %s: not found: %w", where, err)
	case "ValidationException":
		return fmt.Errorf("failed to %s: the request was rejected as invalid: %w", where, err)
	case "ThrottlingException", "TooManyRequestsException":
		return fmt.Errorf("failed to %s: throttled, retry later: %w", where, err)
	case "ServiceQuotaExceededException":
		return fmt.Errorf("failed to %s: service quota exceeded: %w", where, err)
	case "ExpiredToken", "ExpiredTokenException", "InvalidClientTokenId":
		return fmt.Errorf("failed to %s: credentials are expired or invalid, refresh your session: %w", where, err)
	default:
		return fmt.Errorf("failed to %s: %s: %w", where, apiErr.ErrorCode(), err)
	}
}
