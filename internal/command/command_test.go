// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT
// no-cloc

package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddieramirez/bdactl/internal/jobstore"
)

func TestExportFormat(t *testing.T) {
	cases := []struct {
		path     string
		format   string
		compress bool
		wantErr  bool
	}{
		{path: "chapters.parquet", format: "parquet"},
		{path: "frames.jsonl", format: "jsonl"},
		{path: "frames.jsonl.zst", format: "jsonl", compress: true},
		{path: "chapters.csv", wantErr: true},
		{path: "chapters", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			format, compress, err := exportFormat(tc.path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.format, format)
			assert.Equal(t, tc.compress, compress)
		})
	}
}

func TestIsARN(t *testing.T) {
	assert.True(t, isARN("arn:aws:bedrock:us-west-2:123456789012:data-automation-project/abc"))
	assert.False(t, isARN("my-project"))
	assert.False(t, isARN("s3://bucket/key"))
}

func TestShortID(t *testing.T) {
	id := shortID()
	assert.Len(t, id, 8)
	assert.NotEqual(t, id, shortID())
}

func TestJobRows(t *testing.T) {
	submitted := time.Now().Add(-10 * time.Minute)
	completed := submitted.Add(3 * time.Minute)

	rows := jobRows([]jobstore.Record{
		{
			InvocationARN: "arn:aws:bedrock:us-west-2:123456789012:data-automation-invocation/aaa111",
			ProjectName:   "meridian",
			Stage:         "LIVE",
			Status:        "Success",
			SubmittedAt:   submitted,
			CompletedAt:   &completed,
		},
		{
			InvocationARN: "arn:aws:bedrock:us-west-2:123456789012:data-automation-invocation/bbb222",
			Stage:         "LIVE",
			Status:        "InProgress",
			SubmittedAt:   submitted,
		},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "aaa111", rows[0].ID)
	assert.Equal(t, "3m0s", rows[0].Elapsed)
	assert.Equal(t, "10 minutes ago", rows[0].Submitted)

	// In-flight jobs show elapsed time so far.
	assert.Equal(t, "bbb222", rows[1].ID)
	assert.NotEmpty(t, rows[1].Elapsed)
}
