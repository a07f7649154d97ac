// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT
// no-cloc

package jobstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) []Record {
	t.Helper()
	t.Setenv("BDACTL_JOBS_DIR", t.TempDir())

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	records := []Record{
		{
			InvocationARN: "arn:aws:bedrock:us-west-2:123456789012:data-automation-invocation/aaa111",
			ProjectName:   "bda-video-project",
			Stage:         "LIVE",
			Status:        "Success",
			SubmittedAt:   base,
		},
		{
			InvocationARN: "arn:aws:bedrock:us-west-2:123456789012:data-automation-invocation/bbb222",
			ProjectName:   "bda-video-project",
			Stage:         "LIVE",
			Status:        "InProgress",
			SubmittedAt:   base.Add(time.Hour),
		},
		{
			InvocationARN: "arn:aws:bedrock:us-west-2:123456789012:data-automation-invocation/ccc333",
			ProjectName:   "bda-moderation-project",
			Stage:         "DEVELOPMENT",
			Status:        "Created",
			SubmittedAt:   base.Add(2 * time.Hour),
		},
	}

	for _, r := range records {
		require.NoError(t, Save(r))
	}
	return records
}

func TestRecord_ID(t *testing.T) {
	r := Record{InvocationARN: "arn:aws:bedrock:us-west-2:123456789012:data-automation-invocation/aaa111"}
	assert.Equal(t, "aaa111", r.ID())
}

func TestList_NewestFirst(t *testing.T) {
	seed(t)

	records, err := List()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "ccc333", records[0].ID())
	assert.Equal(t, "aaa111", records[2].ID())
}

func TestList_EmptyStore(t *testing.T) {
	t.Setenv("BDACTL_JOBS_DIR", t.TempDir()+"/never-created")

	records, err := List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFind(t *testing.T) {
	seed(t)

	tests := []struct {
		name    string
		spec    string
		wantID  string
		wantErr string
	}{
		{name: "empty spec is newest", spec: "", wantID: "ccc333"},
		{name: "JOB~0 is newest", spec: "JOB~0", wantID: "ccc333"},
		{name: "JOB~1", spec: "JOB~1", wantID: "bbb222"},
		{name: "lowercase job spec", spec: "job~2", wantID: "aaa111"},
		{name: "relative index", spec: "-1", wantID: "bbb222"},
		{name: "id prefix", spec: "bbb", wantID: "bbb222"},
		{name: "full arn", spec: "arn:aws:bedrock:us-west-2:123456789012:data-automation-invocation/aaa111", wantID: "aaa111"},
		{name: "out of range", spec: "JOB~9", wantErr: "out of range"},
		{name: "no match", spec: "zzz", wantErr: "no job matches"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(tt.spec)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID())
		})
	}
}

func TestFind_EmptyStore(t *testing.T) {
	t.Setenv("BDACTL_JOBS_DIR", t.TempDir())

	_, err := Find("")
	assert.ErrorContains(t, err, "no jobs have been submitted")
}

func TestSaveUpdatesInPlace(t *testing.T) {
	records := seed(t)

	updated := records[2]
	updated.Status = "Success"
	now := updated.SubmittedAt.Add(10 * time.Minute)
	updated.CompletedAt = &now
	require.NoError(t, Save(updated))

	all, err := List()
	require.NoError(t, err)
	require.Len(t, all, 3)

	got, err := Find("ccc")
	require.NoError(t, err)
	assert.Equal(t, "Success", got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestRemove(t *testing.T) {
	records := seed(t)

	require.NoError(t, Remove(records[0].InvocationARN))

	all, err := List()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Removing an unknown job is not an error.
	assert.NoError(t, Remove("arn:aws:bedrock:us-west-2:123456789012:data-automation-invocation/gone"))
}
