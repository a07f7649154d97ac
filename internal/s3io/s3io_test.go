// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT
// no-cloc

package s3io

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    URI
		wantErr bool
	}{
		{
			name: "bucket and key",
			raw:  "s3://bda-workshop-bucket/output/job_metadata.json",
			want: URI{Bucket: "bda-workshop-bucket", Key: "output/job_metadata.json"},
		},
		{
			name: "bucket only",
			raw:  "s3://bda-workshop-bucket",
			want: URI{Bucket: "bda-workshop-bucket"},
		},
		{
			name: "bucket with trailing slash",
			raw:  "s3://bda-workshop-bucket/",
			want: URI{Bucket: "bda-workshop-bucket"},
		},
		{
			name:    "not s3",
			raw:     "https://example.com/x",
			wantErr: true,
		},
		{
			name:    "empty bucket",
			raw:     "s3:///key",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURI(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURI_JoinDirString(t *testing.T) {
	u := URI{Bucket: "bucket", Key: "output"}

	joined := u.Join("job-1", "job_metadata.json")
	assert.Equal(t, "s3://bucket/output/job-1/job_metadata.json", joined.String())

	assert.Equal(t, "s3://bucket/output/job-1", joined.Dir().String())
	assert.Equal(t, "s3://bucket", URI{Bucket: "bucket"}.String())
}

// fakeS3 records calls and serves objects from a map.
type fakeS3 struct {
	objects map[string][]byte

	putKey     string
	putBody    []byte
	deleted    []string
	headBucket string
	listPages  int
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &noSuchKeyError{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putKey = aws.ToString(params.Key)
	f.putBody, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(_ context.Context, params *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	f.headBucket = aws.ToString(params.Bucket)
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.listPages++
	out := &s3.ListObjectsV2Output{}
	prefix := aws.ToString(params.Prefix)
	for key := range f.objects {
		if len(prefix) == 0 || (len(key) >= len(prefix) && key[:len(prefix)] == prefix) {
			out.Contents = append(out.Contents, s3types.Object{Key: aws.String(key)})
		}
	}
	return out, nil
}

func (f *fakeS3) DeleteObjects(_ context.Context, params *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	for _, obj := range params.Delete.Objects {
		f.deleted = append(f.deleted, aws.ToString(obj.Key))
		delete(f.objects, aws.ToString(obj.Key))
	}
	return &s3.DeleteObjectsOutput{}, nil
}

type noSuchKeyError struct{}

func (e *noSuchKeyError) Error() string     { return "NoSuchKey" }
func (e *noSuchKeyError) ErrorCode() string { return "NoSuchKey" }

func TestStore_ReadJSON(t *testing.T) {
	t.Setenv("BDACTL_CACHE_DIR", t.TempDir())

	fake := &fakeS3{objects: map[string][]byte{
		"output/job-1/job_metadata.json": []byte(`{"job_id": "abc123"}`),
	}}
	store := New(fake)

	var doc struct {
		JobID string `json:"job_id"`
	}
	uri := URI{Bucket: "bucket", Key: "output/job-1/job_metadata.json"}

	require.NoError(t, store.ReadJSON(context.Background(), uri, &doc))
	assert.Equal(t, "abc123", doc.JobID)

	// Second read should come from the cache even after the object vanishes.
	delete(fake.objects, uri.Key)
	doc.JobID = ""
	require.NoError(t, store.ReadJSON(context.Background(), uri, &doc))
	assert.Equal(t, "abc123", doc.JobID)
}

func TestStore_Read_Missing(t *testing.T) {
	store := New(&fakeS3{objects: map[string][]byte{}})

	_, err := store.Read(context.Background(), URI{Bucket: "bucket", Key: "nope"})
	assert.ErrorContains(t, err, "failed to read")
}

func TestStore_Upload(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "video.mp4")
	require.NoError(t, os.WriteFile(local, []byte("not really a video"), 0o644))

	fake := &fakeS3{}
	store := New(fake)

	uri := URI{Bucket: "bucket", Key: "media/video.mp4"}
	require.NoError(t, store.Upload(context.Background(), local, uri))

	assert.Equal(t, "media/video.mp4", fake.putKey)
	assert.Equal(t, []byte("not really a video"), fake.putBody)

	assert.Error(t, store.Upload(context.Background(), filepath.Join(dir, "missing.mp4"), uri))
}

func TestStore_EnsureBucket(t *testing.T) {
	fake := &fakeS3{}
	store := New(fake)

	require.NoError(t, store.EnsureBucket(context.Background(), "bda-workshop-bucket"))
	assert.Equal(t, "bda-workshop-bucket", fake.headBucket)
}

func TestStore_DeletePrefix(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{
		"output/job-1/job_metadata.json":            []byte("{}"),
		"output/job-1/0/standard_output/result.json": []byte("{}"),
		"output/job-2/job_metadata.json":            []byte("{}"),
	}}
	store := New(fake)

	deleted, err := store.DeletePrefix(context.Background(), URI{Bucket: "bucket", Key: "output/job-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Len(t, fake.objects, 1)
	assert.Contains(t, fake.objects, "output/job-2/job_metadata.json")
}
