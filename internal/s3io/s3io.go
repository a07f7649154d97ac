// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package s3io handles the S3 traffic around data automation jobs: media
// uploads, result document reads and output folder cleanup.
package s3io

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	jsoniter "github.com/json-iterator/go"

	"github.com/eddieramirez/bdactl/internal/awsx"
	"github.com/eddieramirez/bdactl/internal/cacheutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// URI is a parsed s3://bucket/key location.
type URI struct {
	Bucket string
	Key    string
}

// ParseURI parses an s3:// URI. The key may be empty when the URI names a
// bucket root.
func ParseURI(raw string) (URI, error) {
	if !strings.HasPrefix(raw, "s3://") {
		return URI{}, fmt.Errorf("not an s3 uri: %s", raw)
	}

	rest := strings.TrimPrefix(raw, "s3://")
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return URI{}, fmt.Errorf("not an s3 uri: %s", raw)
	}

	return URI{Bucket: bucket, Key: key}, nil
}

// Join returns a URI with elements appended to the key.
func (u URI) Join(elem ...string) URI {
	parts := append([]string{u.Key}, elem...)
	return URI{Bucket: u.Bucket, Key: path.Join(parts...)}
}

// Dir returns the URI of the folder containing the key.
func (u URI) Dir() URI {
	return URI{Bucket: u.Bucket, Key: path.Dir(u.Key)}
}

func (u URI) String() string {
	if u.Key == "" {
		return "s3://" + u.Bucket
	}
	return fmt.Sprintf("s3://%s/%s", u.Bucket, u.Key)
}

// S3API is the slice of the S3 client the store uses.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// Store wraps an S3 client with job-oriented operations.
type Store struct {
	Client S3API
}

func New(client S3API) *Store {
	return &Store{Client: client}
}

// EnsureBucket verifies the bucket exists and is reachable with the active
// credentials.
func (s *Store) EnsureBucket(ctx context.Context, bucket string) error {
	_, err := s.Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	return awsx.FriendlyAPI(err, awsx.ErrorContext{
		Operation: "head",
		Resource:  "bucket " + bucket,
	})
}

// Read fetches an object body.
func (s *Store) Read(ctx context.Context, uri URI) ([]byte, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(uri.Bucket),
		Key:    aws.String(uri.Key),
	})
	if err != nil {
		return nil, awsx.FriendlyAPI(err, awsx.ErrorContext{
			Operation: "read",
			Resource:  uri.String(),
		})
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// ReadJSON fetches an object and unmarshals it. Result documents are
// immutable once a job finishes, so bodies are cached by URI.
func (s *Store) ReadJSON(ctx context.Context, uri URI, v any) error {
	if entry, ok := cacheutil.Read([]string{"results", uri.Bucket}, uri.String()); ok {
		log.Debugf("cache hit: %s", uri)
		return json.Unmarshal(entry.Data, v)
	}

	data, err := s.Read(ctx, uri)
	if err != nil {
		return err
	}

	if err := cacheutil.Write([]string{"results", uri.Bucket}, uri.String(), data); err != nil {
		log.Debugf("cache write failed: %v", err)
	}

	return json.Unmarshal(data, v)
}

// Upload streams a local file into the bucket.
func (s *Store) Upload(ctx context.Context, localPath string, uri URI) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(uri.Bucket),
		Key:    aws.String(uri.Key),
		Body:   f,
	})
	return awsx.FriendlyAPI(err, awsx.ErrorContext{
		Operation: "upload to",
		Resource:  uri.String(),
	})
}

// deleteBatchSize is the DeleteObjects request limit.
const deleteBatchSize = 1000

// DeletePrefix removes every object under the prefix and returns how many
// were deleted.
func (s *Store) DeletePrefix(ctx context.Context, uri URI) (int, error) {
	prefix := uri.Key
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	deleted := 0
	var token *string
	for {
		page, err := s.Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(uri.Bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return deleted, awsx.FriendlyAPI(err, awsx.ErrorContext{
				Operation: "list",
				Resource:  uri.String(),
			})
		}

		for start := 0; start < len(page.Contents); start += deleteBatchSize {
			end := start + deleteBatchSize
			if end > len(page.Contents) {
				end = len(page.Contents)
			}

			objects := make([]s3types.ObjectIdentifier, 0, end-start)
			for _, obj := range page.Contents[start:end] {
				objects = append(objects, s3types.ObjectIdentifier{Key: obj.Key})
			}

			_, err := s.Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
				Bucket: aws.String(uri.Bucket),
				Delete: &s3types.Delete{
					Objects: objects,
					Quiet:   aws.Bool(true),
				},
			})
			if err != nil {
				return deleted, awsx.FriendlyAPI(err, awsx.ErrorContext{
					Operation: "delete under",
					Resource:  uri.String(),
				})
			}
			deleted += len(objects)
		}

		if page.NextContinuationToken == nil {
			return deleted, nil
		}
		token = page.NextContinuationToken
	}
}
