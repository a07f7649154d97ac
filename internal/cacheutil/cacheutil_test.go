// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package cacheutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteRoundTrip(t *testing.T) {
	t.Setenv("BDACTL_CACHE_DIR", t.TempDir())
	t.Setenv("BDACTL_CACHE", "")

	subdirs := []string{"us-west-2", "results"}
	key := "s3://bucket/prefix/job_metadata.json"
	payload := []byte(`{"job_id":"abc123"}`)

	_, ok := Read(subdirs, key)
	assert.False(t, ok, "entry should not exist yet")

	assert.NoError(t, Write(subdirs, key, payload))

	entry, ok := Read(subdirs, key)
	assert.True(t, ok)
	assert.Equal(t, key, entry.Key)
	assert.Equal(t, payload, entry.Data)
	assert.NotEqual(t, key, entry.EncodedKey, "key should be hashed on disk")
}

func TestDisabled(t *testing.T) {
	t.Setenv("BDACTL_CACHE_DIR", t.TempDir())
	t.Setenv("BDACTL_CACHE", "0")

	assert.False(t, Enabled())
	assert.NoError(t, Write(nil, "key", []byte("data")))

	_, ok := Read(nil, "key")
	assert.False(t, ok, "reads should miss when the cache is disabled")
}

func TestPurgeNoop(t *testing.T) {
	t.Setenv("BDACTL_CACHE_DIR", t.TempDir())
	assert.NoError(t, Purge(0))
	assert.NoError(t, Purge(-1))
}
