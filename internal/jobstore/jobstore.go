// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package jobstore records submitted invocations locally so later commands
// can refer to them by relative spec (JOB~0 is the most recent) or ARN
// prefix instead of a full invocation ARN.
package jobstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is one submitted job.
type Record struct {
	InvocationARN string     `json:"invocationArn"`
	ProjectARN    string     `json:"projectArn"`
	ProjectName   string     `json:"projectName,omitempty"`
	Stage         string     `json:"stage"`
	InputURI      string     `json:"inputUri"`
	OutputURI     string     `json:"outputUri"`
	MetadataURI   string     `json:"metadataUri,omitempty"`
	Status        string     `json:"status"`
	SubmittedAt   time.Time  `json:"submittedAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// ID returns the invocation id, the last segment of the ARN.
func (r Record) ID() string {
	parts := strings.Split(r.InvocationARN, "/")
	return parts[len(parts)-1]
}

// Dir resolves the job store location. BDACTL_JOBS_DIR wins; the default
// lives next to the response cache.
func Dir() (string, error) {
	if dir, ok := os.LookupEnv("BDACTL_JOBS_DIR"); ok && dir != "" {
		return dir, nil
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "bdactl", "jobs"), nil
}

// Save writes or rewrites the record.
func Save(r Record) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, r.ID()+".json")
	log.Debugf("saving job record: %s", path)
	return os.WriteFile(path, data, 0o644)
}

// List returns all records, newest first.
func List() ([]Record, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	//nolint:prealloc
	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		var r Record
		if err := json.Unmarshal(data, &r); err != nil {
			log.Errorf("skipping unreadable job record %s: %v", entry.Name(), err)
			continue
		}
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].SubmittedAt.After(records[j].SubmittedAt)
	})

	return records, nil
}

// Find resolves a job spec to a record. A spec could be -
//
//	empty  - the most recent job.
//	JOB~1  - the job one before the most recent.
//	-1     - same, as a bare relative index.
//	arn    - an invocation ARN, or any unique prefix of one.
//	id     - an invocation id, or any unique prefix of one.
func Find(spec string) (Record, error) {
	records, err := List()
	if err != nil {
		return Record{}, err
	}
	if len(records) == 0 {
		return Record{}, fmt.Errorf("no jobs have been submitted yet")
	}

	index := 0
	switch {
	case spec == "" || strings.EqualFold(spec, "JOB~0"):
	case strings.HasPrefix(strings.ToUpper(spec), "JOB~"):
		index, _ = strconv.Atoi(spec[len("JOB~"):])
	default:
		if i, err := strconv.Atoi(spec); err == nil && i <= 0 {
			index = -i
			break
		}

		// It's an ARN, id, or a prefix of either. A prefix match returns the
		// newest matching record.
		for _, r := range records {
			if strings.HasPrefix(r.InvocationARN, spec) || strings.HasPrefix(r.ID(), spec) {
				return r, nil
			}
		}
		return Record{}, fmt.Errorf("no job matches %q", spec)
	}

	if index < 0 || index > len(records)-1 {
		return Record{}, fmt.Errorf("job index %d out of range, %d jobs recorded", index, len(records))
	}

	return records[index], nil
}

// Remove deletes the record for an invocation.
func Remove(invocationARN string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	id := Record{InvocationARN: invocationARN}.ID()
	err = os.Remove(filepath.Join(dir, id+".json"))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
