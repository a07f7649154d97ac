// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package driller traverses JSON documents (job metadata, standard and custom
// result output) to extract values for the output pipeline.
package driller
