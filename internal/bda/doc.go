// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package bda wraps the Bedrock Data Automation control and runtime APIs.
// Projects and blueprints are managed through the control surface; media jobs
// are started and polled through the runtime surface.
package bda
