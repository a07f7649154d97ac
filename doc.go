// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// bdactl is the main package for the bdactl command line tool. It drives
// Amazon Bedrock Data Automation media workflows: projects, blueprints,
// async invocations, and result retrieval.
package main
