// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package command wires the bdactl subcommands: queries over projects,
// blueprints and jobs, the submit/watch/results workflow, and cleanup.
package command
