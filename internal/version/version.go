// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

// Package version carries the build version string.
package version

// Version is set at build time via -ldflags "-X ...version.Version=vX.Y.Z".
var Version = "dev"
