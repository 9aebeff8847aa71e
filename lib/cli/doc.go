// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the command-line plumbing shared by the
// voter-lookup binary: categorized errors that carry an optional
// hint, the process exit code each error maps to, and the stderr
// logger for non-interactive runs.
//
// A command returns a [*ToolError] built with one of the category
// constructors; main prints it and exits with [ExitCode]. Commands
// that have already written their own output return [*ExitError] to
// set the exit status without a second message.
package cli
