// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own output.
//
// The one-shot search uses it to exit 1 when nothing matches, the way
// grep does.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitCode returns the process exit status for err: 0 for nil, the
// code of the first error in the chain that exposes ExitCode(), and 1
// otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return exitFailure
}

// Silent reports whether err has already been reported to the user,
// so main should exit without printing it.
func Silent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}
