// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package runner

import (
	"errors"
	"fmt"
)

// ErrEmptyCommand means the resulting argv list was empty.
var ErrEmptyCommand = errors.New("empty command: need at least the tool name")

// SpawnError means the external executable could not be started at all,
// typically because it was not found or is not executable.
type SpawnError struct {
	Binary string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("can't spawn %s: %v", e.Binary, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitError means the external tool ran and exited non-zero. Tail holds the
// last captured stderr lines for diagnosis.
type ExitError struct {
	Binary string
	Code   int
	Tail   []string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Binary, e.Code)
}
