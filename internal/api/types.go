// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package api

// RunRequest for POST /run. Either a whole command line or an argv array;
// exactly one of the two must be set. The command-line form splits on
// whitespace and cannot express arguments containing spaces.
type RunRequest struct {
	CommandLine string   `json:"command_line,omitempty"`
	Args        []string `json:"args,omitempty"`
}

// ErrorResponse for API errors
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
