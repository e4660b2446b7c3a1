// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

// Package runner spawns the external FFmpeg tool. Three entry points, one
// underlying operation: run this argv list and report the result. Every run
// is synchronous and independent; the caller's flow blocks for the child's
// full lifetime and process isolation is the only isolation.
package runner

import (
	"bufio"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fdmiao/ffmpegtool/internal/logger"
	"github.com/fdmiao/ffmpegtool/internal/token"
)

// Config for a Runner.
type Config struct {
	// Binary is the FFmpeg executable. When set it is resolved via the
	// search path at construction and substituted for a matching bare
	// program name in argv[0]. May be left empty for argv-only use.
	Binary string

	// LogLines bounds the captured stderr tail. Defaults to 100.
	LogLines int

	Logger logger.Logger
}

// Result of one completed run. The tool's side effect on disk is the real
// outcome; this only reports how the run went.
type Result struct {
	Argv     []string      `json:"argv"`
	Duration time.Duration `json:"duration_ns"`
	Tail     []string      `json:"stderr_tail,omitempty"`
	Usage    Usage         `json:"usage"`
}

// Runner invokes the external tool.
type Runner struct {
	binary   string
	logLines int
	logger   logger.Logger
}

// New creates a Runner. A non-empty Binary is resolved immediately so that a
// missing executable surfaces here rather than on the first run.
func New(config Config) (*Runner, error) {
	r := &Runner{
		binary:   config.Binary,
		logLines: config.LogLines,
		logger:   config.Logger,
	}

	if r.logLines <= 0 {
		r.logLines = 100
	}
	if r.logger == nil {
		r.logger = logger.Nop()
	}

	if config.Binary != "" {
		binary, err := exec.LookPath(config.Binary)
		if err != nil {
			return nil, &SpawnError{Binary: config.Binary, Err: err}
		}
		r.binary = binary
	}

	return r, nil
}

// RunCommandLine splits text on whitespace into the tool name and its
// arguments and runs the result.
//
// Be careful with paths containing spaces - 注意文件路径与空格: an argument
// value containing literal whitespace cannot be expressed through this entry
// point; use RunTokens or RunArgs instead. This is a documented limitation
// of the command-string form, not something that is quietly worked around.
//
//	runner.RunCommandLine(ctx, "ffmpeg -i inputVideo.MP4 outputVideo.mkv")
func (r *Runner) RunCommandLine(ctx context.Context, text string) (Result, error) {
	return r.run(ctx, strings.Fields(text))
}

// RunTokens maps each token to its literal value, in order, and runs the
// resulting argv list.
//
//	runner.RunTokens(ctx, []token.Token{token.FFmpeg, token.I, input, output})
func (r *Runner) RunTokens(ctx context.Context, tokens []token.Token) (Result, error) {
	return r.run(ctx, token.Values(tokens))
}

// RunArgs treats argv verbatim as the tool name and its arguments.
func (r *Runner) RunArgs(ctx context.Context, argv []string) (Result, error) {
	return r.run(ctx, argv)
}

func (r *Runner) run(ctx context.Context, argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, ErrEmptyCommand
	}

	name := argv[0]
	var path string
	if r.binary != "" && name == filepath.Base(r.binary) {
		path = r.binary
	} else {
		p, err := exec.LookPath(name)
		if err != nil {
			return Result{}, &SpawnError{Binary: name, Err: err}
		}
		path = p
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, &SpawnError{Binary: name, Err: err}
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Result{}, &SpawnError{Binary: name, Err: err}
	}
	r.logger.Debug("spawned %s (pid %d)", name, cmd.Process.Pid)

	sample := &sampler{}
	sampleCtx, stopSampling := context.WithCancel(ctx)
	go sample.watch(sampleCtx, cmd.Process.Pid)

	t := newTail(r.logLines)
	scanner := bufio.NewScanner(stderr)
	scanner.Split(scanLine)
	for scanner.Scan() {
		t.Write(scanner.Text())
	}

	waitErr := cmd.Wait()
	stopSampling()

	result := Result{
		Argv:     argv,
		Duration: time.Since(start),
		Tail:     t.Lines(),
		Usage:    sample.peak(),
	}

	if waitErr != nil {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			r.logger.Debug("%s exited with code %d", name, exitErr.ExitCode())
			return result, &ExitError{Binary: name, Code: exitErr.ExitCode(), Tail: result.Tail}
		}
		return result, &SpawnError{Binary: name, Err: waitErr}
	}

	r.logger.Debug("%s finished in %s", name, result.Duration)
	return result, nil
}

// scanLine splits on both \n and \r so that FFmpeg's carriage-return
// progress updates come through as individual lines.
func scanLine(data []byte, atEOF bool) (advance int, tok []byte, err error) {
	start := 0
	for start < len(data) {
		r, w := utf8.DecodeRune(data[start:])
		if r != '\n' && r != '\r' {
			break
		}
		start += w
	}

	for i := start; i < len(data); {
		r, w := utf8.DecodeRune(data[i:])
		if r == '\n' || r == '\r' {
			return i + w, data[start:i], nil
		}
		i += w
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
