// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdmiao/ffmpegtool/internal/token"
)

// writeStub drops an executable shell script into a temp dir and returns its
// path. Tests substitute it for the real ffmpeg binary.
func writeStub(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools are shell scripts")
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func newRunner(t *testing.T) *Runner {
	t.Helper()
	r, err := New(Config{})
	require.NoError(t, err)
	return r
}

func TestRunArgsEmpty(t *testing.T) {
	r := newRunner(t)

	_, err := r.RunArgs(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, err = r.RunArgs(context.Background(), []string{})
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestRunCommandLineEmpty(t *testing.T) {
	r := newRunner(t)

	_, err := r.RunCommandLine(context.Background(), "   \t  ")
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestRunArgsPassesArgvDiscretely(t *testing.T) {
	out := filepath.Join(t.TempDir(), "args.txt")
	stub := writeStub(t, "stubtool", fmt.Sprintf(`printf '%%s\n' "$@" > %s`, out))
	r := newRunner(t)

	argv := []string{stub, "-i", "a b.mp4", "-vf", "scale=320:240", "out.mkv"}
	result, err := r.RunArgs(context.Background(), argv)
	require.NoError(t, err)
	assert.Equal(t, argv, result.Argv)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// Arguments stay discrete; "a b.mp4" must arrive as one argument.
	assert.Equal(t, []string{"-i", "a b.mp4", "-vf", "scale=320:240", "out.mkv"},
		strings.Split(strings.TrimRight(string(data), "\n"), "\n"))
}

func TestRunCommandLineSplitsOnWhitespace(t *testing.T) {
	out := filepath.Join(t.TempDir(), "args.txt")
	stub := writeStub(t, "stubtool", fmt.Sprintf(`printf '%%s\n' "$@" > %s`, out))
	r := newRunner(t)

	result, err := r.RunCommandLine(context.Background(), stub+" -i a.mp4  b.mkv")
	require.NoError(t, err)
	assert.Equal(t, []string{stub, "-i", "a.mp4", "b.mkv"}, result.Argv)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"-i", "a.mp4", "b.mkv"},
		strings.Split(strings.TrimRight(string(data), "\n"), "\n"))
}

func TestRunTokens(t *testing.T) {
	out := filepath.Join(t.TempDir(), "args.txt")
	stub := writeStub(t, "stubtool", fmt.Sprintf(`printf '%%s\n' "$@" > %s`, out))
	r := newRunner(t)

	tokens := []token.Token{
		token.FromLiteral(stub),
		token.I,
		token.FromLiteral("a.mp4"),
		token.ACodec,
		token.Copy,
		token.FromLiteral("b.aac"),
	}
	result, err := r.RunTokens(context.Background(), tokens)
	require.NoError(t, err)
	require.Len(t, result.Argv, len(tokens))
	for i, tok := range tokens {
		assert.Equal(t, tok.Value(), result.Argv[i])
	}
}

func TestRunExitZero(t *testing.T) {
	stub := writeStub(t, "stubtool", "exit 0")
	r := newRunner(t)

	_, err := r.RunArgs(context.Background(), []string{stub})
	assert.NoError(t, err)
}

func TestRunExitNonZero(t *testing.T) {
	stub := writeStub(t, "stubtool", `echo "boom" >&2; exit 1`)
	r := newRunner(t)

	result, err := r.RunArgs(context.Background(), []string{stub})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Tail, "boom")
	assert.Contains(t, result.Tail, "boom")
}

func TestRunSpawnError(t *testing.T) {
	r := newRunner(t)

	_, err := r.RunArgs(context.Background(), []string{"/nonexistent/ffmpeg-xyz"})
	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, "/nonexistent/ffmpeg-xyz", spawnErr.Binary)
}

func TestRunStderrTailBounded(t *testing.T) {
	stub := writeStub(t, "stubtool", `i=0; while [ $i -lt 20 ]; do echo "line $i" >&2; i=$((i+1)); done; exit 1`)
	r, err := New(Config{LogLines: 5})
	require.NoError(t, err)

	result, runErr := r.RunArgs(context.Background(), []string{stub})
	require.Error(t, runErr)
	require.Len(t, result.Tail, 5)
	assert.Equal(t, "line 19", result.Tail[4])
}

func TestRunContextCancel(t *testing.T) {
	stub := writeStub(t, "stubtool", "sleep 10")
	r := newRunner(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.RunArgs(ctx, []string{stub})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNewResolvesBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh in PATH")
	}

	r, err := New(Config{Binary: "sh"})
	require.NoError(t, err)
	assert.NotEqual(t, "sh", r.binary, "binary should be resolved to an absolute path")

	_, err = New(Config{Binary: "nonexistent-tool-xyz"})
	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
}

func TestConcurrentRuns(t *testing.T) {
	stub := writeStub(t, "stubtool", "exit 0")
	r := newRunner(t)

	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			_, err := r.RunArgs(context.Background(), []string{stub})
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-errs)
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	var spawnErr *SpawnError
	var exitErr *ExitError

	err := error(&ExitError{Binary: "ffmpeg", Code: 2})
	assert.False(t, errors.As(err, &spawnErr))
	assert.True(t, errors.As(err, &exitErr))
	assert.False(t, errors.Is(err, ErrEmptyCommand))
}
