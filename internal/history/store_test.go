// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package history

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdmiao/ffmpegtool/internal/runner"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools are shell scripts")
	}
	path := filepath.Join(t.TempDir(), "stubtool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func newStore(t *testing.T) Store {
	t.Helper()
	r, err := runner.New(runner.Config{})
	require.NoError(t, err)
	return NewStore(r, nil)
}

func TestRunRecordsSuccess(t *testing.T) {
	stub := writeStub(t, "exit 0")
	s := newStore(t)

	rec, err := s.Run(context.Background(), []string{stub, "-y"})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, StateFinished, rec.State)
	assert.Equal(t, 0, rec.ExitCode)
	assert.Equal(t, []string{stub, "-y"}, rec.Argv)
	assert.False(t, rec.FinishedAt.Before(rec.StartedAt))

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRunRecordsFailure(t *testing.T) {
	stub := writeStub(t, `echo "conversion failed" >&2; exit 1`)
	s := newStore(t)

	rec, err := s.Run(context.Background(), []string{stub})
	require.Error(t, err)
	assert.Equal(t, StateFailed, rec.State)
	assert.Equal(t, 1, rec.ExitCode)
	assert.Contains(t, rec.Tail, "conversion failed")
	assert.NotEmpty(t, rec.Error)

	// Failed runs are kept too.
	_, getErr := s.Get(rec.ID)
	assert.NoError(t, getErr)
}

func TestRunEmptyCommandNotStored(t *testing.T) {
	s := newStore(t)

	_, err := s.Run(context.Background(), nil)
	assert.ErrorIs(t, err, runner.ErrEmptyCommand)
	assert.Empty(t, s.List())
}

func TestListOrderedByStart(t *testing.T) {
	stub := writeStub(t, "exit 0")
	s := newStore(t)

	first, err := s.Run(context.Background(), []string{stub, "1"})
	require.NoError(t, err)
	second, err := s.Run(context.Background(), []string{stub, "2"})
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestDelete(t *testing.T) {
	stub := writeStub(t, "exit 0")
	s := newStore(t)

	rec, err := s.Run(context.Background(), []string{stub})
	require.NoError(t, err)

	require.NoError(t, s.Delete(rec.ID))
	_, err = s.Get(rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(rec.ID), ErrNotFound)
}

func TestGetUnknown(t *testing.T) {
	s := newStore(t)
	_, err := s.Get("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
