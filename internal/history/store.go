// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package history

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/fdmiao/ffmpegtool/internal/logger"
	"github.com/fdmiao/ffmpegtool/internal/runner"

	"github.com/lithammer/shortuuid/v4"
)

// ErrNotFound 运行记录不存在
var ErrNotFound = errors.New("run not found")

// Record states.
const (
	StateFinished = "finished"
	StateFailed   = "failed"
)

// Record is one completed run.
type Record struct {
	ID         string        `json:"id"`
	Argv       []string      `json:"argv"`
	State      string        `json:"state"`
	ExitCode   int           `json:"exit_code"`
	Error      string        `json:"error,omitempty"`
	Tail       []string      `json:"stderr_tail,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Duration   time.Duration `json:"duration_ns"`
	Usage      runner.Usage  `json:"usage"`
}

// Store runs commands and keeps the records in memory.
type Store interface {
	Run(ctx context.Context, argv []string) (*Record, error)
	Get(id string) (*Record, error)
	List() []*Record
	Delete(id string) error
}

type store struct {
	runner *runner.Runner
	logger logger.Logger
	runs   map[string]*Record
	mu     sync.RWMutex
}

// NewStore creates a run history store backed by the given runner.
func NewStore(r *runner.Runner, log logger.Logger) Store {
	if log == nil {
		log = logger.Nop()
	}
	return &store{
		runner: r,
		logger: log,
		runs:   map[string]*Record{},
	}
}

// Run invokes the tool synchronously and records the outcome. The record is
// kept even when the run fails; the error is still propagated so callers see
// the same contract the runner gives them.
func (s *store) Run(ctx context.Context, argv []string) (*Record, error) {
	rec := &Record{
		ID:        shortuuid.New(),
		Argv:      argv,
		StartedAt: time.Now(),
	}

	result, err := s.runner.RunArgs(ctx, argv)

	rec.FinishedAt = time.Now()
	rec.Duration = result.Duration
	rec.Tail = result.Tail
	rec.Usage = result.Usage

	if err != nil {
		rec.State = StateFailed
		rec.Error = err.Error()
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			rec.ExitCode = exitErr.Code
		} else {
			rec.ExitCode = -1
		}
		s.logger.Error("run %s failed: %v", rec.ID, err)
	} else {
		rec.State = StateFinished
		s.logger.Info("run %s finished in %s", rec.ID, rec.Duration)
	}

	// 空命令不入库
	if !errors.Is(err, runner.ErrEmptyCommand) {
		s.mu.Lock()
		s.runs[rec.ID] = rec
		s.mu.Unlock()
	}

	return rec, err
}

func (s *store) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.runs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (s *store) List() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Record, 0, len(s.runs))
	for _, rec := range s.runs {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

func (s *store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[id]; !ok {
		return ErrNotFound
	}
	delete(s.runs, id)
	return nil
}
