// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package runner

import (
	"container/ring"
	"sync"
)

// tail keeps the last n lines written to it.
type tail struct {
	mu    sync.Mutex
	lines *ring.Ring
}

func newTail(n int) *tail {
	if n <= 0 {
		n = 100
	}
	return &tail{lines: ring.New(n)}
}

func (t *tail) Write(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines.Value = line
	t.lines = t.lines.Next()
}

func (t *tail) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []string
	t.lines.Do(func(v interface{}) {
		if v != nil {
			out = append(out, v.(string))
		}
	})
	return out
}
