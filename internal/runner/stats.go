// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package runner

import (
	"context"
	"sync"
	"time"

	gopsutilprocess "github.com/shirou/gopsutil/v3/process"
)

// Usage holds the peak resource usage observed during one run.
type Usage struct {
	PeakCPU    float64 `json:"peak_cpu_percent"`
	PeakMemory uint64  `json:"peak_memory_bytes"`
}

// sampler 使用 gopsutil 采集子进程 CPU 和内存峰值
type sampler struct {
	mu    sync.Mutex
	usage Usage
}

// watch polls the process until ctx is cancelled or the process is gone.
func (s *sampler) watch(ctx context.Context, pid int) {
	proc, err := gopsutilprocess.NewProcess(int32(pid))
	if err != nil {
		return
	}

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cpu, err := proc.CPUPercent()
			if err != nil {
				return
			}
			var rss uint64
			if memInfo, err := proc.MemoryInfo(); err == nil && memInfo != nil {
				rss = memInfo.RSS
			}

			s.mu.Lock()
			if cpu > s.usage.PeakCPU {
				s.usage.PeakCPU = cpu
			}
			if rss > s.usage.PeakMemory {
				s.usage.PeakMemory = rss
			}
			s.mu.Unlock()
		}
	}
}

func (s *sampler) peak() Usage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usage
}
