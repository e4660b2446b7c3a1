// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package runner

import (
	"fmt"
	"os/exec"
	"regexp"
)

// Version describes the FFmpeg build behind the configured binary.
type Version struct {
	Version       string `json:"version"`
	Compiler      string `json:"compiler"`
	Configuration string `json:"configuration"`
}

// Version probes the configured binary with -version.
func (r *Runner) Version() (Version, error) {
	if r.binary == "" {
		return Version{}, &SpawnError{Binary: "", Err: fmt.Errorf("no binary configured")}
	}

	cmd := exec.Command(r.binary, "-version")
	cmd.Env = []string{}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return Version{}, &SpawnError{Binary: r.binary, Err: err}
	}

	v := parseVersion(out)
	if v.Version == "" {
		return Version{}, fmt.Errorf("can't parse ffmpeg version")
	}
	return v, nil
}

var (
	reVersion       = regexp.MustCompile(`^ffmpeg version ([0-9]+\.[0-9]+(\.[0-9]+)?)`)
	reCompiler      = regexp.MustCompile(`(?m)^\s*built with (.*)$`)
	reConfiguration = regexp.MustCompile(`(?m)^\s*configuration: (.*)$`)
)

func parseVersion(data []byte) Version {
	v := Version{}

	if m := reVersion.FindSubmatch(data); m != nil {
		v.Version = string(m[1])
		if len(m[2]) == 0 {
			v.Version += ".0"
		}
	}
	if m := reCompiler.FindSubmatch(data); m != nil {
		v.Compiler = string(m[1])
	}
	if m := reConfiguration.FindSubmatch(data); m != nil {
		v.Configuration = string(m[1])
	}
	return v
}
