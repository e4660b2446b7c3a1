// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

// fftool runs one FFmpeg command and exits with the tool's status. FFmpeg
// arguments go after "--" so they are not mistaken for fftool's own flags.
// Arguments starting with "@bundle/" or "@document/" are resolved against
// the configured roots before the command is spawned.
//
//	fftool -- -i @bundle/input.mp4 -vn -acodec copy @document/output.aac
//	fftool -c "ffmpeg -i input.mp4 output.mkv"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fdmiao/ffmpegtool/internal/config"
	"github.com/fdmiao/ffmpegtool/internal/runner"
	"github.com/fdmiao/ffmpegtool/internal/token"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	commandLine := flag.String("c", "", "Whole command line, split on whitespace (tool name first)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Load config: %v\n", err)
			os.Exit(1)
		}
	}

	run, err := runner.New(runner.Config{
		Binary:   cfg.FFmpeg.Path,
		LogLines: cfg.FFmpeg.LogLines,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "FFmpeg init: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var result runner.Result
	if *commandLine != "" {
		result, err = run.RunCommandLine(ctx, *commandLine)
	} else {
		args, expandErr := expandPaths(rootsFromConfig(cfg), flag.Args())
		if expandErr != nil {
			fmt.Fprintf(os.Stderr, "%v\n", expandErr)
			os.Exit(1)
		}
		argv := append([]string{cfg.FFmpeg.Path}, args...)
		result, err = run.RunArgs(ctx, argv)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		for _, line := range result.Tail {
			fmt.Fprintln(os.Stderr, line)
		}
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}

	fmt.Printf("done in %s\n", result.Duration)
}

// rootsFromConfig starts from the host defaults and applies overrides from
// the config file. Unresolvable defaults leave the root empty; using the
// prefix then reports the resolution error.
func rootsFromConfig(cfg *config.Config) token.Roots {
	roots, err := token.DefaultRoots()
	if err != nil {
		roots = token.Roots{}
	}
	if cfg.Paths.Bundle != "" {
		roots.BundleDir = cfg.Paths.Bundle
	}
	if cfg.Paths.Document != "" {
		roots.DocumentDir = cfg.Paths.Document
	}
	return roots
}

func expandPaths(roots token.Roots, args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "@bundle/"):
			tok, err := roots.Bundle(strings.TrimPrefix(arg, "@bundle/"))
			if err != nil {
				return nil, err
			}
			out = append(out, tok.Value())
		case strings.HasPrefix(arg, "@document/"):
			tok, err := roots.Document(strings.TrimPrefix(arg, "@document/"))
			if err != nil {
				return nil, err
			}
			out = append(out, tok.Value())
		default:
			out = append(out, arg)
		}
	}
	return out, nil
}
