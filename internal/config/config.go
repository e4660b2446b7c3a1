// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	FFmpeg FFmpegConfig `yaml:"ffmpeg"`
	Paths  PathsConfig  `yaml:"paths"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Bind string `yaml:"bind"`
}

// FFmpegConfig FFmpeg 配置
type FFmpegConfig struct {
	Path     string `yaml:"path"`
	LogLines int    `yaml:"log_lines"`
}

// PathsConfig overrides the bundle/document roots. Empty fields fall back to
// the host defaults at startup.
type PathsConfig struct {
	Bundle   string `yaml:"bundle"`
	Document string `yaml:"document"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{Bind: ":8080"},
		FFmpeg: FFmpegConfig{Path: "ffmpeg", LogLines: 100},
	}
}

// Load 从 YAML 文件加载配置
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// 填充空值
	if cfg.Server.Bind == "" {
		cfg.Server.Bind = ":8080"
	}
	if cfg.FFmpeg.Path == "" {
		cfg.FFmpeg.Path = "ffmpeg"
	}
	if cfg.FFmpeg.LogLines <= 0 {
		cfg.FFmpeg.LogLines = 100
	}

	return cfg, nil
}
