// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package main

import (
	"flag"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fdmiao/ffmpegtool/internal/api"
	"github.com/fdmiao/ffmpegtool/internal/config"
	"github.com/fdmiao/ffmpegtool/internal/history"
	"github.com/fdmiao/ffmpegtool/internal/logger"
	"github.com/fdmiao/ffmpegtool/internal/runner"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	bind := flag.String("bind", "", "Bind address (overrides config)")
	ffmpegBin := flag.String("ffmpeg", "", "FFmpeg binary path (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Load config: %v", err)
		}
	}

	bindAddr := cfg.Server.Bind
	if *bind != "" {
		bindAddr = *bind
	}
	ffmpegPath := cfg.FFmpeg.Path
	if *ffmpegBin != "" {
		ffmpegPath = *ffmpegBin
	}

	logger := logger.New("ffmpegtool")

	run, err := runner.New(runner.Config{
		Binary:   ffmpegPath,
		LogLines: cfg.FFmpeg.LogLines,
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("FFmpeg init: %v", err)
	}

	store := history.NewStore(run, logger)
	handler := api.NewHandler(store, run)

	r := gin.Default()
	r.Use(gin.Recovery(), cors.Default())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/run", handler.Run)
		v1.GET("/runs", handler.ListRuns)
		v1.GET("/runs/:id", handler.GetRun)
		v1.DELETE("/runs/:id", handler.DeleteRun)
		v1.GET("/version", handler.GetVersion)
	}

	log.Printf("FFmpegTool listening on %s", bindAddr)
	if err := r.Run(bindAddr); err != nil {
		log.Fatalf("Server: %v", err)
	}
}
