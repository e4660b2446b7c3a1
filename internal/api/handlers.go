// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fdmiao/ffmpegtool/internal/history"
	"github.com/fdmiao/ffmpegtool/internal/runner"
)

// Handler holds dependencies
type Handler struct {
	store  history.Store
	runner *runner.Runner
}

// NewHandler creates API handler
func NewHandler(store history.Store, r *runner.Runner) *Handler {
	return &Handler{store: store, runner: r}
}

func errResp(c *gin.Context, code int, msg, detail string) {
	c.JSON(code, ErrorResponse{Code: code, Message: msg, Detail: detail})
}

// Run POST /api/v1/run
//
// Runs synchronously; the response carries the completed record. A failed
// run is still a recorded run, so tool failures answer 200 with the record's
// state set to failed rather than an API error.
func (h *Handler) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp(c, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	if req.CommandLine != "" && len(req.Args) > 0 {
		errResp(c, http.StatusBadRequest, "Use either command_line or args, not both", "")
		return
	}

	argv := req.Args
	if req.CommandLine != "" {
		argv = strings.Fields(req.CommandLine)
	}

	rec, err := h.store.Run(c.Request.Context(), argv)
	if err != nil {
		if errors.Is(err, runner.ErrEmptyCommand) {
			errResp(c, http.StatusBadRequest, "Empty command", err.Error())
			return
		}
		var spawnErr *runner.SpawnError
		if errors.As(err, &spawnErr) {
			errResp(c, http.StatusUnprocessableEntity, "Can't spawn tool", err.Error())
			return
		}
		// 非零退出码也返回记录
		c.JSON(http.StatusOK, rec)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ListRuns GET /api/v1/runs
func (h *Handler) ListRuns(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

// GetRun GET /api/v1/runs/:id
func (h *Handler) GetRun(c *gin.Context) {
	rec, err := h.store.Get(c.Param("id"))
	if err != nil {
		errResp(c, http.StatusNotFound, "Unknown run ID", err.Error())
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteRun DELETE /api/v1/runs/:id
func (h *Handler) DeleteRun(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		errResp(c, http.StatusNotFound, "Unknown run ID", err.Error())
		return
	}
	c.JSON(http.StatusOK, "OK")
}

// GetVersion GET /api/v1/version
func (h *Handler) GetVersion(c *gin.Context) {
	v, err := h.runner.Version()
	if err != nil {
		errResp(c, http.StatusServiceUnavailable, "FFmpeg not available", err.Error())
		return
	}
	c.JSON(http.StatusOK, v)
}
