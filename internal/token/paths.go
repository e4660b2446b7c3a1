// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package token

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathResolution means a named root directory could not be resolved.
var ErrPathResolution = errors.New("path root could not be resolved")

// Roots holds the two base directories path tokens are resolved against:
// the read-only resource bundle of the application and the user-writable
// document directory. 注意文件路径 - both are consumed read-only.
type Roots struct {
	BundleDir   string
	DocumentDir string
}

// DefaultRoots resolves the bundle root to the running executable's directory
// and the document root to the user's Documents directory.
func DefaultRoots() (Roots, error) {
	exe, err := os.Executable()
	if err != nil {
		return Roots{}, fmt.Errorf("%w: executable directory: %v", ErrPathResolution, err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Roots{}, fmt.Errorf("%w: home directory: %v", ErrPathResolution, err)
	}
	return Roots{
		BundleDir:   filepath.Dir(exe),
		DocumentDir: filepath.Join(home, "Documents"),
	}, nil
}

// Bundle returns a token for fileName resolved against the bundle root.
func (r Roots) Bundle(fileName string) (Token, error) {
	if r.BundleDir == "" {
		return Token{}, fmt.Errorf("%w: bundle root is empty", ErrPathResolution)
	}
	return FromLiteral(filepath.Join(r.BundleDir, fileName)), nil
}

// Document returns a token for fileName resolved against the document root.
func (r Roots) Document(fileName string) (Token, error) {
	if r.DocumentDir == "" {
		return Token{}, fmt.Errorf("%w: document root is empty", ErrPathResolution)
	}
	return FromLiteral(filepath.Join(r.DocumentDir, fileName)), nil
}
