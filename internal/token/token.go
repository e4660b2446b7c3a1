// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

// Package token models single FFmpeg command-line fragments. A fragment is a
// flag name, a codec/format literal or a file path; an ordered slice of Token
// is one invocation's argument list, positional pairing included.
package token

// Token wraps one immutable command-line fragment.
type Token struct {
	value string
}

// FromLiteral wraps text verbatim. No validation is performed; any string,
// the empty string included, is accepted.
//
//	setpts := token.FromLiteral("setpts=0.5*PTS")
//	timer := token.FromLiteral("00:00:03")
//	bit := token.FromLiteral("320k")
func FromLiteral(text string) Token {
	return Token{value: text}
}

// Value returns the wrapped fragment.
func (t Token) Value() string {
	return t.value
}

func (t Token) String() string {
	return t.value
}

// Values maps an ordered token list to its argv form. Order is preserved
// exactly as supplied.
func Values(tokens []Token) []string {
	argv := make([]string, len(tokens))
	for i, t := range tokens {
		argv[i] = t.value
	}
	return argv
}
