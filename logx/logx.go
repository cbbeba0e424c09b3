// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger, which colors
// level names on terminals and shows messages at the verbosity level
// set by the -v, -vv and -q flags of the cli package.
package logx

import (
	"io"
	"log/slog"
	"os"

	clogx "cogentcore.org/core/base/logx"
	"github.com/muesli/termenv"
)

// NewHandler returns a text handler writing to w at the user level,
// with level names colored for the terminal profile of w.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: clogx.UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lv))
			return a
		},
	})
}

// LevelString returns the name of the level styled for the output.
func LevelString(out *termenv.Output, lv slog.Level) string {
	st := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		st = st.Foreground(out.Color("1")).Bold()
	case lv >= slog.LevelWarn:
		st = st.Foreground(out.Color("3"))
	case lv >= slog.LevelInfo:
		st = st.Foreground(out.Color("4"))
	default:
		st = st.Foreground(out.Color("8"))
	}
	return st.String()
}

// SetDefaultLogger sets the default [slog] logger to one writing
// to stderr at the user level.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
