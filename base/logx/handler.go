// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored according to the terminal profile.
// Records below [UserLevel] are dropped.
type Handler struct {
	out   *termenv.Output
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

// NewHandler returns a new [Handler] writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{out: termenv.NewOutput(w), mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// levelColor returns the hex color used for the given level.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "#ef4444"
	case level >= slog.LevelWarn:
		return "#f59e0b"
	case level >= slog.LevelInfo:
		return "#3b82f6"
	default:
		return "#9ca3af"
	}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	lvl := h.out.String(fmt.Sprintf("%-5s", r.Level.String())).Foreground(h.out.Color(levelColor(r.Level))).Bold()
	sb.WriteString(lvl.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		h.appendAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	sb.WriteByte(' ')
	sb.WriteString(h.out.String(key + "=").Faint().String())
	sb.WriteString(a.Value.Resolve().String())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if nh.group != "" {
		nh.group += "." + name
	} else {
		nh.group = name
	}
	return &nh
}
