package slog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// NewLogger builds the CLI logger for the given -v count:
//
//	0: plain messages at info level
//	1: timestamped text records at info level
//	2+: timestamped text records at debug level
func NewLogger(w io.Writer, verbosity int) *slog.Logger {
	if verbosity == 0 {
		return slog.New(NewPlainHandler(w, slog.LevelInfo))
	}
	level := slog.LevelInfo
	if verbosity >= 2 {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Ensure PlainHandler implements slog.Handler at compile time.
var _ slog.Handler = (*PlainHandler)(nil)

// PlainHandler writes bare log messages, one per line, with a level prefix
// for warnings and errors only. It is the default CLI output: the message
// is the product, not a diagnostic record.
type PlainHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
}

// NewPlainHandler creates a PlainHandler writing to w at the given level.
func NewPlainHandler(w io.Writer, level slog.Level) *PlainHandler {
	return &PlainHandler{mu: &sync.Mutex{}, w: w, level: level}
}

// Enabled implements slog.Handler.
func (h *PlainHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle implements slog.Handler.
func (h *PlainHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if r.Level >= slog.LevelWarn {
		b.WriteString(strings.ToLower(r.Level.String()))
		b.WriteString(": ")
	}
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs implements slog.Handler.
func (h *PlainHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PlainHandler{mu: h.mu, w: h.w, level: h.level, attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)}
}

// WithGroup implements slog.Handler. Groups are not rendered; the plain
// output is flat.
func (h *PlainHandler) WithGroup(string) slog.Handler {
	return h
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	fmt.Fprintf(b, " %s=%v", a.Key, a.Value.Resolve().Any())
}
