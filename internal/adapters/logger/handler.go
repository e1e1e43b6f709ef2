package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/swu/internal/ui/output"
	"go.trai.ch/swu/internal/ui/style"
)

// PrettyHandler is a slog.Handler that prints one colored line per record.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// bound holds the attributes of WithAttrs, already qualified and formatted.
	bound []string
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	color := style.Slate

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + msg
		color = style.Red
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + msg
		color = style.Yellow
	}

	attrParts := append(make([]string, 0, len(h.bound)+r.NumAttrs()), h.bound...)
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})
	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	_, err := h.out.WriteString(output.Paint(h.out, msg, string(color)) + "\n")
	return err
}

// WithAttrs returns a Handler with attrs appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := make([]string, 0, len(h.bound)+len(attrs))
	bound = append(bound, h.bound...)
	for _, attr := range attrs {
		bound = append(bound, formatAttr(h.group, attr))
	}

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		bound: bound,
		group: h.group,
	}
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
// Groups nest: WithGroup("a").WithGroup("b") yields keys like "a.b.key".
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	group := name
	if h.group != "" {
		group = h.group + "." + name
	}

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		bound: h.bound,
		group: group,
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
