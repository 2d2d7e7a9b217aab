package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiReset  = "\033[0m"

	noColorEnvVar = "NO_COLOR"
)

// LineHandler writes one short line per record:
//
//	[group] message: key=value key=value
//
// Errors are red and warnings yellow when color is on.
type LineHandler struct {
	w      io.Writer
	level  slog.Leveler
	color  bool
	group  string
	preset string
}

// NewLineHandler logs records at or above level to w. Color is turned on only
// for terminals, unless NO_COLOR is set or TERM is dumb.
func NewLineHandler(w io.Writer, level slog.Leveler) *LineHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &LineHandler{
		w:     w,
		level: level,
		color: colorable(w),
	}
}

func colorable(w io.Writer) bool {
	if os.Getenv(noColorEnvVar) != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if h.group != "" {
		b.WriteString("[" + h.group + "] ")
	}
	b.WriteString(r.Message)

	attrs := h.preset
	r.Attrs(func(a slog.Attr) bool {
		attrs = appendAttr(attrs, a)
		return true
	})
	if attrs != "" {
		b.WriteString(":" + attrs)
	}

	line := b.String()
	if h.color {
		switch {
		case r.Level >= slog.LevelError:
			line = ansiRed + line + ansiReset
		case r.Level >= slog.LevelWarn:
			line = ansiYellow + line + ansiReset
		}
	}

	_, err := io.WriteString(h.w, line+"\n")
	return err
}

// WithAttrs renders attrs once and repeats them on every later line.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := *h
	for _, a := range attrs {
		c.preset = appendAttr(c.preset, a)
	}
	return &c
}

// WithGroup nests name under the current group, e.g. "rec.prompt".
func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	if c.group == "" {
		c.group = name
	} else {
		c.group += "." + name
	}
	return &c
}

func appendAttr(s string, a slog.Attr) string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return s
	}
	return s + " " + a.Key + "=" + a.Value.String()
}

// New returns a logger writing lines to w at the named level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(NewLineHandler(w, Level(level)))
}

// SetDefault installs New(w, level) as the slog default.
func SetDefault(w io.Writer, level string) {
	slog.SetDefault(New(w, level))
}

// Level maps a config value such as "debug" or "WARN" to a slog level.
// Empty or unknown values fall back to info.
func Level(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}

	var l slog.Level
	if s == "" || l.UnmarshalText([]byte(s)) != nil {
		return slog.LevelInfo
	}
	return l
}
