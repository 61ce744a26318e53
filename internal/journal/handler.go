package journal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// TimeLayout renders timestamps as e.g. "Tue 10/20/2026 09:15:02 AM".
const TimeLayout = "Mon 01/02/2006 03:04:05 PM"

// lineHandler is a slog.Handler that writes one
// "<timestamp> <LEVEL> <program>: <message>" line per record to the console
// and to the log file. Level filtering is done by the Journal, not here.
type lineHandler struct {
	mu      *sync.Mutex
	console io.Writer
	file    io.Writer
	errOut  io.Writer
	styles  map[string]lipgloss.Style
	program string
	// preformatted holds attributes added via WithAttrs, already rendered.
	preformatted string
	prefix       string
}

func newLineHandler(program string, console, file, errOut io.Writer) *lineHandler {
	h := &lineHandler{
		mu:      &sync.Mutex{},
		console: console,
		file:    file,
		errOut:  errOut,
		program: program,
	}
	if console != nil {
		h.styles = levelStyles(lipgloss.NewRenderer(console))
	}
	return h
}

func levelStyles(r *lipgloss.Renderer) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		LevelDebug.String():       r.NewStyle().Faint(true),
		LevelInformation.String(): r.NewStyle().Foreground(lipgloss.Color("4")),
		LevelWarning.String():     r.NewStyle().Foreground(lipgloss.Color("3")),
		LevelError.String():       r.NewStyle().Foreground(lipgloss.Color("1")),
		LevelCritical.String():    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (h *lineHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	level := levelName(r.Level)
	body := h.body(r)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.console != nil {
		styled := level
		if st, ok := h.styles[level]; ok {
			styled = st.Render(level)
		}
		fmt.Fprintf(h.console, "%s %s %s\n", ts.Format(TimeLayout), styled, body)
	}
	if h.file != nil {
		line := fmt.Sprintf("%s %s %s\n", ts.Format(TimeLayout), level, body)
		if _, err := io.WriteString(h.file, line); err != nil {
			// The console already has the line; report and keep going.
			fmt.Fprintf(h.errOut, "journal: writing log file: %v\n", err)
			return err
		}
	}
	return nil
}

// body renders "<program>: <message>" followed by any attributes as
// key=value pairs.
func (h *lineHandler) body(r slog.Record) string {
	var b strings.Builder
	b.WriteString(h.program)
	b.WriteString(": ")
	b.WriteString(r.Message)
	b.WriteString(h.preformatted)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})
	return b.String()
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve())
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.preformatted)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	h2 := *h
	h2.preformatted = b.String()
	return &h2
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h.prefix == "" {
		h2.prefix = name
	} else {
		h2.prefix = h.prefix + "." + name
	}
	return &h2
}
