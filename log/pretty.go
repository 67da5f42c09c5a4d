package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the pretty text handler. Rendering degrades to plain text when
// the terminal reports no color support.
var (
	styleKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleString = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleTrue   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFalse  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleTime   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	styleLevel = map[slog.Level]lipgloss.Style{
		slog.Level(LevelTrace): lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		slog.Level(LevelDebug): lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		slog.Level(LevelInfo):  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		slog.Level(LevelWarn):  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		slog.Level(LevelError): lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// prettyTextHandler is a colorized text handler for log messages.
type prettyTextHandler struct {
	opts       slog.HandlerOptions
	mu         *sync.Mutex
	w          io.Writer
	timeLayout string
	attrs      []slog.Attr
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	timeLayout string,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:       *opts,
		mu:         &sync.Mutex{},
		w:          w,
		timeLayout: timeLayout,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() && h.timeLayout != "" {
		buf.WriteString(styleTime.Render(r.Time.Format(h.timeLayout)))
	}

	h.writeAttr(buf, slog.Any(slog.LevelKey, r.Level))
	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyTextHandler) WithGroup(string) slog.Handler {
	// Groups are flattened; the parser and demo binaries never nest them.
	return h
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	// Message and level stand alone; everything else renders as key=value.
	switch a.Key {
	case slog.MessageKey:
		buf.WriteString(a.Value.String())

		return
	case slog.LevelKey:
		h.writeValue(buf, a.Value)

		return
	}

	buf.WriteString(styleKey.Render(a.Key))
	buf.WriteByte('=')
	h.writeValue(buf, a.Value)
}

func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	v = v.Resolve()

	switch v.Kind() {
	case slog.KindInt64:
		buf.WriteString(styleNumber.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(styleNumber.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(styleNumber.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(styleTrue.Render("true"))
		} else {
			buf.WriteString(styleFalse.Render("false"))
		}

	case slog.KindTime:
		buf.WriteString(styleTime.Render(v.Time().String()))

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			style, found := styleLevel[level]
			if !found {
				style = styleString
			}

			buf.WriteString(style.Render(Level(level).String()))

			return
		}

		buf.WriteString(styleString.Render(v.String()))

	default:
		buf.WriteString(styleString.Render(v.String()))
	}
}
