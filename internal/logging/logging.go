package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/idlab-discover/aloha-cli/internal/ui"
)

// Logger is a tiny opt-in logger used across internal packages.
// When Writer is nil, logging is disabled.
//
// The output format is:
//
//	<ColoredPrefix> <field>=<subject> <formattedMessage>\n
//
// where <field> defaults to "model" and <subject> is trimmed and defaults
// to "(unknown)".
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string

	// Field names the subject written before each message ("model",
	// "dataset", ...). Empty means "model".
	Field string

	// OmitModel controls whether the subject field is written.
	OmitModel bool
}

func (l *Logger) SetWriter(w io.Writer) { l.Writer = w }

func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

func (l *Logger) prefix() string {
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "Log:"
	}
	if l.PrefixColor != "" {
		prefix = ui.Color(prefix, l.PrefixColor)
	}
	return prefix
}

func (l *Logger) Logf(subject string, format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.OmitModel {
		fmt.Fprintf(l.Writer, "%s %s\n", l.prefix(), msg)
		return
	}

	s := strings.TrimSpace(subject)
	if s == "" {
		s = "(unknown)"
	}
	field := l.Field
	if field == "" {
		field = "model"
	}
	fmt.Fprintf(l.Writer, "%s %s=%s %s\n", l.prefix(), field, s, msg)
}

// The methods below satisfy retryablehttp.LeveledLogger so the HTTP client
// reports its retries through the same writer.

func (l *Logger) Error(msg string, keysAndValues ...any) { l.leveled("error", msg, keysAndValues) }
func (l *Logger) Warn(msg string, keysAndValues ...any)  { l.leveled("warn", msg, keysAndValues) }
func (l *Logger) Info(msg string, keysAndValues ...any)  { l.leveled("info", msg, keysAndValues) }
func (l *Logger) Debug(msg string, keysAndValues ...any) { l.leveled("debug", msg, keysAndValues) }

func (l *Logger) leveled(level, msg string, kv []any) {
	if l == nil || l.Writer == nil {
		return
	}
	var b strings.Builder
	b.WriteString("level=")
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		b.WriteString(" ")
		b.WriteString(fmt.Sprint(kv[i]))
		b.WriteString("=")
		if i+1 < len(kv) {
			b.WriteString(fmt.Sprint(kv[i+1]))
		} else {
			b.WriteString("(missing)")
		}
	}
	fmt.Fprintf(l.Writer, "%s %s\n", l.prefix(), b.String())
}
