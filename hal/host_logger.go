//go:build !tinygo

package hal

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// hostLogger fans log lines out to a text handler and, when running as a
// systemd service, the journal.
type hostLogger struct {
	log *slog.Logger
}

func newHostLogger(w io.Writer, level slog.Level) *hostLogger {
	return &hostLogger{log: slog.New(newLogHandler(w, level, isSystemdService()))}
}

func newLogHandler(w io.Writer, level slog.Level, service bool) slog.Handler {
	var handlers []slog.Handler

	var text slog.Handler
	if !service {
		text = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
		handlers = append(handlers, text)
	}

	if service {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			text = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
			handlers = append(handlers, text)
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = text.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}

	return slogmulti.Fanout(handlers...)
}

func (l *hostLogger) WriteLineString(s string) {
	l.Log(slog.LevelInfo, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.Log(slog.LevelInfo, string(b))
}

func (l *hostLogger) Log(level slog.Level, msg string) {
	l.log.Log(context.Background(), level, strings.TrimRight(msg, "\n"))
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
