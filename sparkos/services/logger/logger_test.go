package logger

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

type line struct {
	level slog.Level
	msg   string
}

type recordLogger struct {
	mu    sync.Mutex
	lines []line
	got   chan struct{}
}

func (l *recordLogger) WriteLineString(s string) { l.Log(slog.LevelInfo, s) }
func (l *recordLogger) WriteLineBytes(b []byte)  { l.Log(slog.LevelInfo, string(b)) }
func (l *recordLogger) Log(level slog.Level, msg string) {
	l.mu.Lock()
	l.lines = append(l.lines, line{level, msg})
	l.mu.Unlock()
	l.got <- struct{}{}
}

func TestServiceForwardsLevels(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	rec := &recordLogger{got: make(chan struct{}, 4)}
	k.AddTask(New(rec, ep.Restrict(kernel.RightRecv)))

	ctx := kernel.NewTestContext(k, 1)
	send := ep.Restrict(kernel.RightSend)
	ctx.SendTo(send, uint16(proto.MsgLogLine), proto.LogLinePayload(proto.LogWarn, []byte("calc: 1 / 0")))
	ctx.SendTo(send, uint16(proto.MsgLogLine), nil)

	for i := 0; i < 2; i++ {
		select {
		case <-rec.got:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for line %d", i)
		}
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.lines[0].level != slog.LevelWarn || rec.lines[0].msg != "calc: 1 / 0" {
		t.Fatalf("line 0 = %+v", rec.lines[0])
	}
	if rec.lines[1].level != slog.LevelWarn {
		t.Fatalf("malformed line level = %v", rec.lines[1].level)
	}
}

func TestSlogLevel(t *testing.T) {
	if SlogLevel(proto.LogDebug) != slog.LevelDebug || SlogLevel(proto.LogError) != slog.LevelError {
		t.Fatal("level mapping")
	}
	if SlogLevel(proto.LogLevel(99)) != slog.LevelInfo {
		t.Fatal("unknown level should map to info")
	}
}
