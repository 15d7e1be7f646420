package logger

import (
	"fmt"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// Log sends a log line to the logger service.
//
// The call is best-effort: it may drop on queue full.
func Log(ctx *kernel.Context, logCap kernel.Capability, level proto.LogLevel, line string) kernel.SendResult {
	if ctx == nil {
		return kernel.SendErrInvalidFromCap
	}
	b := []byte(line)
	if len(b) > kernel.MaxMessageBytes-1 {
		b = b[:kernel.MaxMessageBytes-1]
	}
	return ctx.SendToCapResult(logCap, uint16(proto.MsgLogLine), proto.LogLinePayload(level, b), kernel.Capability{})
}

// LogRetry is Log that waits a tick and retries while the logger queue is full.
func LogRetry(ctx *kernel.Context, logCap kernel.Capability, level proto.LogLevel, line string, limit int) error {
	if ctx == nil {
		return fmt.Errorf("logger retry: nil context")
	}
	b := []byte(line)
	if len(b) > kernel.MaxMessageBytes-1 {
		b = b[:kernel.MaxMessageBytes-1]
	}
	res := ctx.SendToCapRetry(logCap, uint16(proto.MsgLogLine), proto.LogLinePayload(level, b), kernel.Capability{}, limit)
	if err := res.Err(); err != nil {
		return fmt.Errorf("logger send: %w", err)
	}
	return nil
}

// Logger binds a task context to the logger service.
type Logger struct {
	ctx    *kernel.Context
	logCap kernel.Capability
	prefix string
}

// New returns a Logger that prefixes every line with prefix.
func New(ctx *kernel.Context, logCap kernel.Capability, prefix string) *Logger {
	return &Logger{ctx: ctx, logCap: logCap, prefix: prefix}
}

func (l *Logger) Logf(level proto.LogLevel, format string, args ...any) {
	if l == nil || !l.logCap.Valid() {
		return
	}
	_ = Log(l.ctx, l.logCap, level, l.prefix+fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) { l.Logf(proto.LogDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.Logf(proto.LogInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.Logf(proto.LogWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.Logf(proto.LogError, format, args...) }
