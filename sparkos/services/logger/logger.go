package logger

import (
	"log/slog"

	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// Service forwards MsgLogLine payloads to the HAL logger.
type Service struct {
	log hal.Logger
	ep  kernel.Capability
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}
	for msg := range ch {
		s.handle(msg)
	}
}

func (s *Service) handle(msg kernel.Message) {
	if s.log == nil || msg.Kind != uint16(proto.MsgLogLine) {
		return
	}
	level, line, ok := proto.DecodeLogLinePayload(msg.Payload())
	if !ok {
		s.log.Log(slog.LevelWarn, "logger: malformed log line")
		return
	}
	s.log.Log(SlogLevel(level), string(line))
}

// SlogLevel maps a wire level onto slog.
func SlogLevel(l proto.LogLevel) slog.Level {
	switch l {
	case proto.LogDebug:
		return slog.LevelDebug
	case proto.LogWarn:
		return slog.LevelWarn
	case proto.LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
