package clipboard

import (
	"errors"

	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// Service exposes the HAL clipboard over IPC. Every request carries a reply
// capability and gets exactly one answer.
type Service struct {
	inCap kernel.Capability
	clip  hal.Clipboard
}

func New(inCap kernel.Capability, clip hal.Clipboard) *Service {
	return &Service{inCap: inCap, clip: clip}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.inCap)
	if !ok {
		return
	}
	for msg := range ch {
		if !msg.Cap.Valid() {
			continue
		}
		switch proto.Kind(msg.Kind) {
		case proto.MsgClipboardRead:
			s.handleRead(ctx, msg)
		case proto.MsgClipboardWrite:
			s.handleWrite(ctx, msg)
		default:
			s.replyError(ctx, msg.Cap, proto.ErrUnsupported, proto.Kind(msg.Kind), 0, nil)
		}
	}
}

func (s *Service) handleRead(ctx *kernel.Context, msg kernel.Message) {
	id, ok := proto.DecodeClipboardReadPayload(msg.Payload())
	if !ok {
		s.replyError(ctx, msg.Cap, proto.ErrBadMessage, proto.MsgClipboardRead, 0, nil)
		return
	}
	if s.clip == nil {
		s.replyError(ctx, msg.Cap, proto.ErrUnsupported, proto.MsgClipboardRead, id, nil)
		return
	}
	text, err := s.clip.ReadText()
	if err != nil {
		s.replyError(ctx, msg.Cap, errCode(err), proto.MsgClipboardRead, id, []byte(err.Error()))
		return
	}
	_ = ctx.SendToCapRetry(msg.Cap, uint16(proto.MsgClipboardReadResp), proto.ClipboardTextPayload(id, text), kernel.Capability{}, 8)
}

func (s *Service) handleWrite(ctx *kernel.Context, msg kernel.Message) {
	id, text, ok := proto.DecodeClipboardTextPayload(msg.Payload())
	if !ok {
		s.replyError(ctx, msg.Cap, proto.ErrBadMessage, proto.MsgClipboardWrite, 0, nil)
		return
	}
	if s.clip == nil {
		s.replyError(ctx, msg.Cap, proto.ErrUnsupported, proto.MsgClipboardWrite, id, nil)
		return
	}
	if err := s.clip.WriteText(text); err != nil {
		s.replyError(ctx, msg.Cap, errCode(err), proto.MsgClipboardWrite, id, []byte(err.Error()))
		return
	}
	_ = ctx.SendToCapRetry(msg.Cap, uint16(proto.MsgClipboardWriteResp), proto.ClipboardWriteRespPayload(id), kernel.Capability{}, 8)
}

func (s *Service) replyError(ctx *kernel.Context, to kernel.Capability, code proto.ErrCode, ref proto.Kind, id uint32, detail []byte) {
	if limit := kernel.MaxMessageBytes - 8; len(detail) > limit {
		detail = detail[:limit]
	}
	_ = ctx.SendToCapRetry(to, uint16(proto.MsgError), proto.ErrorPayload(code, ref, id, detail), kernel.Capability{}, 8)
}

func errCode(err error) proto.ErrCode {
	if errors.Is(err, hal.ErrClipboardUnavailable) {
		return proto.ErrUnsupported
	}
	return proto.ErrInternal
}
