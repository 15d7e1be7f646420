package timesvc

import (
	"time"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const maxSleepers = 32

type sleeper struct {
	inUse bool
	due   uint64
	id    uint32
	reply kernel.Capability
}

// Service answers sleep requests in ticks and wall clock queries.
type Service struct {
	ep  kernel.Capability
	now func() time.Time

	tick     uint64
	sleepers [maxSleepers]sleeper
}

// New returns a time service; now is the wall clock (hal.Time.Now).
func New(now func() time.Time, ep kernel.Capability) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{ep: ep, now: now}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}

	done := make(chan struct{})
	defer close(done)

	tickCh := make(chan uint64, 16)
	go func() {
		last := ctx.NowTick()
		for {
			select {
			case <-done:
				return
			default:
			}
			last = ctx.WaitTick(last)
			select {
			case tickCh <- last:
			default:
			}
		}
	}()

	s.tick = ctx.NowTick()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.handle(ctx, msg)
		case tick := <-tickCh:
			s.tick = tick
			s.wakeReady(ctx)
		}
	}
}

func (s *Service) handle(ctx *kernel.Context, msg kernel.Message) {
	if !msg.Cap.Valid() {
		return
	}
	switch proto.Kind(msg.Kind) {
	case proto.MsgSleep:
		s.handleSleep(ctx, msg)
	case proto.MsgClockNow:
		s.handleClockNow(ctx, msg)
	default:
		_ = ctx.SendToCapResult(msg.Cap, uint16(proto.MsgError),
			proto.ErrorPayload(proto.ErrUnsupported, proto.Kind(msg.Kind), 0, nil), kernel.Capability{})
	}
}

func (s *Service) handleSleep(ctx *kernel.Context, msg kernel.Message) {
	requestID, dt, ok := proto.DecodeSleepPayload(msg.Payload())
	if !ok {
		s.replyError(ctx, msg.Cap, proto.ErrBadMessage, proto.MsgSleep, 0)
		return
	}
	if dt == 0 {
		_ = ctx.SendToCapResult(msg.Cap, uint16(proto.MsgWake), proto.WakePayload(requestID), kernel.Capability{})
		return
	}
	if !s.schedule(s.tick+uint64(dt), requestID, msg.Cap) {
		s.replyError(ctx, msg.Cap, proto.ErrOverflow, proto.MsgSleep, requestID)
	}
}

func (s *Service) handleClockNow(ctx *kernel.Context, msg kernel.Message) {
	requestID, ok := proto.DecodeClockNowPayload(msg.Payload())
	if !ok {
		s.replyError(ctx, msg.Cap, proto.ErrBadMessage, proto.MsgClockNow, 0)
		return
	}
	now := s.now()
	_, offset := now.Zone()
	_ = ctx.SendToCapRetry(msg.Cap, uint16(proto.MsgClockNowResp),
		proto.ClockNowRespPayload(requestID, now.UnixNano(), int32(offset)), kernel.Capability{}, 8)
}

func (s *Service) replyError(ctx *kernel.Context, to kernel.Capability, code proto.ErrCode, ref proto.Kind, requestID uint32) {
	_ = ctx.SendToCapResult(to, uint16(proto.MsgError), proto.ErrorPayload(code, ref, requestID, nil), kernel.Capability{})
}

func (s *Service) schedule(due uint64, requestID uint32, reply kernel.Capability) bool {
	for i := range s.sleepers {
		if s.sleepers[i].inUse {
			continue
		}
		s.sleepers[i] = sleeper{inUse: true, due: due, id: requestID, reply: reply}
		return true
	}
	return false
}

func (s *Service) wakeReady(ctx *kernel.Context) {
	for i := range s.sleepers {
		sl := &s.sleepers[i]
		if !sl.inUse || sl.due > s.tick {
			continue
		}
		if ctx.SendToCapResult(sl.reply, uint16(proto.MsgWake), proto.WakePayload(sl.id), kernel.Capability{}) == kernel.SendErrQueueFull {
			continue
		}
		*sl = sleeper{}
	}
}
