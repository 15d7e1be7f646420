package audio

import (
	"math"

	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const (
	SampleRate = 44100

	clickHz     = 1800
	clickMillis = 12
)

// Service plays a short click for every MsgAudioClick while enabled.
type Service struct {
	inCap kernel.Capability
	out   hal.Audio

	enabled bool
	started bool
	volume  uint8
	click   []int16
}

func New(inCap kernel.Capability, out hal.Audio, enabled bool) *Service {
	return &Service{inCap: inCap, out: out, enabled: enabled, volume: 0xC0, click: clickSamples(SampleRate)}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.inCap)
	if !ok {
		return
	}
	defer s.stop()

	for msg := range ch {
		switch proto.Kind(msg.Kind) {
		case proto.MsgAudioClick:
			s.handleClick()
		case proto.MsgAudioSetEnabled:
			on, ok := proto.DecodeAudioSetEnabledPayload(msg.Payload())
			if !ok {
				s.replyError(ctx, msg.Cap, proto.ErrBadMessage, proto.MsgAudioSetEnabled)
				continue
			}
			s.enabled = on
			if !on {
				s.stop()
			}
			s.replyStatus(ctx, msg.Cap)
		case proto.MsgAudioStatus:
			s.replyStatus(ctx, msg.Cap)
		}
	}
}

func (s *Service) handleClick() {
	if !s.enabled || s.out == nil {
		return
	}
	if !s.started {
		if err := s.out.Start(SampleRate); err != nil {
			// No usable device; stay silent.
			s.enabled = false
			return
		}
		s.out.SetVolume(s.volume)
		s.started = true
	}
	s.out.WriteSamples(s.click)
}

func (s *Service) stop() {
	if s.started && s.out != nil {
		_ = s.out.Stop()
	}
	s.started = false
}

func (s *Service) replyStatus(ctx *kernel.Context, to kernel.Capability) {
	if !to.Valid() {
		return
	}
	_ = ctx.SendToCapResult(to, uint16(proto.MsgAudioStatus), proto.AudioStatusPayload(s.enabled, s.volume), kernel.Capability{})
}

func (s *Service) replyError(ctx *kernel.Context, to kernel.Capability, code proto.ErrCode, ref proto.Kind) {
	if !to.Valid() {
		return
	}
	_ = ctx.SendToCapResult(to, uint16(proto.MsgError), proto.ErrorPayload(code, ref, 0, nil), kernel.Capability{})
}

// clickSamples renders a decaying sine burst.
func clickSamples(rate int) []int16 {
	n := rate * clickMillis / 1000
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / float64(rate)
		env := math.Exp(-float64(i) / float64(n) * 5)
		out[i] = int16(math.Sin(2*math.Pi*clickHz*t) * env * 0.6 * math.MaxInt16)
	}
	return out
}
