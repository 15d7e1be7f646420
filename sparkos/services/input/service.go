package input

import (
	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// Service turns HAL key events into VT100 bytes (MsgTermInput) and pointer
// transitions into MsgPointer, both sent to the focused task.
type Service struct {
	in     hal.Input
	outCap kernel.Capability

	pending []byte

	heldCode hal.KeyCode
	heldData []byte

	nextRepeatTick uint64
}

func New(in hal.Input, outCap kernel.Capability) *Service {
	return &Service{in: in, outCap: outCap}
}

func (s *Service) Run(ctx *kernel.Context) {
	if ctx == nil || s.in == nil {
		return
	}
	var (
		keys <-chan hal.KeyEvent
		ptrs <-chan hal.PointerEvent
	)
	if kbd := s.in.Keyboard(); kbd != nil {
		keys = kbd.Events()
	}
	if ptr := s.in.Pointer(); ptr != nil {
		ptrs = ptr.Events()
	}
	if keys == nil && ptrs == nil {
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

	for {
		select {
		case ev, ok := <-keys:
			if !ok {
				return
			}
			s.handleKeyEvent(ctx, ev)
		case ev, ok := <-ptrs:
			if !ok {
				return
			}
			s.handlePointer(ctx, ev)
		case tick := <-tickCh:
			s.handleRepeat(tick)
			s.flush(ctx)
		}
	}
}

func (s *Service) handleKeyEvent(ctx *kernel.Context, ev hal.KeyEvent) {
	if !ev.Press {
		if s.heldData != nil && ev.Code == s.heldCode {
			s.heldData = nil
			s.nextRepeatTick = 0
		}
		return
	}

	data := vt100FromKey(ev)
	if len(data) > 0 {
		s.pending = append(s.pending, data...)
		s.flush(ctx)
	}

	if !repeatableKey(ev, data) {
		return
	}
	s.heldCode = ev.Code
	s.heldData = append(s.heldData[:0], data...)
	s.nextRepeatTick = ctx.NowTick() + repeatDelayTicks
}

func (s *Service) handlePointer(ctx *kernel.Context, ev hal.PointerEvent) {
	if !s.outCap.Valid() {
		return
	}
	// Pending keys go first so input order is kept.
	s.flush(ctx)
	payload := proto.PointerPayload(int16(ev.X), int16(ev.Y), ev.Button, ev.Press)
	_ = ctx.SendToCapRetry(s.outCap, uint16(proto.MsgPointer), payload, kernel.Capability{}, 4)
}

func (s *Service) handleRepeat(tick uint64) {
	if s.heldData == nil || tick < s.nextRepeatTick {
		return
	}
	s.pending = append(s.pending, s.heldData...)
	s.nextRepeatTick = tick + repeatRateTicks
}

func (s *Service) flush(ctx *kernel.Context) {
	if len(s.pending) == 0 {
		return
	}
	if !s.outCap.Valid() {
		s.pending = nil
		return
	}

	chunk := s.pending
	if len(chunk) > kernel.MaxMessageBytes {
		chunk = chunk[:kernel.MaxMessageBytes]
	}

	res := ctx.SendToCapResult(s.outCap, uint16(proto.MsgTermInput), chunk, kernel.Capability{})
	switch res {
	case kernel.SendOK:
		s.pending = s.pending[len(chunk):]
	case kernel.SendErrQueueFull:
	default:
		s.pending = nil
	}
}

const (
	// Ticks are 1ms.
	repeatDelayTicks = 350
	repeatRateTicks  = 60
)

func repeatableKey(ev hal.KeyEvent, data []byte) bool {
	if len(data) == 0 {
		return false
	}
	switch ev.Code {
	case hal.KeyBackspace, hal.KeyDelete, hal.KeyUp, hal.KeyDown, hal.KeyLeft, hal.KeyRight:
		return true
	default:
		return false
	}
}

func vt100FromKey(ev hal.KeyEvent) []byte {
	if ev.Rune != 0 {
		return []byte(string(ev.Rune))
	}

	switch ev.Code {
	case hal.KeyEnter:
		return []byte{'\n'}
	case hal.KeyEscape:
		return []byte{0x1b}
	case hal.KeyBackspace:
		return []byte{0x7f}
	case hal.KeyTab:
		return []byte{'\t'}
	case hal.KeyUp:
		return []byte("\x1b[A")
	case hal.KeyDown:
		return []byte("\x1b[B")
	case hal.KeyRight:
		return []byte("\x1b[C")
	case hal.KeyLeft:
		return []byte("\x1b[D")
	case hal.KeyDelete:
		return []byte("\x1b[3~")
	case hal.KeyHome:
		return []byte("\x1b[H")
	case hal.KeyEnd:
		return []byte("\x1b[F")
	default:
		return nil
	}
}
