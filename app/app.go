package app

import (
	"errors"

	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/services/audio"
	"sparkcalc/sparkos/services/clipboard"
	"sparkcalc/sparkos/services/input"
	"sparkcalc/sparkos/services/logger"
	timesvc "sparkcalc/sparkos/services/time"
	"sparkcalc/sparkos/tasks/calculator"
)

// ErrPanicked is returned by the step function after a task panic when
// Config.ExitOnPanic is set.
var ErrPanicked = errors.New("task panicked")

type system struct {
	k      *kernel.Kernel
	panics chan kernel.PanicInfo
}

type Config struct {
	Calculator  calculator.Config
	ExitOnPanic bool
}

// New starts the kernel, services and the calculator task on h. The
// returned step function is called once per host frame.
func New(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return func() error {
		if !cfg.ExitOnPanic {
			return nil
		}
		select {
		case info := <-s.panics:
			return errors.Join(ErrPanicked, errors.New(info.String()))
		default:
			return nil
		}
	}
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{k: kernel.New(), panics: make(chan kernel.PanicInfo, 1)}
	k := s.k
	installPanicHandler(h, s.panics)

	rw := kernel.RightSend | kernel.RightRecv
	logEP := k.NewEndpoint(rw)
	timeEP := k.NewEndpoint(rw)
	audioEP := k.NewEndpoint(rw)
	clipEP := k.NewEndpoint(rw)
	calcEP := k.NewEndpoint(rw)

	if l := h.Logger(); l != nil {
		l.WriteLineString("boot: " + buildinfo.String())
	}

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	var timeCap kernel.Capability
	if ht := h.Time(); ht != nil {
		k.AddTask(timesvc.New(ht.Now, timeEP.Restrict(kernel.RightRecv)))
		timeCap = timeEP.Restrict(kernel.RightSend)
	}
	k.AddTask(audio.New(audioEP.Restrict(kernel.RightRecv), h.Audio(), cfg.Calculator.Audio))
	k.AddTask(clipboard.New(clipEP.Restrict(kernel.RightRecv), h.Clipboard()))
	k.AddTask(input.New(h.Input(), calcEP.Restrict(kernel.RightSend)))
	k.AddTask(calculator.New(h.Display(), calcEP.Restrict(kernel.RightRecv), calculator.Caps{
		Log:       logEP.Restrict(kernel.RightSend),
		Time:      timeCap,
		Audio:     audioEP.Restrict(kernel.RightSend),
		Clipboard: clipEP.Restrict(kernel.RightSend),
	}, cfg.Calculator))

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return s
}
