package calculator

import (
	"time"

	"sparkcalc/hal"
	audioclient "sparkcalc/sparkos/client/audio"
	clipclient "sparkcalc/sparkos/client/clipboard"
	logclient "sparkcalc/sparkos/client/logger"
	timeclient "sparkcalc/sparkos/client/time"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const (
	// doubleClickTicks is the window for a double click on AC (1 tick = 1ms).
	doubleClickTicks = 400
	clockEveryTicks  = 1000
	pressFlashTicks  = 120
)

// Config holds the user-facing calculator options.
type Config struct {
	Locale    string
	Audio     bool
	TapeLines int
}

// Caps are the service endpoints the calculator talks to. Any of them may
// be the zero Capability, which disables that feature.
type Caps struct {
	Log       kernel.Capability
	Time      kernel.Capability
	Audio     kernel.Capability
	Clipboard kernel.Capability
}

// Task is the calculator: it owns the accumulator and everything on screen.
type Task struct {
	disp hal.Display
	ep   kernel.Capability
	caps Caps
	cfg  Config

	fb hal.Framebuffer

	acc   *calc.Accumulator
	tape  *tape
	log   *logclient.Logger
	clock *timeclient.Client
	audio *audioclient.Client
	clip  *clipclient.Client

	display  string
	dateText string
	timeText string

	audioOn bool

	buttons     []button
	pressedID   string
	pressedTick uint64
	lastAC      uint64

	inbuf   []byte
	nowTick uint64
}

func New(disp hal.Display, ep kernel.Capability, caps Caps, cfg Config) *Task {
	return &Task{disp: disp, ep: ep, caps: caps, cfg: cfg}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}
	t.init(ctx)

	done := make(chan struct{})
	defer close(done)

	tickCh := make(chan uint64, 8)
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

	t.refreshClock(ctx)
	t.render()

	lastClock := ctx.NowTick()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			switch proto.Kind(msg.Kind) {
			case proto.MsgTermInput:
				t.handleInput(ctx, msg.Payload())
			case proto.MsgPointer:
				x, y, btn, press, ok := proto.DecodePointerPayload(msg.Payload())
				if !ok || btn != 1 || !press {
					continue
				}
				t.handlePointer(ctx, int(x), int(y))
			default:
				continue
			}
			t.render()

		case now := <-tickCh:
			t.nowTick = now
			dirty := false
			if t.pressedID != "" && now-t.pressedTick >= pressFlashTicks {
				t.pressedID = ""
				dirty = true
			}
			if now-lastClock >= clockEveryTicks {
				lastClock = now
				t.refreshClock(ctx)
				dirty = true
			}
			if dirty {
				t.render()
			}
		}
	}
}

func (t *Task) init(ctx *kernel.Context) {
	if t.disp != nil {
		t.fb = t.disp.Framebuffer()
	}
	if t.cfg.Locale == "" {
		t.cfg.Locale = LocalePtBR
	}
	t.audioOn = t.cfg.Audio
	t.tape = newTape(t.cfg.TapeLines)
	t.log = logclient.New(ctx, t.caps.Log, "calc: ")
	if t.caps.Time.Valid() {
		t.clock = timeclient.New(t.caps.Time)
	}
	if t.caps.Audio.Valid() {
		t.audio = audioclient.New(t.caps.Audio)
		if err := t.audio.SetEnabled(ctx, t.audioOn); err != nil {
			t.log.Warnf("audio: %v", err)
		}
	}
	if t.caps.Clipboard.Valid() {
		t.clip = clipclient.New(t.caps.Clipboard)
	}

	t.acc = calc.New(calc.DisplayFunc(t.setDisplay))
	t.acc.OnEvaluate = func(ev calc.Evaluation) {
		t.log.Infof("%s", ev)
		t.tape.add(ev)
	}
	t.nowTick = ctx.NowTick()
}

// setDisplay is the accumulator's display sink.
func (t *Task) setDisplay(text string) {
	t.display = text
}

func (t *Task) handleInput(ctx *kernel.Context, b []byte) {
	t.inbuf = append(t.inbuf, b...)
	for len(t.inbuf) > 0 {
		n, k, ok := nextKey(t.inbuf)
		if !ok {
			break
		}
		t.inbuf = t.inbuf[n:]
		t.handleKey(ctx, k)
	}
}

func (t *Task) handleKey(ctx *kernel.Context, k key) {
	if k.kind == keyIgnored {
		return
	}
	t.click(ctx)

	switch k.kind {
	case keyEsc:
		t.run(func() { t.acc.ClearAll() })
	case keyBackspace, keyDelete:
		t.run(func() { t.acc.ClearEntry() })
	case keyEnter:
		t.run(func() { t.acc.Evaluate() })
	case keyCtrl:
		switch k.ctrl {
		case 0x03:
			t.copyToClipboard(ctx)
		case 0x16:
			t.pasteFromClipboard(ctx)
		}
	case keyRune:
		t.handleRune(k.r)
	}
}

func (t *Task) handleRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
		t.run(func() { t.acc.AddDigit(byte(r)) })
	case r == '.' || r == ',':
		t.run(func() { t.acc.AddPoint() })
	case r == '=':
		t.run(func() { t.acc.Evaluate() })
	default:
		if op, ok := calc.ParseOperator(r); ok {
			t.run(func() { t.acc.AddOperator(op) })
		}
		// Unbound keys are ignored.
	}
}

func (t *Task) handlePointer(ctx *kernel.Context, x, y int) {
	b, ok := hitButton(t.buttons, x, y)
	if !ok {
		return
	}
	t.pressButton(ctx, b.id)
}

// pressButton handles one button press, including the AC double click
// that toggles click audio.
func (t *Task) pressButton(ctx *kernel.Context, id string) {
	t.click(ctx)
	t.pressedID = id
	t.pressedTick = t.nowTick

	if id == "ac" {
		if t.lastAC != 0 && t.nowTick-t.lastAC <= doubleClickTicks {
			t.lastAC = 0
			t.toggleAudio(ctx)
		} else {
			t.lastAC = max(t.nowTick, 1)
		}
	}
	t.run(func() { execButton(t.acc, id) })
}

// run applies op and logs a transition into the Error display.
func (t *Task) run(op func()) {
	op()
	if err := t.acc.Err(); err != nil {
		t.log.Warnf("error: %v", err)
	}
}

func (t *Task) click(ctx *kernel.Context) {
	if !t.audioOn || t.audio == nil {
		return
	}
	if err := t.audio.Click(ctx); err != nil {
		t.log.Debugf("click: %v", err)
	}
}

func (t *Task) toggleAudio(ctx *kernel.Context) {
	t.audioOn = !t.audioOn
	t.log.Infof("audio %s", onOff(t.audioOn))
	if t.audio == nil {
		return
	}
	if err := t.audio.SetEnabled(ctx, t.audioOn); err != nil {
		t.log.Warnf("audio: %v", err)
	}
}

func (t *Task) copyToClipboard(ctx *kernel.Context) {
	if t.clip == nil {
		return
	}
	if err := t.clip.Write(ctx, t.display); err != nil {
		t.log.Warnf("copy: %v", err)
		return
	}
	t.log.Debugf("copied %q", t.display)
}

func (t *Task) pasteFromClipboard(ctx *kernel.Context) {
	if t.clip == nil {
		return
	}
	text, err := t.clip.Read(ctx)
	if err != nil {
		t.log.Warnf("paste: %v", err)
		return
	}
	t.run(func() { t.acc.Paste(text) })
}

func (t *Task) refreshClock(ctx *kernel.Context) {
	now := time.Now()
	if t.clock != nil {
		n, err := t.clock.Now(ctx)
		if err != nil {
			t.log.Warnf("clock: %v", err)
		} else {
			now = n
		}
	}
	t.dateText = formatDate(t.cfg.Locale, now)
	t.timeText = formatTime(t.cfg.Locale, now)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
