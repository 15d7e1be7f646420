package hal

import (
	"errors"
	"log/slog"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
	// Log writes one line at the given level.
	Log(level slog.Level, msg string)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	// ErrClipboardUnavailable reports a host without clipboard support.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
)

// KeyEvent is a keyboard event.
//
// Text input arrives as Rune with Code == KeyUnknown; Ctrl+letter arrives
// as the matching control rune (Ctrl+C = 0x03, Ctrl+V = 0x16).
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerEvent is a pointer button transition in framebuffer coordinates.
type PointerEvent struct {
	X, Y   int
	Button uint8
	Press  bool
}

// Pointer provides mouse/touch events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a base tick stream and the wall clock.
//
// Ticks are 1ms; higher-level timers live in userland.
type Time interface {
	Ticks() <-chan uint64
	Now() time.Time
}

// Audio is a mono sample sink.
type Audio interface {
	Start(sampleRate uint32) error
	Stop() error
	SetVolume(vol uint8)
	// WriteSamples queues samples, blocking while the buffer is full.
	WriteSamples(samples []int16)
	PendingSamples() int
}

// Clipboard is the system text clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
	Audio() Audio
	Clipboard() Clipboard
}
