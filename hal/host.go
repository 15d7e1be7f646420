//go:build !tinygo

package hal

import (
	"io"
	"log/slog"
	"os"
)

// HostOptions configures the desktop HAL.
type HostOptions struct {
	Width  int
	Height int
	// LogLevel is the minimum level written by the host logger.
	LogLevel slog.Level
	// LogWriter receives text log lines; nil means stderr.
	LogWriter io.Writer
	// Clipboard overrides the system clipboard (tests, headless runs).
	Clipboard Clipboard
}

const (
	defaultWidth  = 320
	defaultHeight = 320
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	t      *hostTime
	aud    Audio
	clip   Clipboard
}

// New returns a host HAL implementation.
func New(opts HostOptions) HAL {
	return newHost(opts)
}

func newHost(opts HostOptions) *hostHAL {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	w := opts.LogWriter
	if w == nil {
		w = os.Stderr
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = newHostClipboard()
	}
	return &hostHAL{
		logger: newHostLogger(w, opts.LogLevel),
		fb:     newHostFramebuffer(opts.Width, opts.Height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      newHostTime(),
		aud:    newHostAudio(),
		clip:   clip,
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time           { return h.t }
func (h *hostHAL) Audio() Audio         { return h.aud }
func (h *hostHAL) Clipboard() Clipboard { return h.clip }

// Slog returns the structured logger behind the host Logger.
func (h *hostHAL) Slog() *slog.Logger { return h.logger.log }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }
