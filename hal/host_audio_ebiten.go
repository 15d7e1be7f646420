//go:build !tinygo && cgo

package hal

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostAudio plays mono samples through Ebiten's audio package.
type hostAudio struct {
	mu   sync.Mutex
	cond *sync.Cond

	ctx        *audio.Context
	player     *audio.Player
	sampleRate uint32

	buf []int16
	r   int
	w   int
	n   int

	closed bool
	vol    uint8
}

func newHostAudio() Audio {
	a := &hostAudio{vol: 0xFF, closed: true}
	a.cond = sync.NewCond(&a.mu)
	return a
}

func (a *hostAudio) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("host audio: invalid sample rate")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		if c := audio.CurrentContext(); c != nil {
			a.ctx = c
		} else {
			a.ctx = audio.NewContext(int(sampleRate))
		}
	}
	if a.ctx.SampleRate() != int(sampleRate) {
		return errors.New("host audio: ebiten audio context sample rate is fixed")
	}
	a.sampleRate = sampleRate

	if a.player != nil {
		_ = a.player.Close()
		a.player = nil
	}

	ring := int(sampleRate / 10) // ~100ms buffer.
	ring = max(ring, 2048)
	ring = min(ring, 16384)
	a.buf = make([]int16, ring)
	a.r, a.w, a.n = 0, 0, 0
	a.closed = false

	p, err := a.ctx.NewPlayer(&hostAudioReader{a: a})
	if err != nil {
		return err
	}
	p.SetBufferSize(50 * time.Millisecond)
	p.SetVolume(float64(a.vol) / 255.0)
	p.Play()
	a.player = p
	return nil
}

func (a *hostAudio) Stop() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.n, a.r, a.w = 0, 0, 0
	a.cond.Broadcast()
	p := a.player
	a.player = nil
	a.mu.Unlock()

	if p != nil {
		return p.Close()
	}
	return nil
}

func (a *hostAudio) SetVolume(vol uint8) {
	a.mu.Lock()
	a.vol = vol
	p := a.player
	a.mu.Unlock()

	if p != nil {
		p.SetVolume(float64(vol) / 255.0)
	}
}

func (a *hostAudio) WriteSamples(samples []int16) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, s := range samples {
		for !a.closed && a.n == len(a.buf) {
			a.cond.Wait()
		}
		if a.closed || len(a.buf) == 0 {
			return
		}
		a.buf[a.w] = s
		a.w++
		if a.w >= len(a.buf) {
			a.w = 0
		}
		a.n++
	}
}

func (a *hostAudio) PendingSamples() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.n
}

type hostAudioReader struct {
	a *hostAudio
}

// Read emits 16-bit little-endian stereo frames, padding with silence when
// nothing is queued.
func (r *hostAudioReader) Read(p []byte) (int, error) {
	a := r.a
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return 0, io.EOF
	}
	for i := 0; i+3 < len(p); i += 4 {
		var s int16
		if a.n > 0 {
			s = a.buf[a.r]
			a.r++
			if a.r >= len(a.buf) {
				a.r = 0
			}
			a.n--
		}
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	a.cond.Broadcast()
	return len(p) &^ 3, nil
}
