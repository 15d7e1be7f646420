//go:build !tinygo && !cgo

package hal

import "sync"

// hostAudio discards samples when no audio backend is available.
type hostAudio struct {
	mu      sync.Mutex
	started bool
	written int
}

func newHostAudio() Audio { return &hostAudio{} }

func (a *hostAudio) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return ErrNotImplemented
	}
	a.mu.Lock()
	a.started = true
	a.mu.Unlock()
	return nil
}

func (a *hostAudio) Stop() error {
	a.mu.Lock()
	a.started = false
	a.mu.Unlock()
	return nil
}

func (a *hostAudio) SetVolume(uint8) {}

func (a *hostAudio) WriteSamples(samples []int16) {
	a.mu.Lock()
	if a.started {
		a.written += len(samples)
	}
	a.mu.Unlock()
}

func (a *hostAudio) PendingSamples() int { return 0 }
