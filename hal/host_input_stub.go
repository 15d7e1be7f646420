//go:build !tinygo && !cgo

package hal

// No device polling without the window backend; headless runs inject events.
func (k *hostKeyboard) poll() {}

func (p *hostPointer) poll() {}
