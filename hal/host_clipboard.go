//go:build !tinygo

package hal

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

type hostClipboard struct{}

func newHostClipboard() Clipboard { return hostClipboard{} }

func (hostClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return s, nil
}

func (hostClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// MemClipboard is an in-process clipboard.
type MemClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemClipboard) WriteText(s string) error {
	c.mu.Lock()
	c.text = s
	c.mu.Unlock()
	return nil
}
