package clipboard

import (
	"errors"
	"testing"

	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	clipsvc "sparkcalc/sparkos/services/clipboard"
)

type brokenClipboard struct{}

func (brokenClipboard) ReadText() (string, error) { return "", hal.ErrClipboardUnavailable }
func (brokenClipboard) WriteText(string) error    { return errors.New("xsel: exit status 1") }

func start(t *testing.T, clip hal.Clipboard) (*kernel.Context, *Client) {
	t.Helper()
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(clipsvc.New(ep.Restrict(kernel.RightRecv), clip))
	return kernel.NewTestContext(k, 1), New(ep.Restrict(kernel.RightSend))
}

func TestWriteThenRead(t *testing.T) {
	mem := &hal.MemClipboard{}
	ctx, c := start(t, mem)

	if err := c.Write(ctx, "-12.5"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if s, _ := mem.ReadText(); s != "-12.5" {
		t.Fatalf("host clipboard=%q", s)
	}
	got, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "-12.5" {
		t.Fatalf("Read=%q", got)
	}
}

func TestErrors(t *testing.T) {
	ctx, c := start(t, brokenClipboard{})

	if _, err := c.Read(ctx); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Read err=%v, want ErrUnsupported", err)
	}
	err := c.Write(ctx, "1")
	if err == nil || errors.Is(err, ErrUnsupported) {
		t.Fatalf("Write err=%v", err)
	}
}

func TestNilClipboard(t *testing.T) {
	ctx, c := start(t, nil)
	if _, err := c.Read(ctx); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Read err=%v", err)
	}
}
