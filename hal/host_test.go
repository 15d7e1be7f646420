//go:build !tinygo

package hal

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestRGB565RoundTrip(t *testing.T) {
	p := RGB565(0xFF, 0xFF, 0xFF)
	if p != 0xFFFF {
		t.Fatalf("white=%#x", p)
	}
	r, g, b := RGB888(p)
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("RGB888(white)=%d,%d,%d", r, g, b)
	}
}

func TestFillRectClips(t *testing.T) {
	fb := newHostFramebuffer(4, 4)
	FillRectRGB565(fb, -2, -2, 4, 4, 0xABCD)
	buf := fb.Buffer()
	if buf[0] != 0xCD || buf[1] != 0xAB {
		t.Fatalf("pixel(0,0)=%#x %#x", buf[0], buf[1])
	}
	off := 1*fb.StrideBytes() + 1*2
	if buf[off] != 0xCD {
		t.Fatalf("pixel(1,1) not filled")
	}
	off = 2*fb.StrideBytes() + 2*2
	if buf[off] != 0 {
		t.Fatalf("pixel(2,2) filled outside rect")
	}
}

func TestHostLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := &hostLogger{log: slog.New(newLogHandler(&buf, slog.LevelInfo, false))}
	l.Log(slog.LevelDebug, "hidden")
	l.WriteLineString("calc: 2 + 3 = 5\n")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked: %q", out)
	}
	if !strings.Contains(out, `msg="calc: 2 + 3 = 5"`) {
		t.Fatalf("missing info line: %q", out)
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("task.id"); got != "TASK_ID" {
		t.Fatalf("toJournalKey=%q", got)
	}
}

func TestHostTimeClock(t *testing.T) {
	ht := newHostTime()
	fixed := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	ht.setClock(func() time.Time { return fixed })
	if !ht.Now().Equal(fixed) {
		t.Fatalf("Now=%v", ht.Now())
	}
	ht.step(1)
	select {
	case seq := <-ht.Ticks():
		if seq != 1 {
			t.Fatalf("first tick=%d", seq)
		}
	default:
		t.Fatal("no tick after first step")
	}
}

func TestKeyboardInjectDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < cap(k.ch); i++ {
		if !k.inject(KeyEvent{Press: true, Rune: '1'}) {
			t.Fatalf("inject %d failed", i)
		}
	}
	if k.inject(KeyEvent{Press: true, Rune: '2'}) {
		t.Fatal("inject into full queue succeeded")
	}
}

func TestMemClipboard(t *testing.T) {
	var c MemClipboard
	if err := c.WriteText("42"); err != nil {
		t.Fatal(err)
	}
	if s, _ := c.ReadText(); s != "42" {
		t.Fatalf("ReadText=%q", s)
	}
}
