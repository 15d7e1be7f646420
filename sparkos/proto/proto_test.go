package proto

import (
	"strings"
	"testing"
)

func TestSleepPayload(t *testing.T) {
	id, dt, ok := DecodeSleepPayload(SleepPayload(7, 250))
	if !ok || id != 7 || dt != 250 {
		t.Fatalf("got (%d, %d, %v)", id, dt, ok)
	}
	if _, _, ok := DecodeSleepPayload([]byte{1, 2, 3}); ok {
		t.Fatal("short payload decoded")
	}
}

func TestClockNowRespPayload(t *testing.T) {
	id, ns, off, ok := DecodeClockNowRespPayload(ClockNowRespPayload(3, -1_500_000_000, -3*3600))
	if !ok || id != 3 || ns != -1_500_000_000 || off != -3*3600 {
		t.Fatalf("got (%d, %d, %d, %v)", id, ns, off, ok)
	}
}

func TestClipboardTextPayloadTruncates(t *testing.T) {
	long := strings.Repeat("9", MaxClipboardText+20)
	b := ClipboardTextPayload(9, long)
	if len(b) != 4+MaxClipboardText {
		t.Fatalf("payload length = %d, want %d", len(b), 4+MaxClipboardText)
	}
	id, text, ok := DecodeClipboardTextPayload(b)
	if !ok || id != 9 || text != long[:MaxClipboardText] {
		t.Fatalf("got (%d, %d bytes, %v)", id, len(text), ok)
	}
}

func TestPointerPayload(t *testing.T) {
	x, y, btn, press, ok := DecodePointerPayload(PointerPayload(-4, 319, 0, true))
	if !ok || x != -4 || y != 319 || btn != 0 || !press {
		t.Fatalf("got (%d, %d, %d, %v, %v)", x, y, btn, press, ok)
	}
}

func TestLogLinePayload(t *testing.T) {
	level, line, ok := DecodeLogLinePayload(LogLinePayload(LogWarn, []byte("calc: 1 + 1 = 2")))
	if !ok || level != LogWarn || string(line) != "calc: 1 + 1 = 2" {
		t.Fatalf("got (%s, %q, %v)", level, line, ok)
	}
	if _, _, ok := DecodeLogLinePayload([]byte{9, 'x'}); ok {
		t.Fatal("bad level decoded")
	}
}

func TestErrorPayload(t *testing.T) {
	code, ref, id, detail, ok := DecodeErrorPayload(ErrorPayload(ErrUnsupported, MsgClipboardRead, 12, []byte("no xclip")))
	if !ok || code != ErrUnsupported || ref != MsgClipboardRead || id != 12 || string(detail) != "no xclip" {
		t.Fatalf("got (%s, %s, %d, %q, %v)", code, ref, id, detail, ok)
	}
}

func TestAudioPayloads(t *testing.T) {
	on, ok := DecodeAudioSetEnabledPayload(AudioSetEnabledPayload(true))
	if !ok || !on {
		t.Fatalf("set enabled = (%v, %v)", on, ok)
	}
	enabled, vol, ok := DecodeAudioStatusPayload(AudioStatusPayload(true, 200))
	if !ok || !enabled || vol != 200 {
		t.Fatalf("status = (%v, %d, %v)", enabled, vol, ok)
	}
}
