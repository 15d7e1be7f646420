package audio

import (
	"sync"
	"testing"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

type fakeAudio struct {
	mu      sync.Mutex
	started int
	written int
	stopped int
}

func (a *fakeAudio) Start(uint32) error {
	a.mu.Lock()
	a.started++
	a.mu.Unlock()
	return nil
}

func (a *fakeAudio) Stop() error {
	a.mu.Lock()
	a.stopped++
	a.mu.Unlock()
	return nil
}

func (a *fakeAudio) SetVolume(uint8) {}

func (a *fakeAudio) WriteSamples(s []int16) {
	a.mu.Lock()
	a.written += len(s)
	a.mu.Unlock()
}

func (a *fakeAudio) PendingSamples() int { return 0 }

func (a *fakeAudio) snapshot() (started, written int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started, a.written
}

func setup(t *testing.T, enabled bool) (*kernel.Context, kernel.Capability, kernel.Capability, *fakeAudio) {
	t.Helper()
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	reply := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := &fakeAudio{}
	k.AddTask(New(ep.Restrict(kernel.RightRecv), out, enabled))
	return kernel.NewTestContext(k, 1), ep.Restrict(kernel.RightSend), reply, out
}

func status(t *testing.T, ctx *kernel.Context, svc, reply kernel.Capability, kind proto.Kind, payload []byte) bool {
	t.Helper()
	ctx.SendToCap(svc, uint16(kind), payload, reply.Restrict(kernel.RightSend))
	msg, ok := ctx.Recv(reply.Restrict(kernel.RightRecv))
	if !ok || proto.Kind(msg.Kind) != proto.MsgAudioStatus {
		t.Fatalf("reply kind=%d ok=%v", msg.Kind, ok)
	}
	on, _, ok := proto.DecodeAudioStatusPayload(msg.Payload())
	if !ok {
		t.Fatal("bad status payload")
	}
	return on
}

func TestClickWhenEnabled(t *testing.T) {
	ctx, svc, reply, out := setup(t, true)
	ctx.SendTo(svc, uint16(proto.MsgAudioClick), nil)
	// The status round trip orders after the click.
	if !status(t, ctx, svc, reply, proto.MsgAudioStatus, nil) {
		t.Fatal("audio should be enabled")
	}
	started, written := out.snapshot()
	if started != 1 || written != SampleRate*clickMillis/1000 {
		t.Fatalf("started=%d written=%d", started, written)
	}
}

func TestToggleSilences(t *testing.T) {
	ctx, svc, reply, out := setup(t, true)
	if status(t, ctx, svc, reply, proto.MsgAudioSetEnabled, proto.AudioSetEnabledPayload(false)) {
		t.Fatal("audio should be disabled")
	}
	ctx.SendTo(svc, uint16(proto.MsgAudioClick), nil)
	status(t, ctx, svc, reply, proto.MsgAudioStatus, nil)
	if _, written := out.snapshot(); written != 0 {
		t.Fatalf("written=%d while disabled", written)
	}
}

func TestClickSamplesDecay(t *testing.T) {
	s := clickSamples(8000)
	if len(s) == 0 {
		t.Fatal("empty click")
	}
	var head, tail int
	for i := 0; i < len(s)/4; i++ {
		head = max(head, abs(int(s[i])))
		tail = max(tail, abs(int(s[len(s)-1-i])))
	}
	if tail >= head {
		t.Fatalf("no decay: head=%d tail=%d", head, tail)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
