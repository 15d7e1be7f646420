package kernel

import (
	"testing"
	"time"
)

func TestMessagePayloadClampsLen(t *testing.T) {
	var msg Message
	msg.Len = MaxMessageBytes + 10
	if got := len(msg.Payload()); got != MaxMessageBytes {
		t.Fatalf("payload length = %d, want %d", got, MaxMessageBytes)
	}
}

// fullEndpoint returns a context and a send capability whose queue is full.
func fullEndpoint(t *testing.T) (*Kernel, *Context, Capability, Capability) {
	t.Helper()
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	if !ep.Valid() {
		t.Fatal("expected valid capability")
	}
	ctx := &Context{k: k, taskID: 1}
	to := ep.Restrict(RightSend)
	for i := 0; i < mailboxSlots; i++ {
		if res := ctx.SendToCapResult(to, 1, []byte("x"), Capability{}); res != SendOK {
			t.Fatalf("filling queue: %s", res)
		}
	}
	return k, ctx, to, ep.Restrict(RightRecv)
}

func tickLater(k *Kernel) {
	go func() {
		for i := uint64(1); i <= 10; i++ {
			k.TickTo(i)
			time.Sleep(time.Millisecond)
		}
	}()
}

func TestSendToCapRetryZeroLimitDoesNotBlock(t *testing.T) {
	_, ctx, to, _ := fullEndpoint(t)
	if res := ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 0); res != SendErrQueueFull {
		t.Fatalf("got %s, want SendErrQueueFull", res)
	}
}

func TestSendToCapRetrySucceedsAfterDrain(t *testing.T) {
	k, ctx, to, from := fullEndpoint(t)
	ch, ok := ctx.RecvChan(from)
	if !ok {
		t.Fatal("expected recv channel")
	}

	resultCh := make(chan SendResult, 1)
	go func() {
		resultCh <- ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 5)
	}()

	<-ch
	tickLater(k)

	select {
	case res := <-resultCh:
		if res != SendOK {
			t.Fatalf("got %s, want SendOK after drain", res)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for send retry")
	}
}

func TestSendToCapRetryRespectsLimit(t *testing.T) {
	k, ctx, to, _ := fullEndpoint(t)

	resultCh := make(chan SendResult, 1)
	go func() {
		resultCh <- ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 1)
	}()
	tickLater(k)

	select {
	case res := <-resultCh:
		if res != SendErrQueueFull {
			t.Fatalf("got %s, want SendErrQueueFull", res)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for send retry")
	}
}
