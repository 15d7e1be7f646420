package kernel

import "testing"

func TestContextRecvClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	ch, ok := ctx.RecvChan(cap.Restrict(RightRecv))
	if !ok || ch == nil {
		t.Fatal("expected recv channel")
	}

	k.CloseEndpoint(cap)

	if _, ok := ctx.Recv(cap.Restrict(RightRecv)); ok {
		t.Fatal("expected Recv to fail after close")
	}
	if _, ok := ctx.TryRecv(cap.Restrict(RightRecv)); ok {
		t.Fatal("expected TryRecv to fail after close")
	}
}

func TestContextSendClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	k.CloseEndpoint(cap)

	res := ctx.SendToCapResult(cap.Restrict(RightSend), 1, []byte("x"), Capability{})
	if res != SendErrNoEndpoint {
		t.Fatalf("expected SendErrNoEndpoint, got %s", res)
	}
}

func TestRecvRequiresRecvRight(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if _, ok := ctx.RecvChan(cap.Restrict(RightSend)); ok {
		t.Fatal("expected send-only capability to be refused")
	}
	if res := ctx.SendToCapResult(cap.Restrict(RightRecv), 1, nil, Capability{}); res != SendErrToNoSendRight {
		t.Fatalf("expected SendErrToNoSendRight, got %s", res)
	}
}

func TestSendTransfersCapability(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	reply := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if res := ctx.SendToCapResult(ep.Restrict(RightSend), 7, []byte("hi"), reply.Restrict(RightSend)); res != SendOK {
		t.Fatalf("send: %s", res)
	}
	msg, ok := ctx.TryRecv(ep.Restrict(RightRecv))
	if !ok {
		t.Fatal("expected a message")
	}
	if msg.Kind != 7 || string(msg.Payload()) != "hi" {
		t.Fatalf("got kind=%d payload=%q", msg.Kind, msg.Payload())
	}
	if !msg.Cap.Valid() || msg.Cap.canRecv() {
		t.Fatalf("transferred capability rights = %d, want send only", msg.Cap.rights)
	}
}

func TestSendPayloadTooLarge(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	res := ctx.SendToCapResult(ep, 1, make([]byte, MaxMessageBytes+1), Capability{})
	if res != SendErrPayloadTooLarge {
		t.Fatalf("expected SendErrPayloadTooLarge, got %s", res)
	}
}
