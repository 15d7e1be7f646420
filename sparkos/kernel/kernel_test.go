package kernel

import (
	"testing"
	"time"
)

type funcTask func(*Context)

func (f funcTask) Run(ctx *Context) { f(ctx) }

func TestAddTaskDeliversMessages(t *testing.T) {
	k := New()
	in := k.NewEndpoint(RightSend | RightRecv)
	out := k.NewEndpoint(RightSend | RightRecv)

	k.AddTask(funcTask(func(ctx *Context) {
		for {
			msg, ok := ctx.Recv(in.Restrict(RightRecv))
			if !ok {
				return
			}
			ctx.SendToCapRetry(out.Restrict(RightSend), msg.Kind+1, msg.Payload(), Capability{}, 10)
		}
	}))

	ctx := &Context{k: k}
	if res := ctx.SendToCapResult(in.Restrict(RightSend), 41, []byte("ping"), Capability{}); res != SendOK {
		t.Fatalf("send: %s", res)
	}

	ch, _ := ctx.RecvChan(out.Restrict(RightRecv))
	select {
	case msg := <-ch:
		if msg.Kind != 42 || string(msg.Payload()) != "ping" {
			t.Fatalf("got kind=%d payload=%q", msg.Kind, msg.Payload())
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reply")
	}
	k.CloseEndpoint(in)
}

func TestWaitTickReturnsNewTick(t *testing.T) {
	k := New()
	ctx := &Context{k: k}

	done := make(chan uint64, 1)
	go func() { done <- ctx.WaitTick(0) }()

	k.TickTo(5)
	k.TickTo(3)

	select {
	case got := <-done:
		if got != 5 {
			t.Fatalf("WaitTick = %d, want 5", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tick")
	}
	if got := ctx.NowTick(); got != 5 {
		t.Fatalf("NowTick = %d, want 5", got)
	}
}

func TestTaskPanicIsReported(t *testing.T) {
	got := make(chan PanicInfo, 1)
	SetPanicHandler(func(info PanicInfo) { got <- info })

	k := New()
	k.AddTask(funcTask(func(*Context) {}))
	id := k.AddTask(funcTask(func(*Context) { panic("boom") }))

	select {
	case info := <-got:
		if info.TaskID != id || info.Value != "boom" {
			t.Fatalf("panic info = %+v", info)
		}
		if len(info.Stack) == 0 {
			t.Fatal("expected a stack")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for panic handler")
	}
	if !InPanicMode() {
		t.Fatal("expected panic mode")
	}
}
