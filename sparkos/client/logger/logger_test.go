package logger

import (
	"strings"
	"testing"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

func TestLoggerPrefixAndLevel(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := kernel.NewTestContext(k, 1)

	l := New(ctx, ep.Restrict(kernel.RightSend), "calc: ")
	l.Infof("%s = %s", "2 + 3", "5")

	msg, ok := ctx.TryRecv(ep.Restrict(kernel.RightRecv))
	if !ok {
		t.Fatal("no log message")
	}
	level, line, ok := proto.DecodeLogLinePayload(msg.Payload())
	if !ok || level != proto.LogInfo || string(line) != "calc: 2 + 3 = 5" {
		t.Fatalf("got level=%v line=%q ok=%v", level, line, ok)
	}
}

func TestLogTruncates(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := kernel.NewTestContext(k, 1)

	if res := Log(ctx, ep.Restrict(kernel.RightSend), proto.LogWarn, strings.Repeat("x", 500)); res != kernel.SendOK {
		t.Fatalf("Log: %s", res)
	}
	msg, _ := ctx.TryRecv(ep.Restrict(kernel.RightRecv))
	if int(msg.Len) != kernel.MaxMessageBytes {
		t.Fatalf("len=%d", msg.Len)
	}
}

func TestLogRetryGivesUp(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := kernel.NewTestContext(k, 1)
	send := ep.Restrict(kernel.RightSend)
	for Log(ctx, send, proto.LogInfo, "fill") == kernel.SendOK {
	}
	if err := LogRetry(ctx, send, proto.LogInfo, "x", 0); err == nil {
		t.Fatal("expected queue full error")
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	l.Infof("ignored")
}
