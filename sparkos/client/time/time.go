package timeclient

import (
	"errors"
	"fmt"
	"time"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// ErrClosed is returned when the reply endpoint closes mid-request.
var ErrClosed = errors.New("time client: reply endpoint closed")

const sendRetryLimit = 500

// Client talks to the time service. It is owned by a single task.
type Client struct {
	timeCap kernel.Capability
	reply   kernel.Capability
	nextID  uint32
}

func New(timeCap kernel.Capability) *Client {
	return &Client{timeCap: timeCap}
}

// Sleep blocks until dt ticks have elapsed on the time service.
func (c *Client) Sleep(ctx *kernel.Context, dt uint32) error {
	id, err := c.request(ctx, proto.MsgSleep, func(id uint32) []byte { return proto.SleepPayload(id, dt) })
	if err != nil {
		return err
	}
	_, err = c.await(ctx, id, proto.MsgWake, func(p []byte) (uint32, bool) { return proto.DecodeWakePayload(p) })
	return err
}

// Now returns the wall clock as seen by the time service, in its zone offset.
func (c *Client) Now(ctx *kernel.Context) (time.Time, error) {
	id, err := c.request(ctx, proto.MsgClockNow, proto.ClockNowPayload)
	if err != nil {
		return time.Time{}, err
	}
	var (
		nanos  int64
		offset int32
	)
	_, err = c.await(ctx, id, proto.MsgClockNowResp, func(p []byte) (uint32, bool) {
		reqID, n, off, ok := proto.DecodeClockNowRespPayload(p)
		nanos, offset = n, off
		return reqID, ok
	})
	if err != nil {
		return time.Time{}, err
	}
	zone := time.FixedZone("", int(offset))
	return time.Unix(0, nanos).In(zone), nil
}

func (c *Client) request(ctx *kernel.Context, kind proto.Kind, payload func(uint32) []byte) (uint32, error) {
	if ctx == nil {
		return 0, fmt.Errorf("time client: nil context for %s", kind)
	}
	if !c.timeCap.Valid() {
		return 0, fmt.Errorf("time client: missing capability for %s", kind)
	}
	if !c.reply.Valid() {
		c.reply = ctx.NewEndpoint(kernel.RightSend | kernel.RightRecv)
		if !c.reply.Valid() {
			return 0, fmt.Errorf("time client: allocate reply endpoint")
		}
	}

	c.nextID++
	if c.nextID == 0 {
		c.nextID++
	}
	id := c.nextID
	res := ctx.SendToCapRetry(c.timeCap, uint16(kind), payload(id), c.reply.Restrict(kernel.RightSend), sendRetryLimit)
	if err := res.Err(); err != nil {
		return 0, fmt.Errorf("time client %s: %w", kind, err)
	}
	return id, nil
}

// await drops stale replies until the one for id arrives.
func (c *Client) await(ctx *kernel.Context, id uint32, want proto.Kind, decode func([]byte) (uint32, bool)) (kernel.Message, error) {
	for {
		msg, ok := ctx.Recv(c.reply.Restrict(kernel.RightRecv))
		if !ok {
			return kernel.Message{}, ErrClosed
		}
		switch proto.Kind(msg.Kind) {
		case want:
			reqID, ok := decode(msg.Payload())
			if !ok {
				return msg, fmt.Errorf("time client: bad %s payload", want)
			}
			if reqID == id {
				return msg, nil
			}
		case proto.MsgError:
			code, ref, reqID, _, ok := proto.DecodeErrorPayload(msg.Payload())
			if !ok {
				return msg, fmt.Errorf("time client: bad error payload")
			}
			if reqID == id || reqID == 0 {
				return msg, fmt.Errorf("time error: code=%s ref=%s", code, ref)
			}
		}
	}
}
