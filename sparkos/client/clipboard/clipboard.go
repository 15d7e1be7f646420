package clipboard

import (
	"errors"
	"fmt"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

var (
	// ErrUnsupported reports a host without a clipboard.
	ErrUnsupported = errors.New("clipboard: unsupported")
	ErrClosed      = errors.New("clipboard: reply endpoint closed")
)

const sendRetryLimit = 500

// Client talks to the clipboard service. It is owned by a single task.
type Client struct {
	clipCap kernel.Capability
	reply   kernel.Capability
	nextID  uint32
}

func New(clipCap kernel.Capability) *Client {
	return &Client{clipCap: clipCap}
}

// Read returns the clipboard text.
func (c *Client) Read(ctx *kernel.Context) (string, error) {
	id, err := c.send(ctx, proto.MsgClipboardRead, proto.ClipboardReadPayload)
	if err != nil {
		return "", err
	}
	var text string
	err = c.await(ctx, id, proto.MsgClipboardReadResp, func(p []byte) (uint32, bool) {
		reqID, t, ok := proto.DecodeClipboardTextPayload(p)
		text = t
		return reqID, ok
	})
	return text, err
}

// Write replaces the clipboard text. Text longer than proto.MaxClipboardText is truncated.
func (c *Client) Write(ctx *kernel.Context, text string) error {
	id, err := c.send(ctx, proto.MsgClipboardWrite, func(id uint32) []byte { return proto.ClipboardTextPayload(id, text) })
	if err != nil {
		return err
	}
	return c.await(ctx, id, proto.MsgClipboardWriteResp, proto.DecodeClipboardWriteRespPayload)
}

func (c *Client) send(ctx *kernel.Context, kind proto.Kind, payload func(uint32) []byte) (uint32, error) {
	if ctx == nil {
		return 0, fmt.Errorf("clipboard client: nil context for %s", kind)
	}
	if !c.clipCap.Valid() {
		return 0, fmt.Errorf("clipboard client: missing capability for %s", kind)
	}
	if !c.reply.Valid() {
		c.reply = ctx.NewEndpoint(kernel.RightSend | kernel.RightRecv)
		if !c.reply.Valid() {
			return 0, fmt.Errorf("clipboard client: allocate reply endpoint")
		}
	}
	c.nextID++
	if c.nextID == 0 {
		c.nextID++
	}
	id := c.nextID
	res := ctx.SendToCapRetry(c.clipCap, uint16(kind), payload(id), c.reply.Restrict(kernel.RightSend), sendRetryLimit)
	if err := res.Err(); err != nil {
		return 0, fmt.Errorf("clipboard client %s: %w", kind, err)
	}
	return id, nil
}

func (c *Client) await(ctx *kernel.Context, id uint32, want proto.Kind, decode func([]byte) (uint32, bool)) error {
	for {
		msg, ok := ctx.Recv(c.reply.Restrict(kernel.RightRecv))
		if !ok {
			return ErrClosed
		}
		switch proto.Kind(msg.Kind) {
		case want:
			reqID, ok := decode(msg.Payload())
			if !ok {
				return fmt.Errorf("clipboard client: bad %s payload", want)
			}
			if reqID == id {
				return nil
			}
		case proto.MsgError:
			code, ref, reqID, detail, ok := proto.DecodeErrorPayload(msg.Payload())
			if !ok {
				return fmt.Errorf("clipboard client: bad error payload")
			}
			if reqID != id && reqID != 0 {
				continue
			}
			if code == proto.ErrUnsupported {
				return ErrUnsupported
			}
			return fmt.Errorf("clipboard %s: %s: %s", ref, code, detail)
		}
	}
}
