package audio

import (
	"fmt"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

const retryLimit = 500

type Client struct {
	audioCap kernel.Capability
}

func New(audioCap kernel.Capability) *Client {
	return &Client{audioCap: audioCap}
}

// Click plays one key click. It never blocks; a full queue drops the click.
func (c *Client) Click(ctx *kernel.Context) error {
	if err := c.check(ctx, proto.MsgAudioClick); err != nil {
		return err
	}
	res := ctx.SendToCapResult(c.audioCap, uint16(proto.MsgAudioClick), nil, kernel.Capability{})
	if res == kernel.SendErrQueueFull {
		return nil
	}
	return res.Err()
}

// SetEnabled switches click feedback on or off.
func (c *Client) SetEnabled(ctx *kernel.Context, on bool) error {
	return c.send(ctx, proto.MsgAudioSetEnabled, proto.AudioSetEnabledPayload(on), kernel.Capability{})
}

func (c *Client) check(ctx *kernel.Context, kind proto.Kind) error {
	if ctx == nil {
		return fmt.Errorf("audio client: nil context for %s", kind)
	}
	if !c.audioCap.Valid() {
		return fmt.Errorf("audio client: missing capability for %s", kind)
	}
	return nil
}

func (c *Client) send(ctx *kernel.Context, kind proto.Kind, payload []byte, xfer kernel.Capability) error {
	if err := c.check(ctx, kind); err != nil {
		return err
	}
	res := ctx.SendToCapRetry(c.audioCap, uint16(kind), payload, xfer, retryLimit)
	if err := res.Err(); err != nil {
		return fmt.Errorf("audio client send %s: %w", kind, err)
	}
	return nil
}
