package proto

import "encoding/binary"

// MaxClipboardText is the longest clipboard text that fits a message.
const MaxClipboardText = 124

// ClipboardReadPayload encodes a MsgClipboardRead request; the reply
// capability travels in msg.Cap.
//
// Layout (little-endian):
//   - u32: requestID
func ClipboardReadPayload(requestID uint32) []byte {
	return WakePayload(requestID)
}

func DecodeClipboardReadPayload(b []byte) (requestID uint32, ok bool) {
	return DecodeWakePayload(b)
}

// ClipboardTextPayload encodes a request ID followed by clipboard text.
// It is used by MsgClipboardWrite and MsgClipboardReadResp.
//
// Layout (little-endian):
//   - u32: requestID
//   - bytes: UTF-8 text, truncated to MaxClipboardText
func ClipboardTextPayload(requestID uint32, text string) []byte {
	if len(text) > MaxClipboardText {
		text = text[:MaxClipboardText]
	}
	buf := make([]byte, 4+len(text))
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	copy(buf[4:], text)
	return buf
}

func DecodeClipboardTextPayload(b []byte) (requestID uint32, text string, ok bool) {
	if len(b) < 4 {
		return 0, "", false
	}
	return binary.LittleEndian.Uint32(b[0:4]), string(b[4:]), true
}

// ClipboardWriteRespPayload acknowledges a write.
func ClipboardWriteRespPayload(requestID uint32) []byte {
	return WakePayload(requestID)
}

func DecodeClipboardWriteRespPayload(b []byte) (requestID uint32, ok bool) {
	return DecodeWakePayload(b)
}
