package proto

import "encoding/binary"

// PointerPayload encodes a pointer button transition in framebuffer coordinates.
//
// Layout (little-endian):
//   - i16: x
//   - i16: y
//   - u8: button (0 = primary)
//   - u8: flags (bit0 = press)
func PointerPayload(x, y int16, button uint8, press bool) []byte {
	buf := make([]byte, 6)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(x))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(y))
	buf[4] = button
	if press {
		buf[5] = 1
	}
	return buf
}

func DecodePointerPayload(b []byte) (x, y int16, button uint8, press bool, ok bool) {
	if len(b) != 6 {
		return 0, 0, 0, false, false
	}
	x = int16(binary.LittleEndian.Uint16(b[0:2]))
	y = int16(binary.LittleEndian.Uint16(b[2:4]))
	return x, y, b[4], b[5]&1 != 0, true
}
