package proto

// AudioSetEnabledPayload turns click feedback on or off.
//
// Payload format:
//
//	b[0] == 0 => off
//	b[0] != 0 => on
func AudioSetEnabledPayload(on bool) []byte {
	if on {
		return []byte{1}
	}
	return []byte{0}
}

func DecodeAudioSetEnabledPayload(b []byte) (on bool, ok bool) {
	if len(b) != 1 {
		return false, false
	}
	return b[0] != 0, true
}

// AudioStatusPayload reports the click state.
//
// Layout:
//   - u8: enabled
//   - u8: volume
func AudioStatusPayload(enabled bool, volume uint8) []byte {
	buf := []byte{0, volume}
	if enabled {
		buf[0] = 1
	}
	return buf
}

func DecodeAudioStatusPayload(b []byte) (enabled bool, volume uint8, ok bool) {
	if len(b) != 2 {
		return false, 0, false
	}
	return b[0] != 0, b[1], true
}
