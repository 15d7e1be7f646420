package proto

// LogLevel mirrors slog levels on the wire.
type LogLevel uint8

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarn:
		return "warn"
	case LogError:
		return "error"
	default:
		return "info"
	}
}

// LogLinePayload encodes a MsgLogLine payload.
//
// Layout:
//   - u8: level
//   - bytes: UTF-8 text without a trailing newline
//
// Delivery is best-effort; callers may drop on overflow.
func LogLinePayload(level LogLevel, b []byte) []byte {
	buf := make([]byte, 1+len(b))
	buf[0] = byte(level)
	copy(buf[1:], b)
	return buf
}

// DecodeLogLinePayload decodes a LogLinePayload.
func DecodeLogLinePayload(b []byte) (level LogLevel, line []byte, ok bool) {
	if len(b) < 1 || LogLevel(b[0]) > LogError {
		return 0, nil, false
	}
	return LogLevel(b[0]), b[1:], true
}
