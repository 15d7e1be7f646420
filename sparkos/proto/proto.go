package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgSleep
	MsgWake
	MsgError
	MsgTermInput
	MsgPointer
	MsgClockNow
	MsgClockNowResp
	MsgAudioClick
	MsgAudioSetEnabled
	MsgAudioStatus
	MsgClipboardRead
	MsgClipboardReadResp
	MsgClipboardWrite
	MsgClipboardWriteResp
)

// ErrCode is a generic error category for MsgError responses.
type ErrCode uint16

const (
	ErrUnknown ErrCode = iota
	ErrBadMessage
	ErrUnauthorized
	ErrNotFound
	ErrBusy
	ErrOverflow
	ErrTooLarge
	ErrInternal
	ErrUnsupported
)

func (c ErrCode) String() string {
	switch c {
	case ErrUnknown:
		return "unknown"
	case ErrBadMessage:
		return "bad_message"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrNotFound:
		return "not_found"
	case ErrBusy:
		return "busy"
	case ErrOverflow:
		return "overflow"
	case ErrTooLarge:
		return "too_large"
	case ErrInternal:
		return "internal"
	case ErrUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgSleep:
		return "sleep"
	case MsgWake:
		return "wake"
	case MsgError:
		return "error"
	case MsgTermInput:
		return "term_input"
	case MsgPointer:
		return "pointer"
	case MsgClockNow:
		return "clock_now"
	case MsgClockNowResp:
		return "clock_now_resp"
	case MsgAudioClick:
		return "audio_click"
	case MsgAudioSetEnabled:
		return "audio_set_enabled"
	case MsgAudioStatus:
		return "audio_status"
	case MsgClipboardRead:
		return "clipboard_read"
	case MsgClipboardReadResp:
		return "clipboard_read_resp"
	case MsgClipboardWrite:
		return "clipboard_write"
	case MsgClipboardWriteResp:
		return "clipboard_write_resp"
	default:
		return "unknown"
	}
}
