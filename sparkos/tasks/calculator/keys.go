package calculator

import "unicode/utf8"

type keyKind uint8

const (
	keyRune keyKind = iota
	keyEnter
	keyBackspace
	keyEsc
	keyDelete
	keyCtrl
	keyIgnored
)

type key struct {
	kind keyKind
	r    rune
	ctrl byte
}

// nextKey decodes one key from VT100 input. ok=false means b holds an
// incomplete sequence and more bytes are needed.
func nextKey(b []byte) (consumed int, k key, ok bool) {
	if len(b) == 0 {
		return 0, key{}, false
	}

	if b[0] == 0x1b {
		return parseEscapeKey(b)
	}

	switch b[0] {
	case '\r', '\n':
		return 1, key{kind: keyEnter}, true
	case 0x7f, 0x08:
		return 1, key{kind: keyBackspace}, true
	}

	if b[0] < 0x20 {
		return 1, key{kind: keyCtrl, ctrl: b[0]}, true
	}
	if !utf8.FullRune(b) {
		return 0, key{}, false
	}
	r, sz := utf8.DecodeRune(b)
	if r == utf8.RuneError && sz == 1 {
		return 1, key{kind: keyIgnored}, true
	}
	return sz, key{kind: keyRune, r: r}, true
}

func parseEscapeKey(b []byte) (consumed int, k key, ok bool) {
	if len(b) < 2 || b[1] != '[' {
		return 1, key{kind: keyEsc}, true
	}
	if len(b) < 3 {
		return 0, key{}, false
	}

	switch b[2] {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		return 3, key{kind: keyIgnored}, true
	case '3':
		if len(b) < 4 {
			return 0, key{}, false
		}
		if b[3] == '~' {
			return 4, key{kind: keyDelete}, true
		}
	}

	// Unknown CSI: skip to the final byte.
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			return i + 1, key{kind: keyIgnored}, true
		}
	}
	return 0, key{}, false
}
