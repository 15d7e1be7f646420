package hal

import (
	"fmt"

	"github.com/google/shlex"
)

var namedKeys = map[string]KeyEvent{
	"Enter":     {Code: KeyEnter, Press: true},
	"Escape":    {Code: KeyEscape, Press: true},
	"Backspace": {Code: KeyBackspace, Press: true},
	"Delete":    {Code: KeyDelete, Press: true},
	"CtrlC":     {Press: true, Rune: 0x03},
	"CtrlV":     {Press: true, Rune: 0x16},
}

// ParseKeyScript splits s into shell words and turns each into key presses.
//
// A word naming a key (Enter, Escape, Backspace, Delete, CtrlC, CtrlV)
// becomes that key; any other word is typed rune by rune.
func ParseKeyScript(s string) ([]KeyEvent, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("key script: %w", err)
	}
	var out []KeyEvent
	for _, w := range words {
		if ev, ok := namedKeys[w]; ok {
			out = append(out, ev)
			continue
		}
		for _, r := range w {
			out = append(out, KeyEvent{Press: true, Rune: r})
		}
	}
	return out, nil
}
