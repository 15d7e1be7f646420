package calculator

import (
	"fmt"

	"sparkcalc/sparkos/calc"
)

type button struct {
	id    string
	label string

	col, row int
	span     int

	x, y, w, h int
}

const (
	keypadCols = 4
	keypadRows = 5
)

// keypad is laid out row by row; "0" spans two columns.
var keypad = []button{
	{id: "ac", label: "AC"}, {id: "ce", label: "CE"}, {id: "percent", label: "%"}, {id: "division", label: "/"},
	{id: "7", label: "7"}, {id: "8", label: "8"}, {id: "9", label: "9"}, {id: "multiplication", label: "x"},
	{id: "4", label: "4"}, {id: "5", label: "5"}, {id: "6", label: "6"}, {id: "minus", label: "-"},
	{id: "1", label: "1"}, {id: "2", label: "2"}, {id: "3", label: "3"}, {id: "plus", label: "+"},
	{id: "0", label: "0", span: 2}, {id: "point", label: "."}, {id: "equal", label: "="},
}

var buttonOps = map[string]calc.Operator{
	"plus":           calc.OpAdd,
	"minus":          calc.OpSub,
	"multiplication": calc.OpMul,
	"division":       calc.OpDiv,
	"percent":        calc.OpPercent,
}

// layoutButtons places the keypad in the rectangle (x0, y0, w, h).
func layoutButtons(x0, y0, w, h int) []button {
	out := make([]button, len(keypad))
	copy(out, keypad)
	cw := w / keypadCols
	rh := h / keypadRows
	col, row := 0, 0
	for i := range out {
		b := &out[i]
		span := max(b.span, 1)
		b.col, b.row = col, row
		b.x = x0 + col*cw
		b.y = y0 + row*rh
		b.w = cw*span - 2
		b.h = rh - 2
		col += span
		if col >= keypadCols {
			col = 0
			row++
		}
	}
	return out
}

func hitButton(buttons []button, x, y int) (button, bool) {
	for _, b := range buttons {
		if x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h {
			return b, true
		}
	}
	return button{}, false
}

// execButton runs the accumulator operation behind a button identifier.
func execButton(acc *calc.Accumulator, id string) {
	switch id {
	case "ac":
		acc.ClearAll()
	case "ce":
		acc.ClearEntry()
	case "equal":
		acc.Evaluate()
	case "point":
		acc.AddPoint()
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		acc.AddDigit(id[0])
	default:
		if op, ok := buttonOps[id]; ok {
			acc.AddOperator(op)
			return
		}
		acc.ShowError(fmt.Errorf("%w: button %q", calc.ErrUnknownInput, id))
	}
}
