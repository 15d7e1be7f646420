package calculator

import (
	"sparkcalc/sparkos/calc"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	tapeFontHeight = 10
	tapeFontOffset = 7
)

// tape keeps the most recent evaluations for the history panel.
type tape struct {
	max   int
	lines []string
}

func newTape(max int) *tape {
	return &tape{max: max}
}

func (tp *tape) add(ev calc.Evaluation) {
	tp.push(ev.String())
}

func (tp *tape) push(line string) {
	if tp.max <= 0 {
		return
	}
	tp.lines = append(tp.lines, line)
	if n := len(tp.lines) - tp.max; n > 0 {
		tp.lines = append(tp.lines[:0], tp.lines[n:]...)
	}
}

func (tp *tape) clear() { tp.lines = tp.lines[:0] }

func (tp *tape) height() int {
	if tp.max <= 0 {
		return 0
	}
	return tp.max * tapeFontHeight
}

// render redraws every line into d from the top.
func (tp *tape) render(d tinyterm.Displayer) {
	if tp.max <= 0 {
		return
	}
	w, h := d.Size()
	_ = d.FillRectangle(0, 0, w, h, colHeader)

	term := tinyterm.NewTerminal(d)
	term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: tapeFontHeight,
		FontOffset: tapeFontOffset,
	})
	for i, line := range tp.lines {
		if i > 0 {
			_, _ = term.Write([]byte("\r\n"))
		}
		_, _ = term.Write([]byte(line))
	}
}

var _ tinyterm.Displayer = (*regionDisplayer)(nil)
