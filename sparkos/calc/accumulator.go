package calc

import (
	"fmt"
	"math"
)

const (
	// MaxDisplayLen is the longest text the display accepts.
	MaxDisplayLen = 17
	// ErrorText replaces anything the display rejects.
	ErrorText = "Error"
)

// Display receives the text the calculator shows.
type Display interface {
	SetDisplay(text string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(text string)

func (f DisplayFunc) SetDisplay(text string) { f(text) }

// Evaluation describes one completed reduction.
type Evaluation struct {
	Left    float64
	Op      Operator
	Right   float64
	Result  float64
	Percent bool
	// Carried is the operator left pending for the next operand.
	Carried Operator
}

func (e Evaluation) String() string {
	s := fmt.Sprintf("%s %s %s", FormatNumber(e.Left), e.Op, FormatNumber(e.Right))
	if e.Percent {
		s += " %"
	}
	return s + " = " + FormatNumber(e.Result)
}

// Accumulator is the calculator state machine.
//
// It is not safe for concurrent use; the owning task drives it from a
// single goroutine.
type Accumulator struct {
	seq        []Token
	lastOp     Operator
	lastNumber float64

	disp Display
	text string
	err  error

	// OnEvaluate, if set, observes every successful evaluation.
	OnEvaluate func(Evaluation)
}

// New returns an empty accumulator writing to disp (which may be nil).
func New(disp Display) *Accumulator {
	a := &Accumulator{disp: disp}
	a.show("0")
	return a
}

// Sequence returns a copy of the pending tokens.
func (a *Accumulator) Sequence() []Token {
	out := make([]Token, len(a.seq))
	copy(out, a.seq)
	return out
}

// Carry returns the operator and operand carried from the last evaluation.
func (a *Accumulator) Carry() (Operator, float64) {
	return a.lastOp, a.lastNumber
}

// Text returns the text currently shown.
func (a *Accumulator) Text() string { return a.text }

// Err returns the cause of the current Error display, or nil.
func (a *Accumulator) Err() error { return a.err }

// LastOperand returns the most recent operand, falling back to the carried number.
func (a *Accumulator) LastOperand() float64 {
	if t, ok := a.lastItem(TokenNumber); ok {
		return t.Value
	}
	return a.lastNumber
}

// LastOperator returns the most recent operator, falling back to the carried one.
func (a *Accumulator) LastOperator() Operator {
	if t, ok := a.lastItem(TokenOperator); ok {
		return t.Op
	}
	return a.lastOp
}

// AddDigit appends a decimal digit to the current operand, starting a new
// operand after an operator.
func (a *Accumulator) AddDigit(d byte) {
	if d < '0' || d > '9' {
		a.ShowError(fmt.Errorf("%w: digit %q", ErrUnknownInput, d))
		return
	}

	last, ok := a.last()
	if !ok || !last.IsNumber() {
		t, _ := typedNumber(string(d))
		a.seq = append(a.seq, t)
		a.showLastOperand()
		return
	}

	text := last.String()
	if text == "0" {
		text = ""
	}
	t, err := typedNumber(text + string(d))
	if err != nil {
		a.ShowError(fmt.Errorf("%w: %v", ErrMalformed, err))
		return
	}
	a.seq[len(a.seq)-1] = t
	a.showLastOperand()
}

// AddOperator records op as the pending operator. A pending operator is
// replaced rather than stacked. A second operator after a complete window
// evaluates the window first.
func (a *Accumulator) AddOperator(op Operator) {
	if op == OpNone {
		a.ShowError(fmt.Errorf("%w: empty operator", ErrUnknownInput))
		return
	}

	last, ok := a.last()
	switch {
	case !ok:
		// The display shows 0; that is the left operand.
		a.seq = append(a.seq, Number(0), Op(op))
	case last.IsOperator():
		a.seq[len(a.seq)-1] = Op(op)
	default:
		a.seq = append(a.seq, Op(op))
	}

	if len(a.seq) > 3 {
		a.Evaluate()
		return
	}
	a.showLastOperand()
}

// AddPoint adds a decimal point to the current operand, once.
func (a *Accumulator) AddPoint() {
	last, ok := a.last()
	if ok && last.IsNumber() && containsPoint(last.String()) {
		return
	}

	if !ok || last.IsOperator() {
		a.seq = append(a.seq, Token{Kind: TokenNumber, Text: "0."})
	} else {
		a.seq[len(a.seq)-1] = Token{Kind: TokenNumber, Value: last.Value, Text: last.String() + "."}
	}
	a.showLastOperand()
}

// Evaluate reduces the sequence to a single result.
//
// With fewer than three tokens the carried operator and operand complete
// the window, so repeated calls re-apply the last operation. With more
// than three tokens the trailing operator is carried into the next round;
// a trailing % instead scales the result by 1/100 and is consumed.
func (a *Accumulator) Evaluate() {
	op := a.LastOperator()

	seq := a.seq
	if len(seq) < 3 {
		first := Number(0)
		if len(seq) > 0 {
			first = seq[0]
		}
		if op == OpNone {
			if !first.IsNumber() {
				a.ShowError(fmt.Errorf("%w: %s", ErrMalformed, windowString(seq)))
				return
			}
			a.seq = []Token{Number(first.Value)}
			a.showLastOperand()
			return
		}
		seq = []Token{first, Op(op), Number(a.lastNumber)}
	}

	var (
		trailing   Operator
		lastNumber float64
	)
	if len(seq) > 3 {
		tail := seq[len(seq)-1]
		seq = seq[:len(seq)-1]
		if tail.IsOperator() {
			trailing = tail.Op
		}
		v, err := reduce(seq)
		if err != nil {
			a.ShowError(err)
			return
		}
		lastNumber = v
	} else {
		for i := len(seq) - 1; i >= 0; i-- {
			if seq[i].IsNumber() {
				lastNumber = seq[i].Value
				break
			}
		}
	}

	result, err := reduce(seq)
	if err != nil {
		a.ShowError(err)
		return
	}

	ev := Evaluation{Left: seq[0].Value, Op: seq[1].Op, Right: seq[2].Value}
	a.lastOp = op
	a.lastNumber = lastNumber

	if trailing == OpPercent {
		result /= 100
		ev.Percent = true
		a.seq = []Token{Number(result)}
	} else {
		a.seq = []Token{Number(result)}
		if trailing != OpNone {
			a.seq = append(a.seq, Op(trailing))
			ev.Carried = trailing
		}
	}
	ev.Result = result

	a.showLastOperand()
	if a.OnEvaluate != nil {
		a.OnEvaluate(ev)
	}
}

// ClearAll resets the sequence and carried state.
func (a *Accumulator) ClearAll() {
	a.seq = a.seq[:0]
	a.lastNumber = 0
	a.lastOp = OpNone
	a.show("0")
}

// ClearEntry shows 0 and drops the operand being entered, keeping any
// pending operator and the operands before it.
func (a *Accumulator) ClearEntry() {
	a.show("0")
	if last, ok := a.last(); ok && !last.IsOperator() {
		a.seq = a.seq[:len(a.seq)-1]
	}
}

// Paste overwrites the current operand with the numeric prefix of text.
func (a *Accumulator) Paste(text string) {
	v, ok := parseFloatPrefix(text)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		a.ShowError(fmt.Errorf("%w: %q", ErrBadPaste, text))
		return
	}
	if last, ok := a.last(); ok && last.IsNumber() {
		a.seq[len(a.seq)-1] = Number(v)
	} else {
		a.seq = append(a.seq, Number(v))
	}
	a.showLastOperand()
}

// ShowError puts the display in the Error state. Other state is untouched.
func (a *Accumulator) ShowError(err error) {
	a.err = err
	a.text = ErrorText
	if a.disp != nil {
		a.disp.SetDisplay(ErrorText)
	}
}

func (a *Accumulator) showLastOperand() {
	if t, ok := a.lastItem(TokenNumber); ok {
		a.show(t.String())
		return
	}
	a.show(FormatNumber(a.lastNumber))
}

func (a *Accumulator) show(text string) {
	if len(text) > MaxDisplayLen {
		a.ShowError(fmt.Errorf("%w: %q", ErrOverflow, text))
		return
	}
	a.err = nil
	a.text = text
	if a.disp != nil {
		a.disp.SetDisplay(text)
	}
}

func (a *Accumulator) last() (Token, bool) {
	if len(a.seq) == 0 {
		return Token{}, false
	}
	return a.seq[len(a.seq)-1], true
}

func (a *Accumulator) lastItem(kind TokenKind) (Token, bool) {
	for i := len(a.seq) - 1; i >= 0; i-- {
		if a.seq[i].Kind == kind {
			return a.seq[i], true
		}
	}
	return Token{}, false
}

func containsPoint(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}
