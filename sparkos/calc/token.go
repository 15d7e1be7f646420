package calc

import "strconv"

// Operator is a binary calculator operator.
type Operator uint8

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPercent
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPercent:
		return "%"
	default:
		return ""
	}
}

// ParseOperator maps an operator symbol to its Operator.
func ParseOperator(r rune) (Operator, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	case '%':
		return OpPercent, true
	default:
		return OpNone, false
	}
}

type TokenKind uint8

const (
	TokenNumber TokenKind = iota + 1
	TokenOperator
)

// Token is one element of the operation sequence: a Number or an Operator.
//
// Numbers being typed keep their text ("0.", "1.50") so the display shows
// exactly what was entered; Value is always the parse of that text.
type Token struct {
	Kind  TokenKind
	Op    Operator
	Value float64
	Text  string
}

// Number returns a settled number token.
func Number(v float64) Token {
	return Token{Kind: TokenNumber, Value: v}
}

// Op returns an operator token.
func Op(op Operator) Token {
	return Token{Kind: TokenOperator, Op: op}
}

func (t Token) IsNumber() bool   { return t.Kind == TokenNumber }
func (t Token) IsOperator() bool { return t.Kind == TokenOperator }

// String returns the operand text as displayed, or the operator symbol.
func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		if t.Text != "" {
			return t.Text
		}
		return FormatNumber(t.Value)
	case TokenOperator:
		return t.Op.String()
	default:
		return ""
	}
}

func typedNumber(text string) (Token, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: TokenNumber, Value: v, Text: text}, nil
}
