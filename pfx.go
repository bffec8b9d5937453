package pfx

import "fmt"

// Mode selects how the converter treats input outside the accepted grammar.
type Mode uint8

const (
	// Strict rejects unknown characters, unbalanced parentheses and
	// operators missing an operand with a *RegexError.
	Strict Mode = iota

	// Lenient never fails: unknown characters are dropped, a stray ')'
	// drains the stack, and a '(' left open is flushed into the output.
	Lenient
)

func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

type operatorStack struct {
	ops []symbol
}

func (os *operatorStack) pop() symbol {
	x := os.ops[len(os.ops)-1]
	os.ops = os.ops[:len(os.ops)-1]
	return x
}

func (os *operatorStack) top() (symbol, bool) {
	if os.hasElements() {
		return os.ops[len(os.ops)-1], true
	}
	return symbol{}, false
}

func (os *operatorStack) hasElements() bool {
	return len(os.ops) > 0
}

func (os *operatorStack) push(s symbol) {
	os.ops = append(os.ops, s)
}

func tokenOf(ch rune) Token {
	switch {
	case isLiteral(ch):
		return Lit(ch)
	case ch == '(':
		return Op(LParen)
	case ch == ')':
		return Op(RParen)
	}
	return Op(operators[ch])
}

func convert(symbols []symbol, mode Mode) (Postfix, error) {
	out := make(Postfix, 0, len(symbols))
	positions := make([]int, 0, len(symbols))
	emit := func(s symbol) {
		out = append(out, tokenOf(s.ch))
		positions = append(positions, s.pos)
	}

	stack := operatorStack{}
	for _, s := range symbols {
		ch := s.ch
		if isLiteral(ch) {
			emit(s)
		} else if ch == '(' {
			stack.push(s)
		} else if ch == ')' {
			matched := false
			for stack.hasElements() {
				top := stack.pop()
				if top.ch == '(' {
					matched = true
					break
				}
				emit(top)
			}
			if !matched && mode == Strict {
				return nil, malformed(s.pos, "unmatched ')'")
			}
		} else if kind, ok := operators[ch]; ok {
			tokenPrecedence := precedence[kind]
			for {
				top, ok := stack.top()
				if !ok || top.ch == '(' || precedence[operators[top.ch]] < tokenPrecedence {
					break
				}
				emit(stack.pop())
			}
			stack.push(s)
		} else if mode == Strict {
			return nil, &RegexError{
				Code:    InvalidCharacter,
				Message: fmt.Sprintf("unexpected character %q", ch),
				Pos:     s.pos,
			}
		}
	}

	for stack.hasElements() {
		top := stack.pop()
		if top.ch == '(' && mode == Strict {
			return nil, malformed(top.pos, "missing ')'")
		}
		emit(top)
	}

	if mode == Strict {
		if _, err := assemble(out, func(i int) int { return positions[i] }); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Convert reorders an already expanded pattern into postfix order. Error
// positions are rune offsets into expanded.
func Convert(expanded string, mode Mode) (Postfix, error) {
	return convert(symbolsOf(expanded), mode)
}

// Compile expands pattern and converts it to postfix in the given mode.
// Error positions are rune offsets into pattern.
func Compile(pattern string, mode Mode) (Postfix, error) {
	return convert(expand(pattern), mode)
}

// ToPostfix is Compile in Strict mode.
func ToPostfix(pattern string) (Postfix, error) {
	return Compile(pattern, Strict)
}

// ToPostfixLenient is Compile in Lenient mode, which cannot fail.
func ToPostfixLenient(pattern string) Postfix {
	out, _ := Compile(pattern, Lenient)
	return out
}

func MustToPostfix(pattern string) Postfix {
	out, err := ToPostfix(pattern)
	if err != nil {
		panic(fmt.Sprintf("pfx: ToPostfix(%q): %v", pattern, err))
	}
	return out
}
