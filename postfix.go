package pfx

import "strings"

// Postfix is a token sequence in reverse-Polish order. It never contains
// parentheses unless it came from a Lenient conversion of unbalanced input.
type Postfix []Token

// String renders every token as one character, separated by single spaces.
func (p Postfix) String() string {
	var sb strings.Builder
	for i, t := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Literals returns the literal characters in output order.
func (p Postfix) Literals() []rune {
	var out []rune
	for _, t := range p {
		if t.Kind == Literal {
			out = append(out, t.Value)
		}
	}
	return out
}

// Validate evaluates p on a stack machine and fails unless exactly one
// expression remains. An empty sequence is valid.
func (p Postfix) Validate() error {
	if _, err := p.Tree(); err != nil {
		return err
	}
	return nil
}

// Tree rebuilds the expression tree p encodes. It returns a nil Node for an
// empty sequence.
func (p Postfix) Tree() (Node, error) {
	n, err := assemble(p, func(i int) int { return i })
	if err != nil {
		return nil, err
	}
	return n, nil
}
