package pfx

import "fmt"

type TokenKind uint8

const (
	Literal  TokenKind = iota // any alphanumeric character, e.g., a, b, 1, 2, etc.
	Union                     // |
	Concat                    // · (synthetic)
	Star                      // *
	Plus                      // +
	Question                  // ?
	LParen                    // (
	RParen                    // )
)

// ConcatMarker is the character the expander inserts for implicit concatenation.
const ConcatMarker = '·'

var kindNames = map[TokenKind]string{
	Literal:  "Literal",
	Union:    "Union",
	Concat:   "Concat",
	Star:     "Star",
	Plus:     "Plus",
	Question: "Question",
	LParen:   "LParen",
	RParen:   "RParen",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Token is a single element of a pattern. Value is only meaningful for
// Literal tokens; operator tokens leave it zero so that == compares them
// structurally.
type Token struct {
	Kind  TokenKind
	Value rune
}

// Lit returns the literal token for ch.
func Lit(ch rune) Token {
	return Token{Kind: Literal, Value: ch}
}

// Op returns the operator token of the given kind.
func Op(kind TokenKind) Token {
	return Token{Kind: kind}
}

var operatorChars = map[TokenKind]rune{
	Union:    '|',
	Concat:   ConcatMarker,
	Star:     '*',
	Plus:     '+',
	Question: '?',
	LParen:   '(',
	RParen:   ')',
}

// String renders the token as its single surface character.
func (t Token) String() string {
	if t.Kind == Literal {
		return string(t.Value)
	}
	return string(operatorChars[t.Kind])
}

// Arity is the number of operands the token consumes in postfix evaluation.
func (t Token) Arity() int {
	switch t.Kind {
	case Union, Concat:
		return 2
	case Star, Plus, Question:
		return 1
	}
	return 0
}

// IsOperator reports whether t is one of the five precedence-ranked operators.
func (t Token) IsOperator() bool {
	_, ok := precedence[t.Kind]
	return ok
}

// higher binds tighter; parentheses have no precedence
var precedence = map[TokenKind]uint8{
	Union:    0,
	Concat:   1,
	Star:     2,
	Plus:     2,
	Question: 2,
}

var operators = map[rune]TokenKind{
	'|':          Union,
	ConcatMarker: Concat,
	'*':          Star,
	'+':          Plus,
	'?':          Question,
}

func isAlphabetUppercase(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isAlphabetLowercase(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

func isNumeric(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLiteral(ch rune) bool {
	return isAlphabetUppercase(ch) || isAlphabetLowercase(ch) || isNumeric(ch)
}

func isPostfixOperator(ch rune) bool {
	return ch == '*' || ch == '+' || ch == '?'
}
