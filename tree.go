package pfx

// Node is an expression tree node rebuilt from a postfix sequence.
type Node interface {
	Token() Token
	// String renders the subtree as fully parenthesised infix.
	String() string
}

// Leaf matches a single literal character.
type Leaf struct {
	Value rune
}

func (n *Leaf) Token() Token   { return Lit(n.Value) }
func (n *Leaf) String() string { return string(n.Value) }

// Unary applies a postfix operator (*, + or ?) to its operand.
type Unary struct {
	Op      TokenKind
	Operand Node
}

func (n *Unary) Token() Token   { return Op(n.Op) }
func (n *Unary) String() string { return n.Operand.String() + n.Token().String() }

// Binary joins two operands with Concat or Union.
type Binary struct {
	Op    TokenKind
	Left  Node
	Right Node
}

func (n *Binary) Token() Token { return Op(n.Op) }
func (n *Binary) String() string {
	return "(" + n.Left.String() + n.Token().String() + n.Right.String() + ")"
}

func children(n Node) []Node {
	switch v := n.(type) {
	case *Unary:
		return []Node{v.Operand}
	case *Binary:
		return []Node{v.Left, v.Right}
	}
	return nil
}

// assemble runs tokens through a stack machine: literals push, unary
// operators pop one and push one, binary operators pop two and push one.
// posOf maps a token index to the position reported in errors.
func assemble(tokens []Token, posOf func(int) int) (Node, *RegexError) {
	if len(tokens) == 0 {
		return nil, nil
	}

	stack := make([]Node, 0, len(tokens))
	for i, t := range tokens {
		switch t.Kind {
		case Literal:
			stack = append(stack, &Leaf{Value: t.Value})
		case Star, Plus, Question:
			if len(stack) < 1 {
				return nil, malformed(posOf(i), "%q is missing its operand", t.String())
			}
			operand := stack[len(stack)-1]
			stack[len(stack)-1] = &Unary{Op: t.Kind, Operand: operand}
		case Union, Concat:
			if len(stack) < 2 {
				return nil, malformed(posOf(i), "%q needs two operands", t.String())
			}
			left, right := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			stack = append(stack, &Binary{Op: t.Kind, Left: left, Right: right})
		default:
			return nil, malformed(posOf(i), "unbalanced %q", t.String())
		}
	}

	if len(stack) != 1 {
		return nil, malformed(posOf(len(tokens)-1), "expected a single expression, found %d", len(stack))
	}
	return stack[0], nil
}
