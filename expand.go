package pfx

// symbol is one character of an expanded pattern together with the rune
// offset it came from in the caller's pattern. Inserted markers take the
// offset of the character after them.
type symbol struct {
	ch  rune
	pos int
}

// endsExpression reports whether ch can terminate a sub-expression.
func endsExpression(ch rune) bool {
	return isLiteral(ch) || ch == ')' || isPostfixOperator(ch)
}

// beginsExpression reports whether ch can start a sub-expression.
func beginsExpression(ch rune) bool {
	return isLiteral(ch) || ch == '('
}

func expand(pattern string) []symbol {
	runes := []rune(pattern)
	out := make([]symbol, 0, 2*len(runes))

	for i, ch := range runes {
		if i > 0 && endsExpression(runes[i-1]) && beginsExpression(ch) {
			out = append(out, symbol{ch: ConcatMarker, pos: i})
		}
		out = append(out, symbol{ch: ch, pos: i})
	}

	return out
}

// Expand returns pattern with ConcatMarker inserted wherever two adjacent
// sub-expressions are implicitly concatenated, e.g. "a(b|c)*d" becomes
// "a·(b|c)*·d". Characters outside the pattern alphabet are copied through
// and never receive a marker next to them.
func Expand(pattern string) string {
	symbols := expand(pattern)
	runes := make([]rune, len(symbols))
	for i, s := range symbols {
		runes[i] = s.ch
	}
	return string(runes)
}

func symbolsOf(expanded string) []symbol {
	runes := []rune(expanded)
	out := make([]symbol, len(runes))
	for i, ch := range runes {
		out[i] = symbol{ch: ch, pos: i}
	}
	return out
}
