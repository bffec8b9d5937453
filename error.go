package pfx

import (
	"errors"
	"fmt"
)

type ParseErrorCode string

const (
	MalformedPattern ParseErrorCode = "MalformedPattern"
	InvalidCharacter ParseErrorCode = "InvalidCharacter"
)

var (
	// ErrMalformedPattern matches unbalanced parentheses and operators
	// missing an operand.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrInvalidCharacter matches characters outside the pattern alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
)

// RegexError describes why a pattern was rejected. Pos is the rune offset
// into the pattern handed to ToPostfix or Convert; for Postfix.Validate it
// is the index of the offending token.
type RegexError struct {
	Code    ParseErrorCode
	Message string
	Pos     int
}

func (p *RegexError) Error() string {
	return fmt.Sprintf("code=%s, message=%s, pos=%d", p.Code, p.Message, p.Pos)
}

func (p *RegexError) Unwrap() error {
	switch p.Code {
	case MalformedPattern:
		return ErrMalformedPattern
	case InvalidCharacter:
		return ErrInvalidCharacter
	}
	return nil
}

func malformed(pos int, format string, args ...interface{}) *RegexError {
	return &RegexError{
		Code:    MalformedPattern,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}
