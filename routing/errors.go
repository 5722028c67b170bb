package routing

import (
	"errors"
	"fmt"
)

// ErrUnsupportedStatement marks a syntactically valid command that has no
// routing category: unrecognized DDL or utility statements, denied or
// argument-bearing configuration pragmas, and unknown pragma names.
// Scanning continues past the offending statement.
var ErrUnsupportedStatement = errors.New("unsupported statement")

// SyntaxError reports malformed input at a source location. It is
// terminal for the remainder of the input text; parser recovery is not
// assumed usable.
type SyntaxError struct {
	Line   int // 1-based
	Column int // 1-based, in bytes
	Token  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error around L%d:%d: `%s`", e.Line, e.Column, e.Token)
}
