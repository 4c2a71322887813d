package mosel

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the parser.
var (
	// ErrSyntax indicates a malformed source line.
	ErrSyntax = errors.New("mosel: syntax error")

	// ErrUnknownName indicates an identifier used in an expression but never
	// declared in the declarations block.
	ErrUnknownName = errors.New("mosel: unknown identifier")

	// ErrNoDeclarations indicates a source without a
	// declarations…end-declarations block.
	ErrNoDeclarations = errors.New("mosel: missing declarations block")
)

// ParseError decorates a sentinel with the offending (1-based) source line.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mosel: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// syntaxErr builds a ParseError wrapping ErrSyntax.
func syntaxErr(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...), Err: ErrSyntax}
}

// unknownErr builds a ParseError wrapping ErrUnknownName.
func unknownErr(line int, name string) *ParseError {
	return &ParseError{
		Line: line,
		Msg:  fmt.Sprintf("unknown identifier %q", name),
		Err:  ErrUnknownName,
	}
}
