package rascal

import "fmt"

// ScanError is returned when the source contains text that does not start
// any token.
type ScanError struct {
	Line    int
	Column  int
	Message string
}

// NewScanError creates a new lexical error
func NewScanError(line int, column int, message string) error {
	return &ScanError{line, column, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[line %d:%d] Error: %s",
		err.Line,
		err.Column,
		err.Message,
	)
}

// ParseError wraps the error message returned by the parser with the token at
// which the parse failed.
type ParseError struct {
	Token   *Token
	Message string
}

// NewParseError creates a new syntax error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", location(err.Token), err.Message)
}

// LiteralError is returned when a numeric literal does not fit the type its
// suffix selects.
type LiteralError struct {
	Token *Token
	Err   error
}

// NewLiteralError creates a new literal conversion error
func NewLiteralError(token *Token, err error) error {
	return &LiteralError{token, err}
}

func (err *LiteralError) Error() string {
	return fmt.Sprintf("%s: %v", location(err.Token), err.Err)
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}

// Cause lets github.com/pkg/errors.Cause reach the conversion failure.
func (err *LiteralError) Cause() error {
	return err.Err
}

func location(token *Token) string {
	if token.Typ == EOF {
		return fmt.Sprintf("[line %d:%d] Error at end", token.Line, token.Column)
	}
	return fmt.Sprintf(
		"[line %d:%d] Error at '%s'",
		token.Line,
		token.Column,
		token.Lexeme,
	)
}
