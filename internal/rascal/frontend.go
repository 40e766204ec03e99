package rascal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects the grammar rule that must span the whole input.
type Mode string

const (
	ModeRoot    Mode = "root"
	ModeProgram Mode = "program"
	ModeStmt    Mode = "stmt"
	ModeExpr    Mode = "expr"
	ModeType    Mode = "type"
)

// Modes lists every mode accepted by ParseMode.
var Modes = []Mode{ModeRoot, ModeProgram, ModeStmt, ModeExpr, ModeType}

// ParseModeName looks up a mode by its name.
func ParseModeName(name string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == strings.ToLower(name) {
			return m, nil
		}
	}
	return "", errors.Errorf("unknown parse mode %q", name)
}

func newParser(source string) (*Parser, error) {
	tokens, err := NewScanner([]rune(source)).Scan()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens), nil
}

// ParseSource scans and parses a complete compilation unit.
func ParseSource(source string) (*Root, error) {
	parser, err := newParser(source)
	if err != nil {
		return nil, err
	}
	return parser.ParseRoot()
}

// ParseProgramSource parses source holding exactly one program.
func ParseProgramSource(source string) (*Program, error) {
	parser, err := newParser(source)
	if err != nil {
		return nil, err
	}
	return parser.ParseProgram()
}

// ParseStatementSource parses source holding exactly one statement.
func ParseStatementSource(source string) (Stmt, error) {
	parser, err := newParser(source)
	if err != nil {
		return nil, err
	}
	return parser.ParseStatement()
}

// ParseExpressionSource parses source holding exactly one expression.
func ParseExpressionSource(source string) (*TypedExpr, error) {
	parser, err := newParser(source)
	if err != nil {
		return nil, err
	}
	return parser.ParseExpression()
}

// ParseTypeSource parses source holding exactly one type.
func ParseTypeSource(source string) (Type, error) {
	parser, err := newParser(source)
	if err != nil {
		return nil, err
	}
	return parser.ParseType()
}

// ParseMode parses the source with the rule named by mode. The result is a
// *Root, *Program, Stmt, *TypedExpr or Type.
func ParseMode(source string, mode Mode) (interface{}, error) {
	switch mode {
	case ModeRoot:
		return ParseSource(source)
	case ModeProgram:
		return ParseProgramSource(source)
	case ModeStmt:
		return ParseStatementSource(source)
	case ModeExpr:
		return ParseExpressionSource(source)
	case ModeType:
		return ParseTypeSource(source)
	}
	return nil, errors.Errorf("unknown parse mode %q", mode)
}

// Frontend parses a compilation unit and hands any failure to the reporter.
// It returns nil when the source was rejected.
func Frontend(source string, reporter Reporter) *Root {
	root, err := ParseSource(source)
	if err != nil {
		reporter.Report(err)
		return nil
	}
	return root
}

// IsIncomplete reports whether err was caused by the input ending too early,
// so that appending more text could still make it valid.
func IsIncomplete(err error) bool {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Token.Typ == EOF
	}
	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		return strings.HasPrefix(scanErr.Message, "Unterminated")
	}
	return false
}

// Describe names the kind of failure carried by err for diagnostics output.
func Describe(err error) string {
	var scanErr *ScanError
	var parseErr *ParseError
	var litErr *LiteralError
	switch {
	case errors.As(err, &litErr):
		return "literal"
	case errors.As(err, &scanErr):
		return "scan"
	case errors.As(err, &parseErr):
		return "parse"
	}
	return fmt.Sprintf("%T", errors.Cause(err))
}
