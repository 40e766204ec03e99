package rascal

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ    TokenType
	Lexeme string
	Line   int
	Column int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, line int, column int) *Token {
	return &Token{typ, lexeme, line, column}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %d:%d", t.Typ, t.Lexeme, t.Line, t.Column)
}

// TokenType is a just a wrapped string used to represent token's type. Fixed
// tokens use their own text so error messages can quote them directly.
type TokenType string

const (
	// Single-character tokens
	L_PAREN   TokenType = "("
	R_PAREN   TokenType = ")"
	COMMA     TokenType = ","
	COLON     TokenType = ":"
	SEMICOLON TokenType = ";"

	// One or two character tokens
	MINUS         TokenType = "-"
	MINUS_EQUAL   TokenType = "-="
	ARROW         TokenType = "->"
	PLUS          TokenType = "+"
	PLUS_EQUAL    TokenType = "+="
	SLASH         TokenType = "/"
	SLASH_EQUAL   TokenType = "/="
	STAR          TokenType = "*"
	STAR_EQUAL    TokenType = "*="
	BANG          TokenType = "!"
	BANG_EQUAL    TokenType = "!="
	EQUAL         TokenType = "="
	EQUAL_EQUAL   TokenType = "=="
	GREATER       TokenType = ">"
	GREATER_EQUAL TokenType = ">="
	LESS          TokenType = "<"
	LESS_EQUAL    TokenType = "<="

	// Literals
	IDENT  TokenType = "identifier"
	STRING TokenType = "string literal"
	NUMBER TokenType = "number"

	// Keywords
	LET     TokenType = "let"
	IF      TokenType = "if"
	THEN    TokenType = "then"
	ELSE    TokenType = "else"
	END     TokenType = "end"
	PROGRAM TokenType = "program"
	BEGIN   TokenType = "begin"
	FUN     TokenType = "fun"
	RETURN  TokenType = "return"
	TRUE    TokenType = "true"
	FALSE   TokenType = "false"
	NIL     TokenType = "Nil"

	// Primitive type keywords
	INT32   TokenType = "int32"
	INT64   TokenType = "int64"
	UINT32  TokenType = "uint32"
	UINT64  TokenType = "uint64"
	FLOAT32 TokenType = "float32"
	FLOAT64 TokenType = "float64"
	BOOL    TokenType = "bool"
	STR     TokenType = "string"

	EOF TokenType = "end of input"
)

// KeywordTokens maps reserved words to their token types.
var KeywordTokens = map[string]TokenType{
	"let":     LET,
	"if":      IF,
	"then":    THEN,
	"else":    ELSE,
	"end":     END,
	"program": PROGRAM,
	"begin":   BEGIN,
	"fun":     FUN,
	"return":  RETURN,
	"true":    TRUE,
	"false":   FALSE,
	"Nil":     NIL,
	"int32":   INT32,
	"int64":   INT64,
	"uint32":  UINT32,
	"uint64":  UINT64,
	"float32": FLOAT32,
	"float64": FLOAT64,
	"bool":    BOOL,
	"string":  STR,
}

// primitiveTokens maps the type keywords to the primitive they name.
var primitiveTokens = map[TokenType]PrimitiveType{
	INT32:   TypeInt32,
	INT64:   TypeInt64,
	UINT32:  TypeUInt32,
	UINT64:  TypeUInt64,
	FLOAT32: TypeFloat32,
	FLOAT64: TypeFloat64,
	BOOL:    TypeBool,
	STR:     TypeString,
	NIL:     TypeNil,
}
