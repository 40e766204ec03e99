package rascal

// Parser composes the syntax tree for the Rascal language from the sequence of
// valid tokens that follow the grammar in doc.go. Every rule decides which
// production to take from the current token and at most one token after it,
// so a production never backtracks once it has started.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser for the Rascal language. An EOF token is
// appended when the sequence does not end with one.
func NewParser(tokens []*Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Typ != EOF {
		line, column := 1, 1
		if len(tokens) != 0 {
			last := tokens[len(tokens)-1]
			line, column = last.Line, last.Column+len([]rune(last.Lexeme))
		}
		tokens = append(tokens[:len(tokens):len(tokens)], NewToken(EOF, "", line, column))
	}
	return &Parser{0, tokens}
}

// precedence is the binding power of a binary operator, higher binds tighter.
type precedence int

const (
	precTerm    precedence = iota + 1 // + -
	precFactor                        // * /
	precCompare                       // == != <= >= < >
)

type binaryOperator struct {
	op   BinaryOp
	prec precedence
}

// binaryOperators maps a token to the operator it spells in infix position.
var binaryOperators = map[TokenType]binaryOperator{
	PLUS:          {OpAdd, precTerm},
	MINUS:         {OpSub, precTerm},
	STAR:          {OpMult, precFactor},
	SLASH:         {OpDiv, precFactor},
	EQUAL_EQUAL:   {OpEq, precCompare},
	BANG_EQUAL:    {OpNeq, precCompare},
	LESS_EQUAL:    {OpLeq, precCompare},
	GREATER_EQUAL: {OpGeq, precCompare},
	LESS:          {OpLess, precCompare},
	GREATER:       {OpGreater, precCompare},
}

// ParseExpression parses a single expression that spans the whole input.
func (parser *Parser) ParseExpression() (*TypedExpr, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consumeEOF("Expect end of input after expression."); err != nil {
		return nil, err
	}
	return expr, nil
}

// expression --> binary ;
func (parser *Parser) expression() (*TypedExpr, error) {
	return parser.binary(precTerm)
}

// Creates a left-associative nested tree of binary operator nodes. Operators
// binding looser than `minPrec` are left for the caller; the right operand
// only takes operators binding strictly tighter, which groups chains of equal
// precedence from the left.
//
// binary --> unary ( OP unary )* ;
func (parser *Parser) binary(minPrec precedence) (*TypedExpr, error) {
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for {
		info, ok := binaryOperators[parser.peek().Typ]
		if !ok || info.prec < minPrec {
			return expr, nil
		}
		parser.advance()
		right, err := parser.binary(info.prec + 1)
		if err != nil {
			return nil, err
		}
		expr = NewTypedExpr(NewBinaryExpr(info.op, expr, right))
	}
}

// unary --> ( "!" | "-" ) unary
//         | primary ;
func (parser *Parser) unary() (*TypedExpr, error) {
	if parser.match(BANG, MINUS) {
		op := UnaryNeg
		if parser.prev().Typ == BANG {
			op = UnaryNot
		}
		operand, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewTypedExpr(NewUnaryExpr(op, operand)), nil
	}
	return parser.primary()
}

// Alternatives are tried in order and the first one that applies wins, a
// lone identifier is a term only when no "(" follows it.
//
// primary --> lambda
//           | IDENT "(" args ")"
//           | term ;
func (parser *Parser) primary() (*TypedExpr, error) {
	if parser.check(FUN) {
		lambda, err := parser.lambda()
		if err != nil {
			return nil, err
		}
		return NewTypedExpr(NewLambdaExpr(lambda)), nil
	}
	if parser.check(IDENT) && parser.peekNext().Typ == L_PAREN {
		callee := parser.advance()
		parser.advance()
		args, err := parser.args()
		if err != nil {
			return nil, err
		}
		return NewTypedExpr(NewCallExpr(NewSymbol(callee.Lexeme), args)), nil
	}
	term, err := parser.term()
	if err != nil {
		return nil, err
	}
	return NewTypedExpr(NewTermExpr(term)), nil
}

// term --> IDENT | NUMBER | STRING | "true" | "false" | "(" expression ")" ;
func (parser *Parser) term() (*TypedTerm, error) {
	if parser.match(IDENT) {
		return NewTypedTerm(&IdTerm{parser.prev().Lexeme}), nil
	}
	if parser.match(NUMBER) {
		tok := parser.prev()
		num, err := ParseNum(tok.Lexeme)
		if err != nil {
			return nil, NewLiteralError(tok, err)
		}
		return NewTypedTerm(&NumTerm{num}), nil
	}
	if parser.match(TRUE) {
		return NewTypedTerm(&BoolTerm{true}), nil
	}
	if parser.match(FALSE) {
		return NewTypedTerm(&BoolTerm{false}), nil
	}
	if parser.match(STRING) {
		return NewTypedTerm(&StringTerm{parser.prev().Lexeme}), nil
	}
	if parser.match(L_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(R_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return NewTypedTerm(&ExprTerm{expr}), nil
	}
	return nil, NewParseError(parser.peek(), "Expect expression.")
}

// The opening "(" has already been consumed. A trailing comma is accepted.
//
// args --> ( expression ( "," expression )* ","? )? ")" ;
func (parser *Parser) args() ([]*TypedExpr, error) {
	args := make([]*TypedExpr, 0)
	for !parser.check(R_PAREN) {
		arg, err := parser.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !parser.match(COMMA) {
			break
		}
	}
	if err := parser.consume(R_PAREN, "Expect ')' after arguments."); err != nil {
		return nil, err
	}
	return args, nil
}

// The arrow form is sugar for a body holding a single return statement.
//
// lambda --> "fun" "(" optParams ")" "->" "(" expression ")"
//          | "fun" "(" optParams ")" "begin" block "end" ;
func (parser *Parser) lambda() (*LambdaFunc, error) {
	if err := parser.consume(FUN, "Expect 'fun'."); err != nil {
		return nil, err
	}
	if err := parser.consume(L_PAREN, "Expect '(' after 'fun' in lambda."); err != nil {
		return nil, err
	}
	params, err := parser.params(true)
	if err != nil {
		return nil, err
	}

	if parser.match(ARROW) {
		if err := parser.consume(L_PAREN, "Expect '(' before lambda body."); err != nil {
			return nil, err
		}
		body, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(R_PAREN, "Expect ')' after lambda body."); err != nil {
			return nil, err
		}
		return NewLambdaFunc(params, []Stmt{NewReturnStmt(body)}), nil
	}

	if err := parser.consume(BEGIN, "Expect '->' or 'begin' after lambda parameters."); err != nil {
		return nil, err
	}
	block, err := parser.block()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(END, "Expect 'end' after lambda body."); err != nil {
		return nil, err
	}
	return NewLambdaFunc(params, block), nil
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return NewParseError(parser.peek(), message)
}

func (parser *Parser) consumeEOF(message string) error {
	if parser.isEOF() {
		return nil
	}
	return NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

// peekNext returns the token after the current one, EOF at the end.
func (parser *Parser) peekNext() *Token {
	if parser.current+1 >= len(parser.tokens) {
		return parser.tokens[len(parser.tokens)-1]
	}
	return parser.tokens[parser.current+1]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
