package rascal

// assignOperators maps a token to the operator it spells after a reassigned
// identifier.
var assignOperators = map[TokenType]AssignOp{
	EQUAL:       AssignPlain,
	PLUS_EQUAL:  AssignAdd,
	MINUS_EQUAL: AssignSub,
	STAR_EQUAL:  AssignMult,
	SLASH_EQUAL: AssignDiv,
}

// ParseRoot parses a whole compilation unit.
//
// root --> block program block EOF ;
func (parser *Parser) ParseRoot() (*Root, error) {
	pre, err := parser.block()
	if err != nil {
		return nil, err
	}
	program, err := parser.program()
	if err != nil {
		return nil, err
	}
	post, err := parser.block()
	if err != nil {
		return nil, err
	}
	if err := parser.consumeEOF("Expect statement or end of input after program."); err != nil {
		return nil, err
	}
	return &Root{pre, program, post}, nil
}

// ParseProgram parses a program that spans the whole input.
func (parser *Parser) ParseProgram() (*Program, error) {
	program, err := parser.program()
	if err != nil {
		return nil, err
	}
	if err := parser.consumeEOF("Expect end of input after program."); err != nil {
		return nil, err
	}
	return program, nil
}

// ParseStatement parses a single statement that spans the whole input.
func (parser *Parser) ParseStatement() (Stmt, error) {
	stmt, err := parser.statement()
	if err != nil {
		return nil, err
	}
	if err := parser.consumeEOF("Expect end of input after statement."); err != nil {
		return nil, err
	}
	return stmt, nil
}

// ParseType parses a single type that spans the whole input.
func (parser *Parser) ParseType() (Type, error) {
	t, err := parser.typeExpr()
	if err != nil {
		return nil, err
	}
	if err := parser.consumeEOF("Expect end of input after type."); err != nil {
		return nil, err
	}
	return t, nil
}

// program --> "program" IDENT "begin" block "end" ;
func (parser *Parser) program() (*Program, error) {
	if err := parser.consume(PROGRAM, "Expect 'program'."); err != nil {
		return nil, err
	}
	if err := parser.consume(IDENT, "Expect program name."); err != nil {
		return nil, err
	}
	name := NewSymbol(parser.prev().Lexeme)
	if err := parser.consume(BEGIN, "Expect 'begin' after program name."); err != nil {
		return nil, err
	}
	block, err := parser.block()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(END, "Expect 'end' after program body."); err != nil {
		return nil, err
	}
	return &Program{name, block}, nil
}

// A block ends at the first token that cannot start a statement, the
// enclosing rule decides whether that token is the right terminator.
//
// block --> stmt* ;
func (parser *Parser) block() ([]Stmt, error) {
	stmts := make([]Stmt, 0)
	for parser.startsStatement() {
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (parser *Parser) startsStatement() bool {
	switch parser.peek().Typ {
	case LET, IF, FUN, RETURN, IDENT:
		return true
	}
	return false
}

// stmt --> letStmt
//        | ifStmt
//        | funDef
//        | returnStmt
//        | IDENT "(" args ")" ";"
//        | IDENT assignOp expression ";" ;
func (parser *Parser) statement() (Stmt, error) {
	if parser.match(LET) {
		return parser.letStatement()
	}
	if parser.match(IF) {
		return parser.ifStatement()
	}
	if parser.check(FUN) {
		fn, err := parser.function()
		if err != nil {
			return nil, err
		}
		return NewFuncDefStmt(fn), nil
	}
	if parser.match(RETURN) {
		return parser.returnStatement()
	}
	if parser.match(IDENT) {
		name := NewSymbol(parser.prev().Lexeme)
		if parser.match(L_PAREN) {
			return parser.callStatement(name)
		}
		return parser.reassignStatement(name)
	}
	return nil, NewParseError(parser.peek(), "Expect statement.")
}

// letStmt --> "let" IDENT ( ":" type )? "=" expression ";" ;
func (parser *Parser) letStatement() (Stmt, error) {
	if err := parser.consume(IDENT, "Expect variable name after 'let'."); err != nil {
		return nil, err
	}
	name := NewSymbol(parser.prev().Lexeme)

	declared := Type(TypeUnknown)
	if parser.match(COLON) {
		t, err := parser.typeExpr()
		if err != nil {
			return nil, err
		}
		declared = t
	}
	if err := parser.consume(EQUAL, "Expect '=' after variable declaration."); err != nil {
		return nil, err
	}
	init, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return NewAssignStmt(name, NewVar(declared), init), nil
}

// reassign --> IDENT ( "=" | "+=" | "-=" | "*=" | "/=" ) expression ";" ;
func (parser *Parser) reassignStatement(name Symbol) (Stmt, error) {
	op, ok := assignOperators[parser.peek().Typ]
	if !ok {
		return nil, NewParseError(parser.peek(), "Expect assignment operator or '(' after identifier.")
	}
	parser.advance()
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(SEMICOLON, "Expect ';' after assignment."); err != nil {
		return nil, err
	}
	return NewReassignStmt(name, NewVar(TypeUnknown), op, value), nil
}

// callStmt --> IDENT "(" args ")" ";" ;
func (parser *Parser) callStatement(callee Symbol) (Stmt, error) {
	args, err := parser.args()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(SEMICOLON, "Expect ';' after call."); err != nil {
		return nil, err
	}
	return NewCallStmt(callee, args), nil
}

// All branches land in one ordered case list. The trailing else gets the
// condition `true` and is the only case with IsElse set.
//
// ifStmt --> "if" expression "then" block
//            ( "else" "if" expression "then" block )*
//            ( "else" "then" block )?
//            "end" ;
func (parser *Parser) ifStatement() (Stmt, error) {
	first, err := parser.ifCase()
	if err != nil {
		return nil, err
	}
	cases := []*IfCase{first}

	for parser.check(ELSE) {
		switch parser.peekNext().Typ {
		case IF:
			parser.advance()
			parser.advance()
			elseIf, err := parser.ifCase()
			if err != nil {
				return nil, err
			}
			cases = append(cases, elseIf)
			continue
		case THEN:
			parser.advance()
			parser.advance()
			block, err := parser.block()
			if err != nil {
				return nil, err
			}
			cond := NewTypedExpr(NewTermExpr(NewTypedTerm(&BoolTerm{true})))
			cases = append(cases, &IfCase{cond, block, true})
		default:
			parser.advance()
			return nil, NewParseError(parser.peek(), "Expect 'if' or 'then' after 'else'.")
		}
		break
	}

	if err := parser.consume(END, "Expect 'end' after if statement."); err != nil {
		return nil, err
	}
	return NewIfStmt(cases), nil
}

// ifCase --> expression "then" block ;
func (parser *Parser) ifCase() (*IfCase, error) {
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(THEN, "Expect 'then' after condition."); err != nil {
		return nil, err
	}
	block, err := parser.block()
	if err != nil {
		return nil, err
	}
	return &IfCase{cond, block, false}, nil
}

// returnStmt --> "return" expression ";" ;
func (parser *Parser) returnStatement() (Stmt, error) {
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return NewReturnStmt(value), nil
}

// A missing return type means the function returns Nil.
//
// funDef --> "fun" IDENT "(" params ")" ( "->" type )? "begin" block "end" ;
func (parser *Parser) function() (*Func, error) {
	if err := parser.consume(FUN, "Expect 'fun'."); err != nil {
		return nil, err
	}
	if err := parser.consume(IDENT, "Expect function name."); err != nil {
		return nil, err
	}
	name := parser.prev().Lexeme
	if err := parser.consume(L_PAREN, "Expect '(' after function name."); err != nil {
		return nil, err
	}
	params, err := parser.params(false)
	if err != nil {
		return nil, err
	}

	ret := Type(TypeNil)
	if parser.match(ARROW) {
		if ret, err = parser.typeExpr(); err != nil {
			return nil, err
		}
	}
	if err := parser.consume(BEGIN, "Expect 'begin' before function body."); err != nil {
		return nil, err
	}
	block, err := parser.block()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(END, "Expect 'end' after function body."); err != nil {
		return nil, err
	}
	return &Func{name, params, ret, block}, nil
}

// The opening "(" has already been consumed. When `optional` is set the type
// annotation may be left out and the parameter gets TypeUnknown.
//
// params    --> ( param ( "," param )* ","? )? ")" ;
// param     --> IDENT ":" type ;
// optParam  --> IDENT ( ":" type )? ;
func (parser *Parser) params(optional bool) ([]*Param, error) {
	params := make([]*Param, 0)
	for !parser.check(R_PAREN) {
		if err := parser.consume(IDENT, "Expect parameter name."); err != nil {
			return nil, err
		}
		name := parser.prev().Lexeme

		t := Type(TypeUnknown)
		if !optional || parser.check(COLON) {
			if err := parser.consume(COLON, "Expect ':' after parameter name."); err != nil {
				return nil, err
			}
			var err error
			if t, err = parser.typeExpr(); err != nil {
				return nil, err
			}
		}
		params = append(params, NewParam(name, t))
		if !parser.match(COMMA) {
			break
		}
	}
	if err := parser.consume(R_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	return params, nil
}

// Parentheses only group, `(int32)` is the same type as `int32`.
//
// type --> PRIMITIVE
//        | "fun" "(" ( type ( "," type )* ","? )? ")" "->" type
//        | "(" type ")" ;
func (parser *Parser) typeExpr() (Type, error) {
	if primitive, ok := primitiveTokens[parser.peek().Typ]; ok {
		parser.advance()
		return primitive, nil
	}
	if parser.match(FUN) {
		if err := parser.consume(L_PAREN, "Expect '(' after 'fun' in function type."); err != nil {
			return nil, err
		}
		params := make([]Type, 0)
		for !parser.check(R_PAREN) {
			t, err := parser.typeExpr()
			if err != nil {
				return nil, err
			}
			params = append(params, t)
			if !parser.match(COMMA) {
				break
			}
		}
		if err := parser.consume(R_PAREN, "Expect ')' after function type parameters."); err != nil {
			return nil, err
		}
		if err := parser.consume(ARROW, "Expect '->' after function type parameters."); err != nil {
			return nil, err
		}
		ret, err := parser.typeExpr()
		if err != nil {
			return nil, err
		}
		return NewFunctionType(params, ret), nil
	}
	if parser.match(L_PAREN) {
		t, err := parser.typeExpr()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(R_PAREN, "Expect ')' after type."); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, NewParseError(parser.peek(), "Expect type.")
}
