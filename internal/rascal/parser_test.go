package rascal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTerm(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr *TypedExpr
	}{
		{[]*Token{tok(IDENT, "x"), tokEOF(1, 2)}, id("x")},
		{[]*Token{tok(NUMBER, "3")}, num(Int32Num(3))},
		{[]*Token{tok(NUMBER, "3.5f32")}, num(Float32Num(3.5))},
		{[]*Token{tok(TRUE, "true")}, boolean(true)},
		{[]*Token{tok(FALSE, "false")}, boolean(false)},
		{
			[]*Token{tok(STRING, "\"s\"")},
			texpr(NewTermExpr(&TypedTerm{&StringTerm{"\"s\""}, TypeString})),
		},
		{
			[]*Token{tok(L_PAREN, "("), tok(IDENT, "x"), tok(R_PAREN, ")")},
			paren(id("x")),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := NewParser(tc.toks).ParseExpression()

		assert.NoError(err)
		assert.Equal(tc.expr, expr)
	}
}

func TestParseTermTypes(t *testing.T) {
	assert := assert.New(t)

	expr, err := ParseExpressionSource(`f(1, true, "s", x)`)
	assert.NoError(err)

	call := expr.Expr.(*CallExpr)
	types := make([]Type, 0)
	for _, arg := range call.Args {
		types = append(types, arg.Expr.(*TermExpr).Term.Type)
		assert.Equal(TypeUnknown, arg.Type)
	}
	assert.Equal([]Type{TypeUnknown, TypeBool, TypeString, TypeUnknown}, types)
	assert.Equal(TypeUnknown, expr.Type)
}

func TestParseUnary(t *testing.T) {
	testCases := []struct {
		src  string
		expr *TypedExpr
	}{
		{"-x", unary(UnaryNeg, id("x"))},
		{"!x", unary(UnaryNot, id("x"))},
		{"!!x", unary(UnaryNot, unary(UnaryNot, id("x")))},
		{"-!x", unary(UnaryNeg, unary(UnaryNot, id("x")))},
		{"-(x)", unary(UnaryNeg, paren(id("x")))},
		{"-f()", unary(UnaryNeg, texpr(NewCallExpr(NewSymbol("f"), []*TypedExpr{})))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := ParseExpressionSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseBinary(t *testing.T) {
	a, b, c := id("a"), id("b"), id("c")
	testCases := []struct {
		src  string
		expr *TypedExpr
	}{
		{"a + b", bin(OpAdd, a, b)},
		{"a - b", bin(OpSub, a, b)},
		{"a * b", bin(OpMult, a, b)},
		{"a / b", bin(OpDiv, a, b)},
		{"a == b", bin(OpEq, a, b)},
		{"a != b", bin(OpNeq, a, b)},
		{"a <= b", bin(OpLeq, a, b)},
		{"a >= b", bin(OpGeq, a, b)},
		{"a < b", bin(OpLess, a, b)},
		{"a > b", bin(OpGreater, a, b)},
		// every level groups from the left
		{"a + b - c", bin(OpSub, bin(OpAdd, a, b), c)},
		{"a / b * c", bin(OpMult, bin(OpDiv, a, b), c)},
		{"a < b == c", bin(OpEq, bin(OpLess, a, b), c)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := ParseExpressionSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseOpPrecedence(t *testing.T) {
	a, b, c, d := id("a"), id("b"), id("c"), id("d")
	testCases := []struct {
		src  string
		expr *TypedExpr
	}{
		{"a + b * c", bin(OpAdd, a, bin(OpMult, b, c))},
		{"a * b + c", bin(OpAdd, bin(OpMult, a, b), c)},
		{"a * b == c", bin(OpMult, a, bin(OpEq, b, c))},
		{"a == b * c", bin(OpMult, bin(OpEq, a, b), c)},
		{"a - b < c", bin(OpSub, a, bin(OpLess, b, c))},
		{"a + b * c == d", bin(OpAdd, a, bin(OpMult, b, bin(OpEq, c, d)))},
		{"a == b + c * d", bin(OpAdd, bin(OpEq, a, b), bin(OpMult, c, d))},
		{"-a + b", bin(OpAdd, unary(UnaryNeg, a), b)},
		{"a * -b", bin(OpMult, a, unary(UnaryNeg, b))},
		{"!a == b", bin(OpEq, unary(UnaryNot, a), b)},
		{"(a + b) * c", bin(OpMult, paren(bin(OpAdd, a, b)), c)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := ParseExpressionSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseCall(t *testing.T) {
	assert := assert.New(t)

	expr, err := ParseExpressionSource("f(a, g(b),)")
	assert.NoError(err)
	assert.Equal(
		texpr(NewCallExpr(NewSymbol("f"), []*TypedExpr{
			id("a"),
			texpr(NewCallExpr(NewSymbol("g"), []*TypedExpr{id("b")})),
		})),
		expr,
	)

	// an identifier followed by anything other than "(" is a plain term
	expr, err = ParseExpressionSource("f + (a)")
	assert.NoError(err)
	assert.Equal(bin(OpAdd, id("f"), paren(id("a"))), expr)
}

func TestParseLambda(t *testing.T) {
	assert := assert.New(t)

	expr, err := ParseExpressionSource("fun(x, y: int32) -> (x + y)")
	assert.NoError(err)
	want := NewLambdaFunc(
		[]*Param{NewParam("x", TypeUnknown), NewParam("y", TypeInt32)},
		[]Stmt{NewReturnStmt(bin(OpAdd, id("x"), id("y")))},
	)
	assert.Equal(texpr(NewLambdaExpr(want)), expr)
	assert.Equal(TypeUnknown, want.Return)
	assert.Equal(
		NewFunctionType([]Type{TypeUnknown, TypeInt32}, TypeUnknown),
		expr.Expr.(*LambdaExpr).Func.Type(),
	)

	expr, err = ParseExpressionSource("fun() begin f(); return 1; end")
	assert.NoError(err)
	want = NewLambdaFunc(
		[]*Param{},
		[]Stmt{
			NewCallStmt(NewSymbol("f"), []*TypedExpr{}),
			NewReturnStmt(num(Int32Num(1))),
		},
	)
	assert.Equal(texpr(NewLambdaExpr(want)), expr)
}

func TestParseStatements(t *testing.T) {
	testCases := []struct {
		src  string
		stmt Stmt
	}{
		{
			"let x = 1;",
			NewAssignStmt(NewSymbol("x"), NewVar(TypeUnknown), num(Int32Num(1))),
		},
		{
			"let x: bool = true;",
			NewAssignStmt(NewSymbol("x"), NewVar(TypeBool), boolean(true)),
		},
		{
			"x = 2;",
			NewReassignStmt(NewSymbol("x"), NewVar(TypeUnknown), AssignPlain, num(Int32Num(2))),
		},
		{
			"x += 2;",
			NewReassignStmt(NewSymbol("x"), NewVar(TypeUnknown), AssignAdd, num(Int32Num(2))),
		},
		{
			"x -= 2;",
			NewReassignStmt(NewSymbol("x"), NewVar(TypeUnknown), AssignSub, num(Int32Num(2))),
		},
		{
			"x *= 2;",
			NewReassignStmt(NewSymbol("x"), NewVar(TypeUnknown), AssignMult, num(Int32Num(2))),
		},
		{
			"x /= 2;",
			NewReassignStmt(NewSymbol("x"), NewVar(TypeUnknown), AssignDiv, num(Int32Num(2))),
		},
		{
			"f(x);",
			NewCallStmt(NewSymbol("f"), []*TypedExpr{id("x")}),
		},
		{
			"return x;",
			NewReturnStmt(id("x")),
		},
		{
			"fun f(a: int32) begin end",
			NewFuncDefStmt(&Func{"f", []*Param{NewParam("a", TypeInt32)}, TypeNil, []Stmt{}}),
		},
		{
			"fun f() -> fun() -> bool begin return g; end",
			NewFuncDefStmt(&Func{
				"f",
				[]*Param{},
				NewFunctionType([]Type{}, TypeBool),
				[]Stmt{NewReturnStmt(id("g"))},
			}),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		stmt, err := ParseStatementSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.stmt, stmt, tc.src)
	}
}

func TestParseIf(t *testing.T) {
	assert := assert.New(t)

	stmt, err := ParseStatementSource("if a then f(); else if b then else then g(); end")
	assert.NoError(err)
	assert.Equal(
		NewIfStmt([]*IfCase{
			{id("a"), []Stmt{NewCallStmt(NewSymbol("f"), []*TypedExpr{})}, false},
			{id("b"), []Stmt{}, false},
			{boolean(true), []Stmt{NewCallStmt(NewSymbol("g"), []*TypedExpr{})}, true},
		}),
		stmt,
	)

	// `else if true` stays an ordinary case
	stmt, err = ParseStatementSource("if a then else if true then end")
	assert.NoError(err)
	cases := stmt.(*IfStmt).Cases
	assert.Len(cases, 2)
	assert.False(cases[1].IsElse)
	assert.Equal(boolean(true), cases[1].Cond)
}

func TestParseProgramAndRoot(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgramSource("program main begin let x = 1; end")
	assert.NoError(err)
	assert.Equal(&Program{
		NewSymbol("main"),
		[]Stmt{NewAssignStmt(NewSymbol("x"), NewVar(TypeUnknown), num(Int32Num(1)))},
	}, prog)

	root, err := ParseSource("f(); program main begin end g();")
	assert.NoError(err)
	assert.Equal(&Root{
		[]Stmt{NewCallStmt(NewSymbol("f"), []*TypedExpr{})},
		&Program{NewSymbol("main"), []Stmt{}},
		[]Stmt{NewCallStmt(NewSymbol("g"), []*TypedExpr{})},
	}, root)
}

func TestParseTypes(t *testing.T) {
	testCases := []struct {
		src string
		typ Type
	}{
		{"int32", TypeInt32},
		{"int64", TypeInt64},
		{"uint32", TypeUInt32},
		{"uint64", TypeUInt64},
		{"float32", TypeFloat32},
		{"float64", TypeFloat64},
		{"bool", TypeBool},
		{"string", TypeString},
		{"Nil", TypeNil},
		{"(((bool)))", TypeBool},
		{"fun() -> Nil", NewFunctionType([]Type{}, TypeNil)},
		{
			"fun(int32, fun(bool) -> string) -> uint64",
			NewFunctionType(
				[]Type{TypeInt32, NewFunctionType([]Type{TypeBool}, TypeString)},
				TypeUInt64,
			),
		},
		{
			"fun(int32) -> fun(int32) -> int32",
			NewFunctionType(
				[]Type{TypeInt32},
				NewFunctionType([]Type{TypeInt32}, TypeInt32),
			),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		typ, err := ParseTypeSource(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.typ, typ, tc.src)
	}
}

func TestParseWithErrors(t *testing.T) {
	testCases := []struct {
		mode Mode
		src  string
		err  error
	}{
		{ModeExpr, "", NewParseError(tokEOF(1, 1), "Expect expression.")},
		{ModeExpr, "a +", NewParseError(tokEOF(1, 4), "Expect expression.")},
		{ModeExpr, "f(a b)", NewParseError(NewToken(IDENT, "b", 1, 5), "Expect ')' after arguments.")},
		{ModeExpr, "fun(x) -> x", NewParseError(NewToken(IDENT, "x", 1, 11), "Expect '(' before lambda body.")},
		{ModeExpr, "let", NewParseError(NewToken(LET, "let", 1, 1), "Expect expression.")},
		{ModeStmt, "1;", NewParseError(NewToken(NUMBER, "1", 1, 1), "Expect statement.")},
		{ModeStmt, "let x: int = 1;", NewParseError(NewToken(IDENT, "int", 1, 8), "Expect type.")},
		{ModeStmt, "if a f(); end", NewParseError(NewToken(IDENT, "f", 1, 6), "Expect 'then' after condition.")},
		{ModeStmt, "if a then", NewParseError(tokEOF(1, 10), "Expect 'end' after if statement.")},
		{ModeStmt, "return;", NewParseError(NewToken(SEMICOLON, ";", 1, 7), "Expect expression.")},
		{ModeStmt, "fun (a: int32) begin end", NewParseError(NewToken(L_PAREN, "(", 1, 5), "Expect function name.")},
		{ModeStmt, "fun f() -> int32 end", NewParseError(NewToken(END, "end", 1, 18), "Expect 'begin' before function body.")},
		{ModeStmt, "x = 1; y = 2;", NewParseError(NewToken(IDENT, "y", 1, 8), "Expect end of input after statement.")},
		{ModeProgram, "program begin end", NewParseError(NewToken(BEGIN, "begin", 1, 9), "Expect program name.")},
		{ModeProgram, "program p begin", NewParseError(tokEOF(1, 16), "Expect 'end' after program body.")},
		{ModeType, "fun(int32 bool) -> Nil", NewParseError(NewToken(BOOL, "bool", 1, 11), "Expect ')' after function type parameters.")},
		{ModeType, "(int32", NewParseError(tokEOF(1, 7), "Expect ')' after type.")},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		node, err := ParseMode(tc.src, tc.mode)

		assert.Equal(tc.err, err, tc.src)
		assert.True(isNilNode(node), tc.src)
	}
}

func TestParseLiteralErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseExpressionSource("1 + 99999999999")
	assert.Error(err)

	litErr, ok := err.(*LiteralError)
	assert.True(ok)
	assert.Equal(NewToken(NUMBER, "99999999999", 1, 5), litErr.Token)
	assert.Contains(err.Error(), "[line 1:5] Error at '99999999999': invalid int32 literal")
}

func TestNewParserAppendsEOF(t *testing.T) {
	assert := assert.New(t)

	toks := []*Token{NewToken(IDENT, "abc", 3, 7)}
	parser := NewParser(toks)
	assert.Len(toks, 1)

	_, err := parser.ParseStatement()
	assert.Equal(NewParseError(tokEOF(3, 10), "Expect assignment operator or '(' after identifier."), err)

	_, err = NewParser(nil).ParseType()
	assert.Equal(NewParseError(tokEOF(1, 1), "Expect type."), err)
}

func TestDeclaredSymbol(t *testing.T) {
	assert := assert.New(t)

	stmt, err := ParseStatementSource("let x: int64 = 1i64;")
	assert.NoError(err)
	mapping, ok := DeclaredSymbol(stmt)
	assert.True(ok)
	assert.Equal(IdentMapping{NewSymbol("x"), Var{TypeInt64}}, mapping)

	stmt, err = ParseStatementSource("fun f(a: bool) -> string begin end")
	assert.NoError(err)
	mapping, ok = DeclaredSymbol(stmt)
	assert.True(ok)
	assert.Equal(NewSymbol("f"), mapping.Symbol)
	assert.Equal(NewFunctionType([]Type{TypeBool}, TypeString), mapping.Var.Type)

	stmt, err = ParseStatementSource("x += 1;")
	assert.NoError(err)
	_, ok = DeclaredSymbol(stmt)
	assert.False(ok)
}

// isNilNode reports whether a ParseMode result holds no node.
func isNilNode(node interface{}) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Root:
		return n == nil
	case *Program:
		return n == nil
	case *TypedExpr:
		return n == nil
	}
	return false
}
