package rascal

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func tokEOF(line int, column int) *Token {
	return NewToken(EOF, "", line, column)
}

func tok(typ TokenType, lexeme string) *Token {
	return NewToken(typ, lexeme, 1, 1)
}

// texpr wraps an expression node the way the parser does.
func texpr(expr Expr) *TypedExpr {
	return NewTypedExpr(expr)
}

func id(name string) *TypedExpr {
	return texpr(NewTermExpr(NewTypedTerm(&IdTerm{name})))
}

func num(n Num) *TypedExpr {
	return texpr(NewTermExpr(NewTypedTerm(&NumTerm{n})))
}

func boolean(v bool) *TypedExpr {
	return texpr(NewTermExpr(NewTypedTerm(&BoolTerm{v})))
}

func paren(e *TypedExpr) *TypedExpr {
	return texpr(NewTermExpr(NewTypedTerm(&ExprTerm{e})))
}

func bin(op BinaryOp, left, right *TypedExpr) *TypedExpr {
	return texpr(NewBinaryExpr(op, left, right))
}

func unary(op UnaryOp, operand *TypedExpr) *TypedExpr {
	return texpr(NewUnaryExpr(op, operand))
}
