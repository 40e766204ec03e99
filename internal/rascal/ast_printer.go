package rascal

import (
	"fmt"
	"strings"
)

// SExprPrinter renders nodes as S-expressions, e.g. `1 + 2 * 3` becomes
// `(add (num int32 1) (mult (num int32 2) (num int32 3)))`.
type SExprPrinter struct{}

// Print renders a Root, Program, Stmt, *TypedExpr, Expr or Type.
func (printer *SExprPrinter) Print(node interface{}) string {
	switch n := node.(type) {
	case *Root:
		return printer.root(n)
	case *Program:
		return printer.program(n)
	case Stmt:
		return n.Accept(printer).(string)
	case *TypedExpr:
		return printer.expr(n)
	case Expr:
		return n.Accept(printer).(string)
	case Type:
		return printer.typ(n)
	}
	panic(fmt.Sprintf("sexpr printer: unsupported node %T", node))
}

func (printer *SExprPrinter) root(root *Root) string {
	return fmt.Sprintf(
		"(root %s %s %s)",
		printer.block(root.PreBlock),
		printer.program(root.Program),
		printer.block(root.PostBlock),
	)
}

func (printer *SExprPrinter) program(prog *Program) string {
	return fmt.Sprintf("(program %s %s)", prog.Name.Ident, printer.block(prog.Block))
}

func (printer *SExprPrinter) block(stmts []Stmt) string {
	parts := []string{"block"}
	for _, stmt := range stmts {
		parts = append(parts, stmt.Accept(printer).(string))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (printer *SExprPrinter) expr(expr *TypedExpr) string {
	return expr.Expr.Accept(printer).(string)
}

func (printer *SExprPrinter) exprs(head string, exprs []*TypedExpr) string {
	parts := []string{head}
	for _, e := range exprs {
		parts = append(parts, printer.expr(e))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (printer *SExprPrinter) params(params []*Param) string {
	parts := []string{"params"}
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("(%s %s)", p.Name, printer.typ(p.Type)))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (printer *SExprPrinter) typ(t Type) string {
	fn, ok := t.(*FunctionType)
	if !ok {
		return t.String()
	}
	parts := []string{"params"}
	for _, p := range fn.Params {
		parts = append(parts, printer.typ(p))
	}
	return fmt.Sprintf("(fun (%s) %s)", strings.Join(parts, " "), printer.typ(fn.Return))
}

func (printer *SExprPrinter) term(term *TypedTerm) string {
	switch t := term.Term.(type) {
	case *IdTerm:
		return fmt.Sprintf("(id %s)", t.Name)
	case *NumTerm:
		return fmt.Sprintf("(num %s %s)", t.Value.Type(), t.Value)
	case *BoolTerm:
		return fmt.Sprintf("(bool %t)", t.Value)
	case *StringTerm:
		return fmt.Sprintf("(str %s)", t.Raw)
	case *ExprTerm:
		return fmt.Sprintf("(paren %s)", printer.expr(t.Expr))
	}
	panic(fmt.Sprintf("sexpr printer: unsupported term %T", term.Term))
}

var sexprBinaryNames = [...]string{
	OpEq:      "eq",
	OpNeq:     "neq",
	OpLeq:     "leq",
	OpGeq:     "geq",
	OpLess:    "lt",
	OpGreater: "gt",
	OpMult:    "mult",
	OpDiv:     "div",
	OpAdd:     "add",
	OpSub:     "sub",
}

func (printer *SExprPrinter) VisitTermExpr(expr *TermExpr) interface{} {
	return printer.term(expr.Term)
}

func (printer *SExprPrinter) VisitCallExpr(expr *CallExpr) interface{} {
	return printer.exprs("call "+expr.Callee.Ident, expr.Args)
}

func (printer *SExprPrinter) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	name := "neg"
	if expr.Op == UnaryNot {
		name = "not"
	}
	return fmt.Sprintf("(%s %s)", name, printer.expr(expr.Operand))
}

func (printer *SExprPrinter) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	return fmt.Sprintf(
		"(%s %s %s)",
		sexprBinaryNames[expr.Op],
		printer.expr(expr.Left),
		printer.expr(expr.Right),
	)
}

func (printer *SExprPrinter) VisitLambdaExpr(expr *LambdaExpr) interface{} {
	return fmt.Sprintf(
		"(lambda %s %s %s)",
		printer.params(expr.Func.Params),
		printer.typ(expr.Func.Return),
		printer.block(expr.Func.Block),
	)
}

func (printer *SExprPrinter) VisitAssignStmt(stmt *AssignStmt) interface{} {
	return fmt.Sprintf(
		"(let %s %s %s)",
		stmt.Symbol.Ident,
		printer.typ(stmt.Var.Type),
		printer.expr(stmt.Init),
	)
}

func (printer *SExprPrinter) VisitReassignStmt(stmt *ReassignStmt) interface{} {
	return fmt.Sprintf(
		"(reassign %s %s %s)",
		stmt.Symbol.Ident,
		stmt.Op,
		printer.expr(stmt.Value),
	)
}

func (printer *SExprPrinter) VisitIfStmt(stmt *IfStmt) interface{} {
	parts := []string{"if"}
	for _, c := range stmt.Cases {
		head := "case"
		if c.IsElse {
			head = "else"
		}
		parts = append(parts, fmt.Sprintf(
			"(%s %s %s)", head, printer.expr(c.Cond), printer.block(c.Block),
		))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (printer *SExprPrinter) VisitCallStmt(stmt *CallStmt) interface{} {
	return printer.exprs("callstmt "+stmt.Callee.Ident, stmt.Args)
}

func (printer *SExprPrinter) VisitFuncDefStmt(stmt *FuncDefStmt) interface{} {
	return fmt.Sprintf(
		"(fundef %s %s %s %s)",
		stmt.Func.Ident,
		printer.params(stmt.Func.Params),
		printer.typ(stmt.Func.Return),
		printer.block(stmt.Func.Block),
	)
}

func (printer *SExprPrinter) VisitReturnStmt(stmt *ReturnStmt) interface{} {
	return fmt.Sprintf("(return %s)", printer.expr(stmt.Value))
}
