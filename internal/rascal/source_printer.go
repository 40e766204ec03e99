package rascal

import (
	"fmt"
	"strings"
)

// SourcePrinter renders nodes back into Rascal source. Parenthesized
// expressions are kept as written and new parentheses are only added where a
// tree could not be spelled otherwise, so printing a parsed tree and parsing
// the text again gives back an equal tree.
type SourcePrinter struct {
	Indent string
	depth  int
}

// NewSourcePrinter creates a printer that indents blocks with four spaces.
func NewSourcePrinter() *SourcePrinter {
	return &SourcePrinter{Indent: "    "}
}

// Print renders a Root, Program, Stmt, *TypedExpr, Expr or Type.
func (printer *SourcePrinter) Print(node interface{}) string {
	switch n := node.(type) {
	case *Root:
		var sb strings.Builder
		printer.writeBlock(&sb, n.PreBlock)
		sb.WriteString(printer.program(n.Program))
		printer.writeBlock(&sb, n.PostBlock)
		return sb.String()
	case *Program:
		return printer.program(n)
	case Stmt:
		return n.Accept(printer).(string)
	case *TypedExpr:
		return printer.expr(n)
	case Expr:
		return n.Accept(printer).(string)
	case Type:
		return typeSource(n)
	}
	panic(fmt.Sprintf("source printer: unsupported node %T", node))
}

func (printer *SourcePrinter) program(prog *Program) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sprogram %s begin\n", printer.indent(), prog.Name.Ident)
	printer.writeNested(&sb, prog.Block)
	fmt.Fprintf(&sb, "%send\n", printer.indent())
	return sb.String()
}

// writeBlock writes each statement of the block at the current depth.
func (printer *SourcePrinter) writeBlock(sb *strings.Builder, stmts []Stmt) {
	for _, stmt := range stmts {
		sb.WriteString(stmt.Accept(printer).(string))
	}
}

// writeNested writes the block one level deeper than the current depth.
func (printer *SourcePrinter) writeNested(sb *strings.Builder, stmts []Stmt) {
	printer.depth++
	printer.writeBlock(sb, stmts)
	printer.depth--
}

func (printer *SourcePrinter) indent() string {
	return strings.Repeat(printer.Indent, printer.depth)
}

func (printer *SourcePrinter) expr(expr *TypedExpr) string {
	return expr.Expr.Accept(printer).(string)
}

func (printer *SourcePrinter) exprList(exprs []*TypedExpr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = printer.expr(e)
	}
	return strings.Join(parts, ", ")
}

// operand renders a binary operand, wrapping it in parentheses when its own
// operator would otherwise regroup with the parent.
func (printer *SourcePrinter) operand(expr *TypedExpr, parent precedence, right bool) string {
	s := printer.expr(expr)
	if bin, ok := expr.Expr.(*BinaryExpr); ok {
		prec := binaryPrecedence(bin.Op)
		if prec < parent || (right && prec == parent) {
			return "(" + s + ")"
		}
	}
	return s
}

func binaryPrecedence(op BinaryOp) precedence {
	for _, info := range binaryOperators {
		if info.op == op {
			return info.prec
		}
	}
	return precTerm
}

func (printer *SourcePrinter) VisitTermExpr(expr *TermExpr) interface{} {
	switch t := expr.Term.Term.(type) {
	case *IdTerm:
		return t.Name
	case *NumTerm:
		return numSource(t.Value)
	case *BoolTerm:
		return fmt.Sprintf("%t", t.Value)
	case *StringTerm:
		return t.Raw
	case *ExprTerm:
		return "(" + printer.expr(t.Expr) + ")"
	}
	panic(fmt.Sprintf("source printer: unsupported term %T", expr.Term.Term))
}

func (printer *SourcePrinter) VisitCallExpr(expr *CallExpr) interface{} {
	return fmt.Sprintf("%s(%s)", expr.Callee.Ident, printer.exprList(expr.Args))
}

func (printer *SourcePrinter) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	s := printer.expr(expr.Operand)
	if _, ok := expr.Operand.Expr.(*BinaryExpr); ok {
		s = "(" + s + ")"
	}
	return expr.Op.String() + s
}

func (printer *SourcePrinter) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	prec := binaryPrecedence(expr.Op)
	return fmt.Sprintf(
		"%s %s %s",
		printer.operand(expr.Left, prec, false),
		expr.Op,
		printer.operand(expr.Right, prec, true),
	)
}

func (printer *SourcePrinter) VisitLambdaExpr(expr *LambdaExpr) interface{} {
	fn := expr.Func
	params := paramsSource(fn.Params)
	if len(fn.Block) == 1 {
		if ret, ok := fn.Block[0].(*ReturnStmt); ok {
			return fmt.Sprintf("fun(%s) -> (%s)", params, printer.expr(ret.Value))
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "fun(%s) begin\n", params)
	printer.writeNested(&sb, fn.Block)
	fmt.Fprintf(&sb, "%send", printer.indent())
	return sb.String()
}

func (printer *SourcePrinter) VisitAssignStmt(stmt *AssignStmt) interface{} {
	decl := stmt.Symbol.Ident
	if !IsUnknown(stmt.Var.Type) {
		decl += ": " + typeSource(stmt.Var.Type)
	}
	return fmt.Sprintf("%slet %s = %s;\n", printer.indent(), decl, printer.expr(stmt.Init))
}

func (printer *SourcePrinter) VisitReassignStmt(stmt *ReassignStmt) interface{} {
	return fmt.Sprintf(
		"%s%s %s %s;\n",
		printer.indent(),
		stmt.Symbol.Ident,
		stmt.Op,
		printer.expr(stmt.Value),
	)
}

func (printer *SourcePrinter) VisitIfStmt(stmt *IfStmt) interface{} {
	var sb strings.Builder
	for i, c := range stmt.Cases {
		switch {
		case i == 0:
			fmt.Fprintf(&sb, "%sif %s then\n", printer.indent(), printer.expr(c.Cond))
		case c.IsElse:
			fmt.Fprintf(&sb, "%selse then\n", printer.indent())
		default:
			fmt.Fprintf(&sb, "%selse if %s then\n", printer.indent(), printer.expr(c.Cond))
		}
		printer.writeNested(&sb, c.Block)
	}
	fmt.Fprintf(&sb, "%send\n", printer.indent())
	return sb.String()
}

func (printer *SourcePrinter) VisitCallStmt(stmt *CallStmt) interface{} {
	return fmt.Sprintf(
		"%s%s(%s);\n",
		printer.indent(),
		stmt.Callee.Ident,
		printer.exprList(stmt.Args),
	)
}

func (printer *SourcePrinter) VisitFuncDefStmt(stmt *FuncDefStmt) interface{} {
	fn := stmt.Func
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sfun %s(%s)", printer.indent(), fn.Ident, paramsSource(fn.Params))
	if ret, ok := fn.Return.(PrimitiveType); !ok || ret != TypeNil {
		fmt.Fprintf(&sb, " -> %s", typeSource(fn.Return))
	}
	sb.WriteString(" begin\n")
	printer.writeNested(&sb, fn.Block)
	fmt.Fprintf(&sb, "%send\n", printer.indent())
	return sb.String()
}

func (printer *SourcePrinter) VisitReturnStmt(stmt *ReturnStmt) interface{} {
	return fmt.Sprintf("%sreturn %s;\n", printer.indent(), printer.expr(stmt.Value))
}

func paramsSource(params []*Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if IsUnknown(p.Type) {
			parts[i] = p.Name
		} else {
			parts[i] = p.Name + ": " + typeSource(p.Type)
		}
	}
	return strings.Join(parts, ", ")
}

func typeSource(t Type) string {
	return t.String()
}

// numSource spells a literal with the suffix that selects its variant again.
func numSource(n Num) string {
	switch n.(type) {
	case Int64Num:
		return n.String() + "i64"
	case UInt32Num:
		return n.String() + "u32"
	case UInt64Num:
		return n.String() + "u64"
	case Float32Num:
		return n.String() + "f32"
	}
	return n.String()
}
