package rascal

// Term is a leaf of an expression: a literal, a name or a parenthesized
// expression.
type Term interface {
	isTerm()
}

type IdTerm struct {
	Name string
}

type NumTerm struct {
	Value Num
}

type BoolTerm struct {
	Value bool
}

// StringTerm holds the literal exactly as written, quotes and escapes included.
type StringTerm struct {
	Raw string
}

// ExprTerm is a parenthesized expression.
type ExprTerm struct {
	Expr *TypedExpr
}

func (*IdTerm) isTerm()     {}
func (*NumTerm) isTerm()    {}
func (*BoolTerm) isTerm()   {}
func (*StringTerm) isTerm() {}
func (*ExprTerm) isTerm()   {}

// TypedTerm pairs a term with its type. Only boolean and string literals are
// typed by the parser, every other term starts as TypeUnknown.
type TypedTerm struct {
	Term Term
	Type Type
}

func NewTypedTerm(term Term) *TypedTerm {
	t := Type(TypeUnknown)
	switch term.(type) {
	case *BoolTerm:
		t = TypeBool
	case *StringTerm:
		t = TypeString
	}
	return &TypedTerm{term, t}
}

// TypedExpr pairs an expression with its type, TypeUnknown until inferred.
type TypedExpr struct {
	Expr Expr
	Type Type
}

func NewTypedExpr(expr Expr) *TypedExpr {
	return &TypedExpr{expr, TypeUnknown}
}

// Symbol is a name reference that has not been resolved to a declaration.
type Symbol struct {
	Ident string
}

func NewSymbol(ident string) Symbol {
	return Symbol{ident}
}

// Var is the variable slot a binding statement declares or writes to.
type Var struct {
	Type Type
}

func NewVar(t Type) *Var {
	return &Var{t}
}

// IdentMapping links a declared name to the variable it introduces.
type IdentMapping struct {
	Symbol Symbol
	Var    Var
}

type UnaryOp uint8

const (
	UnaryNot UnaryOp = iota
	UnaryNeg
)

func (op UnaryOp) String() string {
	if op == UnaryNot {
		return "!"
	}
	return "-"
}

type BinaryOp uint8

const (
	OpEq BinaryOp = iota
	OpNeq
	OpLeq
	OpGeq
	OpLess
	OpGreater
	OpMult
	OpDiv
	OpAdd
	OpSub
)

var binaryOpText = [...]string{
	OpEq:      "==",
	OpNeq:     "!=",
	OpLeq:     "<=",
	OpGeq:     ">=",
	OpLess:    "<",
	OpGreater: ">",
	OpMult:    "*",
	OpDiv:     "/",
	OpAdd:     "+",
	OpSub:     "-",
}

func (op BinaryOp) String() string {
	return binaryOpText[op]
}

// AssignOp tags a reassignment. Compound operators are not desugared here.
type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMult
	AssignDiv
)

var assignOpText = [...]string{
	AssignPlain: "=",
	AssignAdd:   "+=",
	AssignSub:   "-=",
	AssignMult:  "*=",
	AssignDiv:   "/=",
}

func (op AssignOp) String() string {
	return assignOpText[op]
}

// Param is a function parameter. Lambda parameters may have TypeUnknown.
type Param struct {
	Name string
	Type Type
}

func NewParam(name string, t Type) *Param {
	return &Param{name, t}
}

// Func is a named function definition.
type Func struct {
	Ident  string
	Params []*Param
	Return Type
	Block  []Stmt
}

// Type returns the function's signature.
func (fn *Func) Type() *FunctionType {
	return NewFunctionType(paramTypes(fn.Params), fn.Return)
}

// LambdaFunc is an anonymous function, its return type is always left for
// inference.
type LambdaFunc struct {
	Params []*Param
	Return Type
	Block  []Stmt
}

func NewLambdaFunc(params []*Param, block []Stmt) *LambdaFunc {
	return &LambdaFunc{params, TypeUnknown, block}
}

// Type returns the lambda's signature as far as it is known.
func (fn *LambdaFunc) Type() *FunctionType {
	return NewFunctionType(paramTypes(fn.Params), fn.Return)
}

func paramTypes(params []*Param) []Type {
	types := make([]Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}

// IfCase is one branch of an if chain. IsElse marks the trailing `else then`
// branch, whose condition is a synthesized `true`.
type IfCase struct {
	Cond   *TypedExpr
	Block  []Stmt
	IsElse bool
}

// Program is the named block the host runs.
type Program struct {
	Name  Symbol
	Block []Stmt
}

// Root is the top-level parse unit: setup statements, the program and
// teardown statements.
type Root struct {
	PreBlock  []Stmt
	Program   *Program
	PostBlock []Stmt
}

// DeclaredSymbol returns the name a statement introduces into its block, if
// any. Only `let` bindings and function definitions declare names.
func DeclaredSymbol(stmt Stmt) (IdentMapping, bool) {
	switch s := stmt.(type) {
	case *AssignStmt:
		return IdentMapping{s.Symbol, *s.Var}, true
	case *FuncDefStmt:
		return IdentMapping{NewSymbol(s.Func.Ident), Var{s.Func.Type()}}, true
	}
	return IdentMapping{}, false
}
