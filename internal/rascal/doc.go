/*
Package rascal turns Rascal source text into a syntax tree.

Grammars

	root       --> block program block EOF ;
	program    --> "program" IDENT "begin" block "end" ;
	block      --> stmt* ;
	stmt       --> letStmt
	             | ifStmt
	             | funDef
	             | returnStmt
	             | callStmt
	             | reassign ;
	letStmt    --> "let" IDENT ( ":" type )? "=" expression ";" ;
	ifStmt     --> "if" expression "then" block
	               ( "else" "if" expression "then" block )*
	               ( "else" "then" block )?
	               "end" ;
	funDef     --> "fun" IDENT "(" params ")" ( "->" type )? "begin" block "end" ;
	returnStmt --> "return" expression ";" ;
	callStmt   --> IDENT "(" args ")" ";" ;
	reassign   --> IDENT ( "=" | "+=" | "-=" | "*=" | "/=" ) expression ";" ;
	params     --> ( IDENT ":" type ( "," IDENT ":" type )* ","? )? ")" ;
	expression --> unary ( OP unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | primary ;
	primary    --> lambda
	             | IDENT "(" args ")"
	             | term ;
	lambda     --> "fun" "(" optParams ")" "->" "(" expression ")"
	             | "fun" "(" optParams ")" "begin" block "end" ;
	optParams  --> ( IDENT ( ":" type )? ( "," IDENT ( ":" type )? )* ","? )? ")" ;
	args       --> ( expression ( "," expression )* ","? )? ")" ;
	term       --> IDENT | NUMBER | STRING
	             | "true" | "false"
	             | "(" expression ")" ;
	type       --> "int32" | "int64" | "uint32" | "uint64"
	             | "float32" | "float64" | "bool" | "string" | "Nil"
	             | "fun" "(" ( type ( "," type )* ","? )? ")" "->" type
	             | "(" type ")" ;

Binary operators, loosest first. Every level groups from the left.

	+ -
	* /
	== != <= >= < >

Unary operators bind tighter than any binary operator, so `-a * b` is
`(-a) * b` and `!a == b` is `(!a) == b`.

Numbers take an optional suffix choosing their representation: none is int32
for integers and float64 for decimals, i32 i64 u32 u64 f32 f64 pick the
matching type.
*/
package rascal

//go:generate go run ../cmd/ast_codegen .
