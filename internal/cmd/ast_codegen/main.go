package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// we do it the scripting way, one line per node: "Name: Field Type, ..."
var expressionTypes = []string{
	"Term: Term *TypedTerm",
	"Call: Callee Symbol, Args []*TypedExpr",
	"Unary: Op UnaryOp, Operand *TypedExpr",
	"Binary: Op BinaryOp, Left *TypedExpr, Right *TypedExpr",
	"Lambda: Func *LambdaFunc",
}

var statementTypes = []string{
	"Assign: Symbol Symbol, Var *Var, Init *TypedExpr",
	"Reassign: Symbol Symbol, Var *Var, Op AssignOp, Value *TypedExpr",
	"If: Cases []*IfCase",
	"Call: Callee Symbol, Args []*TypedExpr",
	"FuncDef: Func *Func",
	"Return: Value *TypedExpr",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	if err := writeAst(outputDir, "Expr", expressionTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeAst(outputDir, "Stmt", statementTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeAst(outputDir string, baseName string, types []string) error {
	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := defineAst(&buf, filepath.Base(absDir), baseName, types); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", baseName, err)
	}

	fpath := filepath.Join(outputDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	return os.WriteFile(fpath, src, 0644)
}

func defineAst(writer io.Writer, packageName string, baseName string, types []string) error {
	fmt.Fprintf(writer, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(writer, "package %s\n\n", packageName)

	// Interface for the node in AST
	fmt.Fprintf(writer, "// %s is implemented by every %s node.\n", baseName, describe(baseName))
	fmt.Fprintf(writer, "type %s interface {\n", baseName)
	fmt.Fprintf(writer, "\tAccept(visitor %sVisitor) interface{}\n", baseName)
	fmt.Fprintf(writer, "}\n\n")

	if err := defineVisitor(writer, baseName, types); err != nil {
		return err
	}

	// Generate struct for each AST type
	for _, t := range types {
		typeName, fields, err := splitType(t)
		if err != nil {
			return err
		}
		defineType(writer, baseName, typeName, fields)
	}
	return nil
}

func defineVisitor(writer io.Writer, baseName string, types []string) error {
	// We have one method for each AST type
	fmt.Fprintf(writer, "// %sVisitor dispatches on the concrete %s node.\n", baseName, baseName)
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName, _, err := splitType(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) interface{}\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
	return nil
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	var fieldNames []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
		fieldNames = append(fieldNames, strings.Fields(field)[0])
	}

	// Struct definition
	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(fields, ", "),
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) interface{} {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n\n")
}

// splitType splits "Name: fields" into its two halves.
func splitType(t string) (string, string, error) {
	name, fields, ok := strings.Cut(t, ":")
	if !ok {
		return "", "", fmt.Errorf("malformed node description %q", t)
	}
	return strings.TrimSpace(name), strings.TrimSpace(fields), nil
}

func describe(baseName string) string {
	switch baseName {
	case "Expr":
		return "expression"
	case "Stmt":
		return "statement"
	}
	return strings.ToLower(baseName)
}
