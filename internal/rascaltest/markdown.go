// Package rascaltest reads parser test cases written as Markdown documents.
//
// Every case starts at a heading "Test: <name>" and holds exactly one input
// fence followed by one or more assertion fences:
//
//	## Test: sum
//	```rascal-expr
//	1 + 2
//	```
//	```ast
//	(add (num int32 1) (num int32 2))
//	```
package rascaltest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputType names the grammar rule an input fence is parsed with.
type InputType string

const (
	InputTypeRoot    InputType = "rascal-root"
	InputTypeProgram InputType = "rascal-program"
	InputTypeStmt    InputType = "rascal-stmt"
	InputTypeExpr    InputType = "rascal-expr"
	InputTypeType    InputType = "rascal-type"
)

// Mode is the parse mode name for the input, "expr" for rascal-expr.
func (t InputType) Mode() string {
	return strings.TrimPrefix(string(t), "rascal-")
}

// AssertionType names what an assertion fence checks.
type AssertionType string

const (
	// AssertAST compares the S-expression rendering of the tree.
	AssertAST AssertionType = "ast"
	// AssertSource compares the source rendering of the tree.
	AssertSource AssertionType = "source"
	// AssertError expects the parse to fail with a message containing the
	// fence content.
	AssertError AssertionType = "error"
)

type Assertion struct {
	Type    AssertionType
	Content string
	Line    int
}

type TestCase struct {
	Name       string
	Input      string
	InputType  InputType
	Assertions []Assertion
}

// ExtractTestCases parses a Markdown document and returns its test cases in
// document order.
func ExtractTestCases(markdown string) ([]TestCase, error) {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var cases []TestCase
	var current *TestCase

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, source)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkContinue, nil
			}
			if current != nil {
				if err := validate(current); err != nil {
					return ast.WalkStop, err
				}
				cases = append(cases, *current)
			}
			current = &TestCase{Name: strings.TrimPrefix(heading, "Test: ")}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			content := strings.TrimRight(fenceContent(n, source), "\n")
			line := lineNumber(n, source)

			if current == nil {
				if language != "" {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", line, language)
				}
				return ast.WalkContinue, nil
			}

			switch {
			case isInputFence(language):
				if current.InputType != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences in test '%s'", line, current.Name)
				}
				current.Input = content
				current.InputType = InputType(language)
			case isAssertionFence(language):
				current.Assertions = append(current.Assertions, Assertion{
					Type:    AssertionType(language),
					Content: content,
					Line:    line,
				})
			case language != "":
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", line, language, current.Name)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if current != nil {
		if err := validate(current); err != nil {
			return nil, err
		}
		cases = append(cases, *current)
	}
	return cases, nil
}

// Normalize collapses whitespace in an S-expression so that layout in the
// Markdown file does not matter. Whitespace inside string literals is kept.
func Normalize(sexpr string) string {
	var sb strings.Builder
	inString, escaped, pendingSpace := false, false, false
	for _, r := range strings.TrimSpace(sexpr) {
		if inString {
			sb.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case ' ', '\t', '\n', '\r':
			pendingSpace = true
			continue
		case ')':
			pendingSpace = false
		}
		if pendingSpace && !strings.HasSuffix(sb.String(), "(") {
			sb.WriteByte(' ')
		}
		pendingSpace = false
		if r == '"' {
			inString = true
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func fenceContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < block.Lines().Len(); i++ {
		line := block.Lines().At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func isInputFence(language string) bool {
	switch InputType(language) {
	case InputTypeRoot, InputTypeProgram, InputTypeStmt, InputTypeExpr, InputTypeType:
		return true
	}
	return false
}

func isAssertionFence(language string) bool {
	switch AssertionType(language) {
	case AssertAST, AssertSource, AssertError:
		return true
	}
	return false
}

func validate(tc *TestCase) error {
	if tc.InputType == "" {
		return fmt.Errorf("test '%s' has no input fence", tc.Name)
	}
	if len(tc.Assertions) == 0 {
		return fmt.Errorf("test '%s' has no assertion fences", tc.Name)
	}
	return nil
}

func lineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	start := node.Lines().At(0).Start
	return bytes.Count(source[:start], []byte("\n")) + 1
}
