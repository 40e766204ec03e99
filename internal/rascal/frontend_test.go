package rascal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFrontend(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	root := Frontend("program p begin end", report)
	assert.False(report.HadError())
	assert.Equal(&Root{[]Stmt{}, &Program{NewSymbol("p"), []Stmt{}}, []Stmt{}}, root)

	root = Frontend("program p begin", report)
	assert.Nil(root)
	assert.True(report.HadError())
	assert.Equal([]error{NewParseError(tokEOF(1, 16), "Expect 'end' after program body.")}, report.errors)

	// scanning stops at the first bad character, nothing else is reported
	report = newMockReporter()
	root = Frontend("program p begin let x = $; let y = #; end", report)
	assert.Nil(root)
	assert.Len(report.errors, 1)
	assert.Equal(NewScanError(1, 25, "Unexpected character."), report.errors[0])
}

func TestParseModeName(t *testing.T) {
	assert := assert.New(t)

	for _, m := range Modes {
		got, err := ParseModeName(string(m))
		assert.NoError(err)
		assert.Equal(m, got)
	}
	got, err := ParseModeName("EXPR")
	assert.NoError(err)
	assert.Equal(ModeExpr, got)

	_, err = ParseModeName("module")
	assert.EqualError(err, `unknown parse mode "module"`)

	_, err = ParseMode("x", Mode("module"))
	assert.Error(err)
}

func TestIsIncomplete(t *testing.T) {
	testCases := []struct {
		mode       Mode
		src        string
		incomplete bool
	}{
		{ModeRoot, "program p begin", true},
		{ModeRoot, "program p begin let x = (1 +", true},
		{ModeRoot, "fun f() begin", true},
		{ModeExpr, "\"open string", true},
		{ModeExpr, "1 /* open comment", true},
		{ModeRoot, "program p begin end end", false},
		{ModeExpr, "1 2", false},
		{ModeExpr, "@", false},
		{ModeExpr, "99999999999", false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := ParseMode(tc.src, tc.mode)

		assert.Error(err, tc.src)
		assert.Equal(tc.incomplete, IsIncomplete(err), tc.src)
	}

	wrapped := errors.Wrap(NewParseError(tokEOF(1, 1), "Expect expression."), "repl")
	assert.True(IsIncomplete(wrapped))
	assert.False(IsIncomplete(nil))
	assert.False(IsIncomplete(errors.New("other")))
}

func TestDescribe(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseExpressionSource("@")
	assert.Equal("scan", Describe(err))
	_, err = ParseExpressionSource("(")
	assert.Equal("parse", Describe(err))
	_, err = ParseExpressionSource("1.5u32")
	assert.Equal("literal", Describe(err))
	assert.Equal("literal", Describe(errors.WithMessage(err, "context")))
	assert.Equal("*errors.fundamental", Describe(errors.New("x")))
}
