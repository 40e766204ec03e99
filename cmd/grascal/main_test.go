package main

import (
	"strings"
	"testing"

	"github.com/ltungv/grascal/internal/rascal"
	"github.com/stretchr/testify/assert"
)

func TestRunFormats(t *testing.T) {
	testCases := []struct {
		mode   rascal.Mode
		format string
		src    string
		out    string
	}{
		{rascal.ModeExpr, "sexpr", "1 + x", "(add (num int32 1) (id x))\n"},
		{rascal.ModeExpr, "source", "1+(x)", "1 + (x)\n"},
		{rascal.ModeStmt, "source", "let   y=2;", "let y = 2;\n"},
		{rascal.ModeType, "sexpr", "fun(bool) -> Nil", "(fun (params bool) Nil)\n"},
		{rascal.ModeProgram, "source", "program p begin end", "program p begin\nend\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		var out, errs strings.Builder
		reporter := rascal.NewSimpleReporter(&errs)
		run(tc.src, options{tc.mode, tc.format}, reporter, &out)

		assert.False(reporter.HadError(), errs.String())
		assert.Equal(tc.out, out.String())
	}
}

func TestRunDump(t *testing.T) {
	assert := assert.New(t)

	var out, errs strings.Builder
	run("x", options{rascal.ModeExpr, "dump"}, rascal.NewSimpleReporter(&errs), &out)

	assert.Contains(out.String(), "(*rascal.TypedExpr)")
	assert.Contains(out.String(), `Name: (string) (len=1) "x"`)
	assert.NotContains(out.String(), "0xc")
}

func TestRunReportsErrors(t *testing.T) {
	assert := assert.New(t)

	var out, errs strings.Builder
	reporter := rascal.NewSimpleReporter(&errs)
	run("let x = ;", options{rascal.ModeStmt, "sexpr"}, reporter, &out)

	assert.True(reporter.HadError())
	assert.Equal("", out.String())
	assert.Equal("[line 1:9] Error at ';': Expect expression.\n", errs.String())
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	assert := assert.New(t)

	_, err := render(nil, "json")
	assert.EqualError(err, `unknown output format "json"`)

	for _, format := range []string{"sexpr", "source", "dump"} {
		_, err := render(nil, format)
		assert.NoError(err)
	}
}
