package main

// This is a parser front-end for the Rascal programming language written in Go.

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ltungv/grascal/internal/rascal"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
	"gopkg.in/urfave/cli.v1"
)

const (
	promptMain = "> "
	promptCont = ". "
)

var (
	modeFlag = cli.StringFlag{
		Name:  "mode",
		Value: env.Str("GRASCAL_MODE", string(rascal.ModeRoot)),
		Usage: "grammar rule the input must match (root, program, stmt, expr, type)",
	}
	formatFlag = cli.StringFlag{
		Name:  "format",
		Value: env.Str("GRASCAL_FORMAT", "sexpr"),
		Usage: "how parsed trees are written (sexpr, source, dump)",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "write errors without terminal colors",
	}
	historyFlag = cli.StringFlag{
		Name:  "history",
		Value: env.Str("GRASCAL_HISTORY", defaultHistory()),
		Usage: "file the interactive prompt keeps its history in",
	}
)

// options are the settings shared by file and prompt mode.
type options struct {
	mode   rascal.Mode
	format string
}

func main() {
	app := cli.NewApp()
	app.Name = "grascal"
	app.Usage = "parse Rascal source and print its syntax tree"
	app.ArgsUsage = "[script]"
	app.Flags = []cli.Flag{modeFlag, formatFlag, noColorFlag, historyFlag}
	app.Action = action

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func action(ctx *cli.Context) error {
	if ctx.NArg() > 1 {
		return cli.NewExitError("Usage: grascal [script]", 64)
	}
	mode, err := rascal.ParseModeName(ctx.String(modeFlag.Name))
	if err != nil {
		return cli.NewExitError(err, 64)
	}
	if _, err := render(nil, ctx.String(formatFlag.Name)); err != nil {
		return cli.NewExitError(err, 64)
	}
	opts := options{mode, ctx.String(formatFlag.Name)}

	reporter := rascal.NewColorReporter(os.Stderr)
	if ctx.Bool(noColorFlag.Name) || env.Bool("GRASCAL_NO_COLOR") {
		reporter = rascal.NewSimpleReporter(os.Stderr)
	}

	if ctx.NArg() == 0 {
		return runPrompt(opts, reporter, ctx.String(historyFlag.Name))
	}
	return runFile(ctx.Args().First(), opts, reporter)
}

// run parses the source and writes the tree to out, parse failures go to the
// reporter.
func run(source string, opts options, reporter rascal.Reporter, out io.Writer) {
	node, err := rascal.ParseMode(source, opts.mode)
	if err != nil {
		reporter.Report(err)
		return
	}
	text, err := render(node, opts.format)
	if err != nil {
		reporter.Report(err)
		return
	}
	fmt.Fprintln(out, strings.TrimRight(text, "\n"))
}

// render writes node in the named format. A nil node only checks the format
// name.
func render(node interface{}, format string) (string, error) {
	switch format {
	case "sexpr":
		if node == nil {
			return "", nil
		}
		return new(rascal.SExprPrinter).Print(node), nil
	case "source":
		if node == nil {
			return "", nil
		}
		return rascal.NewSourcePrinter().Print(node), nil
	case "dump":
		cfg := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		return cfg.Sdump(node), nil
	}
	return "", errors.Errorf("unknown output format %q", format)
}

// Run the parser in REPL mode. Lines are collected until they form a complete
// input or fail for a reason more text cannot fix.
func runPrompt(opts options, reporter rascal.Reporter, history string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(history); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		source, ok := readInput(ln, opts.mode)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(source) == "" {
			continue
		}
		run(source, opts, reporter, os.Stdout)
		reporter.Reset()
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))
	}

	if history == "" {
		return nil
	}
	f, err := os.Create(history)
	if err != nil {
		return errors.Wrap(err, "save history")
	}
	defer f.Close()
	_, err = ln.WriteHistory(f)
	return errors.Wrap(err, "save history")
}

func readInput(ln *liner.State, mode rascal.Mode) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input
			return "", true
		}

		// an empty line submits whatever is pending
		if b.Len() > 0 && strings.TrimSpace(line) == "" {
			return b.String(), true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		source := b.String()
		if _, err := rascal.ParseMode(source, mode); err != nil && rascal.IsIncomplete(err) {
			continue
		}
		return source, true
	}
}

// Run the given file as script
func runFile(fpath string, opts options, reporter rascal.Reporter) error {
	bytes, err := ioutil.ReadFile(fpath)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	run(string(bytes), opts, reporter, os.Stdout)
	if reporter.HadError() {
		return cli.NewExitError("", 65)
	}
	return nil
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".grascal_history")
}
