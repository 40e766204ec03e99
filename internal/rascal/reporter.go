package rascal

import (
	"io"

	"github.com/fatih/color"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	Reset()
	HadError() bool
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer io.Writer
	paint  *color.Color
	hadErr bool
}

// NewSimpleReporter creates a reporter that writes plain lines.
func NewSimpleReporter(writer io.Writer) Reporter {
	paint := color.New()
	paint.DisableColor()
	return &SimpleReporter{writer, paint, false}
}

// NewColorReporter creates a reporter that writes errors in bold red, unless
// color output is turned off for the process (stdout is not a terminal).
func NewColorReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, color.New(color.FgRed, color.Bold), false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	reporter.paint.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}
