package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sokinpui/pegpatch/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(os.Stderr, "  "+format+"\n", a...)
}

// PrintSummary reports a finished run on stderr.
func PrintSummary(s model.Summary) {
	Header("\n--- Patch Summary ---")
	if s.Message != "" {
		Info("%s", s.Message)
	}
	if s.Input == "" && s.Output == "" {
		return
	}
	Success("Applied %d hunk(s), %d line(s) in result:", s.Hunks, s.Lines)
	Path("- from %s", s.Input)
	Path("- to   %s", s.Output)
	if s.Target != "" {
		fmt.Fprintf(os.Stderr, "  -> %s\n", s.Target)
	}
}
