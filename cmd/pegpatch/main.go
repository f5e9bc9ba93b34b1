package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sokinpui/pegpatch/cli"
	"github.com/sokinpui/pegpatch/internal/app"
	"github.com/sokinpui/pegpatch/internal/tui"
	"github.com/sokinpui/pegpatch/internal/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// The result goes to stdout, so keep the terminal free of the TUI.
	if cfg.ToStdout() || cfg.NoAnimation {
		summary, err := a.Execute()
		if err != nil {
			ui.Error("Error: %v", err)
			os.Exit(1)
		}
		if !cfg.ToStdout() {
			ui.PrintSummary(summary)
		} else if summary.Message != "" {
			ui.Warning("%s", summary.Message)
		}
		return
	}

	final, err := tea.NewProgram(tui.New(a)).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		os.Exit(1)
	}
}
