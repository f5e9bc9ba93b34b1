package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	PatchFile   string
	InputFile   string
	OutputFile  string
	Write       bool
	Buffer      bool
	Markdown    bool
	Strict      bool
	FixHeaders  bool
	NoAnimation bool
	LookupDirs  []string
}

// ToStdout reports whether the result is printed rather than stored.
func (c *Config) ToStdout() bool {
	return c.FixHeaders || (!c.Write && !c.Buffer && c.OutputFile == "")
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	return parse(pflag.CommandLine, os.Args[1:])
}

func parse(fs *pflag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	fs.StringVarP(&cfg.PatchFile, "patch", "p", "", "Read the patch from this file (default: stdin when piped, otherwise the clipboard).")
	fs.StringVarP(&cfg.InputFile, "input", "i", "", "Original file to patch (default: the '---' path of the patch).")
	fs.StringVarP(&cfg.OutputFile, "output", "o", "", "Write the result to this file instead of stdout.")
	fs.BoolVarP(&cfg.Write, "write", "w", false, "Write the result to the '+++' path of the patch.")
	fs.BoolVarP(&cfg.Buffer, "buffer", "b", false, "Load the result into a Neovim buffer for the '+++' path.")
	fs.BoolVarP(&cfg.Markdown, "markdown", "m", false, "Take the patch from the first ```diff block of markdown input.")
	fs.BoolVarP(&cfg.Strict, "strict", "s", false, "Check hunk header lengths and hunk order before applying.")
	fs.BoolVarP(&cfg.FixHeaders, "fix-headers", "f", false, "Print the patch with hunk headers recomputed from the hunk bodies.")
	fs.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the loading spinner.")
	fs.StringSliceVarP(&cfg.LookupDirs, "lookup-dir", "l", []string{}, "Directories to resolve patch paths in (default: current directory).")

	fs.Usage = func() {
		fmt.Println("Usage: pegpatch [flags]")
		fmt.Println("\nApply a unified diff to a file, verifying every context and deleted line.")
		fmt.Println("\nExample: git diff | pegpatch -w")
		fmt.Println("\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	sinks := 0
	for _, set := range []bool{cfg.Write, cfg.Buffer, cfg.OutputFile != ""} {
		if set {
			sinks++
		}
	}
	if sinks > 1 {
		return nil, fmt.Errorf("error: --write, --buffer and --output are mutually exclusive")
	}
	if cfg.FixHeaders && sinks > 0 {
		return nil, fmt.Errorf("error: --fix-headers prints to stdout and cannot be combined with --write, --buffer or --output")
	}

	return cfg, nil
}
