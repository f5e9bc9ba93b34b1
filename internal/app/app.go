package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/sokinpui/pegpatch/cli"
	"github.com/sokinpui/pegpatch/internal/fs"
	"github.com/sokinpui/pegpatch/internal/nvim"
	"github.com/sokinpui/pegpatch/internal/source"
	"github.com/sokinpui/pegpatch/internal/ui"
	"github.com/sokinpui/pegpatch/model"
	"github.com/sokinpui/pegpatch/pegpatch"
)

// App orchestrates the entire application logic.
type App struct {
	cfg            *cli.Config
	pathResolver   *fs.PathResolver
	sourceProvider *source.SourceProvider
	stdout         io.Writer
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	pathResolver, err := fs.NewPathResolver(cfg.LookupDirs)
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:            cfg,
		pathResolver:   pathResolver,
		sourceProvider: source.New(cfg),
		stdout:         os.Stdout,
	}, nil
}

// Execute runs the operation selected by the flags.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	text, err := a.sourceProvider.GetPatch()
	if err != nil {
		return model.Summary{}, err
	}
	if text == "" {
		return model.Summary{Message: "Source is empty. Nothing to process."}, nil
	}

	if a.cfg.FixHeaders {
		return a.fixAndPrintHeaders(text)
	}
	return a.applyPatch(text)
}

func (a *App) convert(text string) (*model.Patch, error) {
	patch, err := pegpatch.ConvertWithOptions(text, pegpatch.Options{Strict: a.cfg.Strict})
	if err != nil {
		return nil, fmt.Errorf("failed to read patch: %w", err)
	}
	return patch, nil
}

// fixAndPrintHeaders prints the patch with recomputed hunk headers.
func (a *App) fixAndPrintHeaders(text string) (model.Summary, error) {
	patch, err := a.convert(text)
	if err != nil {
		return model.Summary{}, err
	}
	fmt.Fprint(a.stdout, pegpatch.Format(patch))
	return model.Summary{Input: patch.Input, Output: patch.Output, Hunks: len(patch.Hunks)}, nil
}

// applyPatch reads the original, applies the patch and hands the result
// to the configured sink.
func (a *App) applyPatch(text string) (model.Summary, error) {
	patch, err := a.convert(text)
	if err != nil {
		return model.Summary{}, err
	}

	inputPath := a.cfg.InputFile
	if inputPath == "" {
		inputPath = a.resolveInput(patch.Input)
	}
	original, trailing, err := fs.ReadLines(inputPath)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to read original: %w", err)
	}
	trailing = patch.EndsWithNewline(trailing)

	result, err := pegpatch.Process(original, patch)
	if err != nil {
		if idx, ok := model.ErrorIndex(err); ok {
			return model.Summary{}, fmt.Errorf("patch failed to apply at original line %d: %w", idx+1, err)
		}
		return model.Summary{}, err
	}

	summary := model.Summary{
		Input:  inputPath,
		Output: patch.Output,
		Hunks:  len(patch.Hunks),
		Lines:  len(result),
	}

	switch {
	case a.cfg.OutputFile != "":
		summary.Target = a.cfg.OutputFile
		err = fs.WriteLines(a.cfg.OutputFile, result, trailing)
	case a.cfg.Write:
		summary.Target = a.pathResolver.Resolve(patch.Output)
		err = fs.WriteLines(summary.Target, result, trailing)
	case a.cfg.Buffer:
		summary.Target, err = a.loadIntoBuffer(patch.Output, result)
	default:
		_, err = io.WriteString(a.stdout, pegpatch.JoinLines(result, trailing))
	}
	if err != nil {
		return model.Summary{}, err
	}
	a.relativizeSummaryPaths(&summary)
	return summary, nil
}

func (a *App) resolveInput(patchPath string) string {
	if patchPath == fs.DevNull {
		return fs.DevNull
	}
	if existing := a.pathResolver.ResolveExisting(patchPath); existing != "" {
		return existing
	}
	return a.pathResolver.Resolve(patchPath)
}

// loadIntoBuffer puts the result in Neovim. Buffers of a self-started
// instance are saved, since that instance goes away on Close.
func (a *App) loadIntoBuffer(patchPath string, lines []string) (string, error) {
	manager, err := nvim.New()
	if err != nil {
		return "", err
	}
	defer manager.Close()

	target := a.pathResolver.Resolve(patchPath)
	if err := fs.CreateDirs(filepath.Dir(target)); err != nil {
		return "", err
	}
	if err := manager.UpdateBuffer(target, lines); err != nil {
		return "", err
	}
	if !manager.Attached() {
		if err := manager.SaveAllBuffers(); err != nil {
			return "", err
		}
	} else {
		ui.Warning("Buffer for %s is updated but not saved.", target)
	}
	return target, nil
}

// relativizeSummaryPaths converts absolute file paths in a summary to be
// relative to the current working directory for cleaner display.
func (a *App) relativizeSummaryPaths(summary *model.Summary) {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	makeRelative := func(p string) string {
		if !filepath.IsAbs(p) || p == fs.DevNull {
			return p
		}
		rel, err := filepath.Rel(wd, p)
		if err != nil {
			return p
		}
		return rel
	}

	summary.Input = makeRelative(summary.Input)
	summary.Target = makeRelative(summary.Target)
}
