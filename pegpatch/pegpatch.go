// Package pegpatch applies a unified-style patch to an in-memory list of
// lines, checking every context and deleted line against the original.
//
// The work happens in three steps: the patch text is parsed against a fixed
// grammar, the parse tree is converted into a model.Patch, and the patch is
// replayed over the original lines with a single forward cursor. Nothing is
// cached between calls, so all functions are safe for concurrent use.
package pegpatch

import (
	"github.com/sokinpui/pegpatch/internal/builder"
	"github.com/sokinpui/pegpatch/internal/grammar"
	"github.com/sokinpui/pegpatch/internal/patcher"
	"github.com/sokinpui/pegpatch/model"
)

// GrammarError is returned when the patch text does not match the grammar.
type GrammarError = grammar.GrammarError

// ErrGrammar is matched by every GrammarError.
var ErrGrammar = grammar.ErrGrammar

// Options controls how strictly a patch is read.
type Options struct {
	// Strict checks hunk header lengths against the hunk bodies and rejects
	// overlapping or backwards hunks.
	Strict bool
}

// Convert parses and builds a patch.
func Convert(text string) (*model.Patch, error) {
	return ConvertWithOptions(text, Options{})
}

// ConvertWithOptions is Convert with explicit options.
func ConvertWithOptions(text string, opts Options) (*model.Patch, error) {
	tree, err := grammar.Parse(text)
	if err != nil {
		return nil, err
	}
	return builder.Build(tree, builder.Options{Strict: opts.Strict})
}

// Process applies patch to original and returns a new slice.
// original is never modified.
func Process(original []string, patch *model.Patch) ([]string, error) {
	return patcher.Apply(patch, original)
}

// Format renders patch as text with hunk headers recomputed from the
// hunk bodies.
func Format(patch *model.Patch) string {
	return patcher.Format(patch)
}

// Processor binds an original text to a converted patch.
type Processor struct {
	text  []string
	patch *model.Patch
}

// New converts patchText and pairs it with original.
func New(original []string, patchText string) (*Processor, error) {
	return NewWithOptions(original, patchText, Options{})
}

// NewWithOptions is New with explicit options.
func NewWithOptions(original []string, patchText string, opts Options) (*Processor, error) {
	patch, err := ConvertWithOptions(patchText, opts)
	if err != nil {
		return nil, err
	}
	return &Processor{text: original, patch: patch}, nil
}

// Patch returns the converted patch.
func (p *Processor) Patch() *model.Patch {
	return p.patch
}

// Process applies the patch to the original lines.
func (p *Processor) Process() ([]string, error) {
	return Process(p.text, p.patch)
}
