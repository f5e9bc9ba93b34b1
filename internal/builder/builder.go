package builder

import (
	"strconv"

	"github.com/sokinpui/pegpatch/internal/grammar"
	"github.com/sokinpui/pegpatch/model"
)

// Options tunes how much of the hunk header is trusted.
type Options struct {
	// Strict cross-checks every hunk header against its body and requires
	// hunks to be non-overlapping and increasing. Off by default: only the
	// old-range start is consulted when applying.
	Strict bool
}

// Build converts a parse tree into a Patch with a single depth-first walk.
func Build(tree *grammar.Node, opts Options) (*model.Patch, error) {
	if tree == nil || tree.Rule != grammar.RulePatch {
		return nil, &model.NotFoundError{What: "patch"}
	}

	var input, output *string
	patch := &model.Patch{}

	for _, child := range tree.Children {
		switch child.Rule {
		case grammar.RuleFile1Header:
			if p := pathOf(child); p != nil {
				input = p
			}
		case grammar.RuleFile2Header:
			if p := pathOf(child); p != nil {
				output = p
			}
		case grammar.RuleHunk:
			hunk, err := buildHunk(child)
			if err != nil {
				return nil, err
			}
			patch.Hunks = append(patch.Hunks, hunk)
		default:
		}
	}

	if input == nil {
		return nil, &model.NotFoundError{What: "path (input)"}
	}
	if output == nil {
		return nil, &model.NotFoundError{What: "path (output)"}
	}
	patch.Input = *input
	patch.Output = *output

	if opts.Strict {
		if err := checkStrict(patch); err != nil {
			return nil, err
		}
	}
	return patch, nil
}

func pathOf(header *grammar.Node) *string {
	var path *string
	for _, c := range header.Children {
		if c.Rule == grammar.RulePath {
			text := c.Text
			path = &text
		}
	}
	return path
}

func buildHunk(n *grammar.Node) (model.Hunk, error) {
	if len(n.Children) == 0 {
		return model.Hunk{}, &model.NotFoundError{What: "hunk_header"}
	}
	first := n.Children[0]
	if first.Rule != grammar.RuleHunkHeader {
		return model.Hunk{}, &model.MalformedPatchError{Reason: "hunk header is not at the start of a hunk"}
	}
	header, err := buildHeader(first)
	if err != nil {
		return model.Hunk{}, err
	}

	hunk := model.Hunk{Header: header}
	for _, c := range n.Children[1:] {
		switch c.Rule {
		case grammar.RuleLineContext:
			hunk.Lines = append(hunk.Lines, model.Line{Kind: model.Context, Text: c.Text})
		case grammar.RuleLineDeleted:
			hunk.Lines = append(hunk.Lines, model.Line{Kind: model.Delete, Text: c.Text})
		case grammar.RuleLineInserted:
			hunk.Lines = append(hunk.Lines, model.Line{Kind: model.Insert, Text: c.Text})
		case grammar.RuleNoNewline:
			if n := len(hunk.Lines); n > 0 {
				hunk.Lines[n-1].NoNewline = true
			}
		default:
		}
	}
	return hunk, nil
}

func buildHeader(n *grammar.Node) (model.HunkHeader, error) {
	// Omitted lengths mean one line.
	h := model.HunkHeader{OldLength: 1, NewLength: 1}
	var haveOld, haveNew bool

	for _, c := range n.Children {
		var dst *int
		switch c.Rule {
		case grammar.RuleFile1L:
			dst, haveOld = &h.OldStart, true
		case grammar.RuleFile1S:
			dst = &h.OldLength
		case grammar.RuleFile2L:
			dst, haveNew = &h.NewStart, true
		case grammar.RuleFile2S:
			dst = &h.NewLength
		default:
			continue
		}
		v, err := strconv.ParseUint(c.Text, 10, strconv.IntSize-1)
		if err != nil {
			return model.HunkHeader{}, &model.IntegerParseError{Field: c.Rule.String(), Text: c.Text, Err: err}
		}
		*dst = int(v)
	}

	if !haveOld {
		return model.HunkHeader{}, &model.NotFoundError{What: grammar.RuleFile1L.String()}
	}
	if !haveNew {
		return model.HunkHeader{}, &model.NotFoundError{What: grammar.RuleFile2L.String()}
	}

	h.OldStart = toIndex(h.OldStart)
	h.NewStart = toIndex(h.NewStart)
	return h, nil
}

// toIndex turns a 1-based start into a cursor position. A start of 0 only
// appears with an empty range ("@@ -0,0 +1,3 @@") and maps to the top.
func toIndex(start int) int {
	if start == 0 {
		return 0
	}
	return start - 1
}

func checkStrict(p *model.Patch) error {
	cursor := 0
	for i, h := range p.Hunks {
		if got := h.OldLines(); got != h.Header.OldLength {
			return &model.HunkLengthError{Hunk: i, Field: "old length", Declared: h.Header.OldLength, Actual: got}
		}
		if got := h.NewLines(); got != h.Header.NewLength {
			return &model.HunkLengthError{Hunk: i, Field: "new length", Declared: h.Header.NewLength, Actual: got}
		}
		if h.Header.OldStart < cursor {
			return &model.HunkOrderError{Hunk: i, Start: h.Header.OldStart, Cursor: cursor}
		}
		cursor = h.Header.OldStart + h.Header.OldLength
	}
	return nil
}
