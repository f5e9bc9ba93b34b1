package source

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlock represents a fenced code block found in markdown content.
type CodeBlock struct {
	// Lang is the info string of the fence (e.g., "diff").
	Lang string
	// Content is the raw text inside the code block.
	Content string
}

// ExtractCodeBlocks uses a markdown AST to find all fenced code blocks.
func ExtractCodeBlocks(source []byte) ([]CodeBlock, error) {
	var blocks []CodeBlock
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fencedCodeBlock, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var block CodeBlock
		if fencedCodeBlock.Info != nil {
			block.Lang = strings.TrimSpace(string(fencedCodeBlock.Info.Text(source)))
		}

		var content bytes.Buffer
		lines := fencedCodeBlock.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			content.Write(line.Value(source))
		}
		block.Content = content.String()

		blocks = append(blocks, block)
		return ast.WalkSkipChildren, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return nil, err
	}

	return blocks, nil
}

// ExtractDiffBlocks returns the contents of the ```diff and ```patch blocks.
func ExtractDiffBlocks(source []byte) ([]string, error) {
	blocks, err := ExtractCodeBlocks(source)
	if err != nil {
		return nil, err
	}
	var diffs []string
	for _, b := range blocks {
		lang, _, _ := strings.Cut(b.Lang, " ")
		if lang == "diff" || lang == "patch" {
			diffs = append(diffs, b.Content)
		}
	}
	return diffs, nil
}
