package grammar

import (
	"fmt"
	"strings"
)

// Node is a parse tree node. Text is the exact source substring the rule
// matched and [Start, End) its byte span in the parsed text.
type Node struct {
	Rule     Rule
	Text     string
	Start    int
	End      int
	Line     int
	Children []*Node
}

// String renders the subtree one node per line, for debugging and tests.
func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b, 0)
	return b.String()
}

func (n *Node) dump(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s %q\n", strings.Repeat("  ", depth), n.Rule, n.Text)
	for _, c := range n.Children {
		c.dump(b, depth+1)
	}
}

type line struct {
	text  string
	start int
	num   int
}

func splitLines(text string) []line {
	var lines []line
	start := 0
	for num := 1; start < len(text); num++ {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			lines = append(lines, line{text: text[start:], start: start, num: num})
			break
		}
		lines = append(lines, line{text: text[start : start+end], start: start, num: num})
		start += end + 1
	}
	return lines
}

// Parse parses text with the patch grammar.
func Parse(text string) (*Node, error) {
	return patchGrammar.Parse(text)
}

// Parse parses text into a tree whose root is a RulePatch node.
func (g *Grammar) Parse(text string) (*Node, error) {
	lines := splitLines(text)
	root := &Node{Rule: RulePatch, Text: text, Start: 0, End: len(text), Line: 1}

	i := 0
	for i < len(lines) && g.file1.match(lines[i]) == nil {
		root.Children = append(root.Children, g.preamble.match(lines[i]))
		i++
	}

	for _, r := range []lineRule{g.file1, g.file2} {
		if i >= len(lines) {
			return nil, eofError(len(lines)+1, r.rule)
		}
		n := r.match(lines[i])
		if n == nil {
			return nil, unexpected(lines[i], r.rule)
		}
		root.Children = append(root.Children, n)
		i++
	}

	for i < len(lines) {
		header := g.hunkHeader.match(lines[i])
		if header == nil {
			return nil, unexpected(lines[i], RuleHunkHeader)
		}
		hunk := &Node{
			Rule:     RuleHunk,
			Start:    header.Start,
			End:      header.End,
			Line:     header.Line,
			Children: []*Node{header},
		}
		i++
		for ; i < len(lines); i++ {
			if g.hunkHeader.re.MatchString(lines[i].text) {
				break
			}
			if blankTail(lines[i:]) {
				i = len(lines)
				break
			}
			n := g.matchHunkLine(lines[i])
			if n == nil {
				return nil, unexpected(lines[i], RuleHunkHeader, RuleLineContext, RuleLineDeleted, RuleLineInserted, RuleNoNewline)
			}
			hunk.Children = append(hunk.Children, n)
			hunk.End = lines[i].start + len(lines[i].text)
		}
		hunk.Text = text[hunk.Start:hunk.End]
		root.Children = append(root.Children, hunk)
	}
	return root, nil
}

func (g *Grammar) matchHunkLine(l line) *Node {
	for _, r := range g.hunkLines {
		if n := r.match(l); n != nil {
			return n
		}
	}
	return nil
}

// blankTail reports whether lines holds nothing but empty lines. Blank lines
// trailing a pasted patch are not empty context.
func blankTail(lines []line) bool {
	for _, l := range lines {
		if strings.TrimSuffix(l.text, "\r") != "" {
			return false
		}
	}
	return true
}
