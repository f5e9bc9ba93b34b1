package grammar

import (
	"fmt"
	"regexp"
)

// Rule labels a parse tree node.
type Rule int

const (
	RulePatch Rule = iota
	RulePreamble
	RuleFile1Header
	RuleFile2Header
	RulePath
	RuleTimestamp
	RuleHunk
	RuleHunkHeader
	RuleFile1L
	RuleFile1S
	RuleFile2L
	RuleFile2S
	RuleSection
	RuleLineContext
	RuleLineDeleted
	RuleLineInserted
	RuleNoNewline
	numRules
)

var ruleNames = [numRules]string{
	RulePatch:        "patch",
	RulePreamble:     "preamble",
	RuleFile1Header:  "file1_header",
	RuleFile2Header:  "file2_header",
	RulePath:         "path",
	RuleTimestamp:    "timestamp",
	RuleHunk:         "hunk",
	RuleHunkHeader:   "hunk_header",
	RuleFile1L:       "file1_l",
	RuleFile1S:       "file1_s",
	RuleFile2L:       "file2_l",
	RuleFile2S:       "file2_s",
	RuleSection:      "section",
	RuleLineContext:  "line_context",
	RuleLineDeleted:  "line_deleted",
	RuleLineInserted: "line_inserted",
	RuleNoNewline:    "no_newline",
}

func (r Rule) String() string {
	if r >= 0 && r < numRules {
		return ruleNames[r]
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

func ruleByName(name string) (Rule, bool) {
	for r, n := range ruleNames {
		if n == name {
			return Rule(r), true
		}
	}
	return 0, false
}

// lineRule matches exactly one physical line of patch text.
//
// When body is empty the node spans the whole line and every named group
// that participates in the match becomes a child node labelled by the rule
// of the same name. When body is set the marker before it is silent: the
// node spans only the body group and has no children.
type lineRule struct {
	rule Rule
	re   *regexp.Regexp
	body string
}

func newLineRule(rule Rule, expr, body string) lineRule {
	re := regexp.MustCompile(expr)
	for _, name := range re.SubexpNames() {
		if name == "" || name == body {
			continue
		}
		if _, ok := ruleByName(name); !ok {
			panic(fmt.Sprintf("grammar: group %q in %s is not a rule", name, rule))
		}
	}
	return lineRule{rule: rule, re: re, body: body}
}

// Grammar is the fixed patch grammar. It is built once and only read.
//
//	patch         = preamble* file1_header file2_header hunk*
//	file1_header  = "--- " path ("\t" timestamp)? "\r"?
//	file2_header  = "+++ " path ("\t" timestamp)? "\r"?
//	hunk          = hunk_header (line_context | line_deleted | line_inserted | no_newline)*
//	hunk_header   = "@@ -" file1_l ("," file1_s)? " +" file2_l ("," file2_s)? " @@" section?
type Grammar struct {
	preamble   lineRule
	file1      lineRule
	file2      lineRule
	hunkHeader lineRule
	hunkLines  []lineRule
}

var patchGrammar = newGrammar()

func newGrammar() *Grammar {
	return &Grammar{
		preamble: newLineRule(RulePreamble, `^(?P<text>.*)$`, "text"),
		file1:    newLineRule(RuleFile1Header, `^--- (?P<path>[^\t\r]+)(?:\t(?P<timestamp>[^\r]*))?\r?$`, ""),
		file2:    newLineRule(RuleFile2Header, `^\+\+\+ (?P<path>[^\t\r]+)(?:\t(?P<timestamp>[^\r]*))?\r?$`, ""),
		hunkHeader: newLineRule(RuleHunkHeader,
			`^@@ -(?P<file1_l>\d+)(?:,(?P<file1_s>\d+))? \+(?P<file2_l>\d+)(?:,(?P<file2_s>\d+))? @@(?: ?(?P<section>[^\r]*))?\r?$`, ""),
		hunkLines: []lineRule{
			newLineRule(RuleLineContext, `^ (?P<text>.*)$`, "text"),
			newLineRule(RuleLineDeleted, `^-(?P<text>.*)$`, "text"),
			newLineRule(RuleLineInserted, `^\+(?P<text>.*)$`, "text"),
			newLineRule(RuleNoNewline, `^\\(?P<text>.*)$`, "text"),
			// Editors often strip the lone space of an empty context line.
			newLineRule(RuleLineContext, `^(?P<text>)$`, "text"),
		},
	}
}

// match returns the node for l, or nil if the rule does not match.
func (r lineRule) match(l line) *Node {
	loc := r.re.FindStringSubmatchIndex(l.text)
	if loc == nil {
		return nil
	}
	n := &Node{
		Rule:  r.rule,
		Text:  l.text,
		Start: l.start,
		End:   l.start + len(l.text),
		Line:  l.num,
	}
	for i, name := range r.re.SubexpNames() {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		s, e := loc[2*i], loc[2*i+1]
		if name == r.body {
			n.Text = l.text[s:e]
			n.Start = l.start + s
			n.End = l.start + e
			continue
		}
		rule, _ := ruleByName(name)
		n.Children = append(n.Children, &Node{
			Rule:  rule,
			Text:  l.text[s:e],
			Start: l.start + s,
			End:   l.start + e,
			Line:  l.num,
		})
	}
	return n
}
