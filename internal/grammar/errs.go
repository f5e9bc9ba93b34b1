package grammar

import (
	"errors"
	"fmt"
	"strings"
)

var ErrGrammar = errors.New("patch grammar error")

// GrammarError reports where the text stopped matching the grammar.
// Line and Column are 1-based; Offset is the byte offset into the text.
type GrammarError struct {
	Line     int
	Column   int
	Offset   int
	Expected []Rule
	Found    string
}

func (e *GrammarError) Error() string {
	names := make([]string, len(e.Expected))
	for i, r := range e.Expected {
		names[i] = r.String()
	}
	found := "end of input"
	if e.Found != "" || e.Offset >= 0 {
		found = fmt.Sprintf("%q", e.Found)
	}
	return fmt.Sprintf("%v at %d:%d: expected %s, found %s",
		ErrGrammar, e.Line, e.Column, strings.Join(names, " or "), found)
}

func (e *GrammarError) Unwrap() error {
	return ErrGrammar
}

func unexpected(l line, expected ...Rule) *GrammarError {
	return &GrammarError{
		Line:     l.num,
		Column:   1,
		Offset:   l.start,
		Expected: expected,
		Found:    l.text,
	}
}

func eofError(lineNum int, expected ...Rule) *GrammarError {
	return &GrammarError{
		Line:     lineNum,
		Column:   1,
		Offset:   -1,
		Expected: expected,
	}
}
