package pegpatch

import (
	"strings"
)

// ApplyText applies patchText to original and returns the patched text.
// The result ends with a newline if original did, if the patch creates the
// file from /dev/null, or if a "\ No newline at end of file" marker says
// so. A marker on an inserted or context line strips the final newline.
func ApplyText(original, patchText string, opts Options) (string, error) {
	lines, trailing := SplitLines(original)

	p, err := NewWithOptions(lines, patchText, opts)
	if err != nil {
		return "", err
	}
	result, err := p.Process()
	if err != nil {
		return "", err
	}
	return JoinLines(result, p.Patch().EndsWithNewline(trailing)), nil
}

// SplitLines splits text on "\n". The second result reports whether text
// ended with a newline, which does not count as an extra empty line.
func SplitLines(text string) ([]string, bool) {
	if text == "" {
		return nil, false
	}
	trailing := strings.HasSuffix(text, "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n"), trailing
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string, trailing bool) string {
	s := strings.Join(lines, "\n")
	if trailing && len(lines) > 0 {
		s += "\n"
	}
	return s
}
