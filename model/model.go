package model

// DevNull is the path diff tools name for the missing side of a patch.
const DevNull = "/dev/null"

// Patch is a parsed single-file patch.
type Patch struct {
	// Input is the path named on the "---" line. Informational only.
	Input string
	// Output is the path named on the "+++" line. Informational only.
	Output string
	// Hunks are kept in document order; the applier relies on it.
	Hunks []Hunk
}

// Hunk is one contiguous change region.
type Hunk struct {
	Header HunkHeader
	Lines  []Line
}

// HunkHeader holds the four range fields of an "@@" line.
// OldStart and NewStart are zero-based.
type HunkHeader struct {
	OldStart  int
	OldLength int
	NewStart  int
	NewLength int
}

// LineKind tags a hunk line.
type LineKind int

const (
	Context LineKind = iota
	Delete
	Insert
)

func (k LineKind) String() string {
	switch k {
	case Context:
		return "context"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return "unknown"
	}
}

// Line is a single typed hunk line. Text never includes the marker.
type Line struct {
	Kind LineKind
	Text string
	// NoNewline is set when the line is followed by "\ No newline at end
	// of file": it is the last line of its side and has no line ending.
	NoNewline bool
}

// OldLines counts the lines a hunk consumes from the original.
func (h Hunk) OldLines() int {
	n := 0
	for _, l := range h.Lines {
		if l.Kind != Insert {
			n++
		}
	}
	return n
}

// NewLines counts the lines a hunk produces in the result.
func (h Hunk) NewLines() int {
	n := 0
	for _, l := range h.Lines {
		if l.Kind != Delete {
			n++
		}
	}
	return n
}

// EndsWithNewline reports whether the patched file ends with a newline,
// given whether the original did. Created files end with one, and a
// "\ No newline" marker on either side overrides the original.
func (p *Patch) EndsWithNewline(original bool) bool {
	if p.Input == DevNull {
		original = true
	}
	for _, h := range p.Hunks {
		for _, l := range h.Lines {
			if !l.NoNewline {
				continue
			}
			switch l.Kind {
			case Insert, Context:
				return false
			case Delete:
				original = true
			}
		}
	}
	return original
}
