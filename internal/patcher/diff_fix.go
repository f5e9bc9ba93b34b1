package patcher

import (
	"fmt"
	"strings"

	"github.com/sokinpui/pegpatch/model"
)

func buildHunkHeader(oldStart, oldLines, newStart, newLines int) string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@\n", oldStart, oldLines, newStart, newLines)
}

// Format renders patch as unified text with every hunk header recomputed
// from the lines the hunk actually carries. Old starts are kept as given;
// new starts are shifted by the net line delta of the preceding hunks.
// An empty old range at the top is written as "-0,0".
func Format(patch *model.Patch) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("--- %s\n", patch.Input))
	b.WriteString(fmt.Sprintf("+++ %s\n", patch.Output))

	lineDiffOffset := 0
	for _, hunk := range patch.Hunks {
		oldLines := hunk.OldLines()
		newLines := hunk.NewLines()
		oldStart := hunk.Header.OldStart + 1
		newStart := oldStart + lineDiffOffset
		if oldLines == 0 && hunk.Header.OldStart == 0 {
			oldStart = 0
		}
		if newStart < 0 {
			newStart = 0
		}

		b.WriteString(buildHunkHeader(oldStart, oldLines, newStart, newLines))
		for _, line := range hunk.Lines {
			b.WriteString(marker(line.Kind))
			b.WriteString(line.Text)
			b.WriteString("\n")
			if line.NoNewline {
				b.WriteString("\\ No newline at end of file\n")
			}
		}

		lineDiffOffset += newLines - oldLines
	}
	return b.String()
}

func marker(k model.LineKind) string {
	switch k {
	case model.Delete:
		return "-"
	case model.Insert:
		return "+"
	default:
		return " "
	}
}
