package patcher

import (
	"github.com/sokinpui/pegpatch/model"
)

// Apply replays patch against original and returns the patched lines.
//
// A single cursor walks original forward. Every context and deleted line
// must equal the original line under the cursor; the first divergence
// aborts the whole application. Hunks are taken in document order and are
// not sorted or checked for overlap.
func Apply(patch *model.Patch, original []string) ([]string, error) {
	result := make([]string, 0, len(original))
	cursor := 0

	for _, hunk := range patch.Hunks {
		start := hunk.Header.OldStart
		for i := cursor; i < start; i++ {
			if i >= len(original) {
				return nil, &model.AbruptInputError{Index: i}
			}
			result = append(result, original[i])
		}
		cursor = start

		for _, line := range hunk.Lines {
			switch line.Kind {
			case model.Context, model.Delete:
				if err := expect(original, cursor, line.Text); err != nil {
					return nil, err
				}
				if line.Kind == model.Context {
					result = append(result, line.Text)
				}
				cursor++
			case model.Insert:
				result = append(result, line.Text)
			}
		}
	}

	if cursor < len(original) {
		result = append(result, original[cursor:]...)
	}
	return result, nil
}

func expect(original []string, i int, text string) error {
	if i >= len(original) {
		return &model.AbruptInputError{Index: i}
	}
	if original[i] != text {
		return &model.PatchInputMismatchError{Index: i}
	}
	return nil
}
