package patcher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sokinpui/pegpatch/model"
)

func ctx(s string) model.Line { return model.Line{Kind: model.Context, Text: s} }
func del(s string) model.Line { return model.Line{Kind: model.Delete, Text: s} }
func ins(s string) model.Line { return model.Line{Kind: model.Insert, Text: s} }

func hunkAt(oldStart int, lines ...model.Line) model.Hunk {
	h := model.Hunk{Header: model.HunkHeader{OldStart: oldStart, NewStart: oldStart}, Lines: lines}
	h.Header.OldLength = h.OldLines()
	h.Header.NewLength = h.NewLines()
	return h
}

func patchOf(hunks ...model.Hunk) *model.Patch {
	return &model.Patch{Input: "a", Output: "b", Hunks: hunks}
}

func TestApply(t *testing.T) {
	abcd := []string{"a", "b", "c", "d"}

	tests := []struct {
		name     string
		original []string
		patch    *model.Patch
		want     []string
	}{
		{
			name:     "no hunks is identity",
			original: abcd,
			patch:    patchOf(),
			want:     abcd,
		},
		{
			name:     "no hunks on empty input",
			original: nil,
			patch:    patchOf(),
			want:     []string{},
		},
		{
			name:     "context insert delete",
			original: abcd,
			patch:    patchOf(hunkAt(1, ctx("b"), ins("X"), del("c"))),
			want:     []string{"a", "b", "X", "d"},
		},
		{
			name:     "pure insertion",
			original: abcd,
			patch:    patchOf(hunkAt(2, ins("x"), ins("y"))),
			want:     []string{"a", "b", "x", "y", "c", "d"},
		},
		{
			name:     "insertion at end",
			original: abcd,
			patch:    patchOf(hunkAt(4, ins("e"))),
			want:     []string{"a", "b", "c", "d", "e"},
		},
		{
			name:     "insertion into empty input",
			original: nil,
			patch:    patchOf(hunkAt(0, ins("only"))),
			want:     []string{"only"},
		},
		{
			name:     "pure deletion",
			original: abcd,
			patch:    patchOf(hunkAt(1, del("b"), del("c"))),
			want:     []string{"a", "d"},
		},
		{
			name:     "multiple hunks",
			original: []string{"1", "2", "3", "4", "5", "6", "7"},
			patch: patchOf(
				hunkAt(0, del("1"), ins("one")),
				hunkAt(3, ctx("4"), ins("4.5")),
				hunkAt(6, del("7")),
			),
			want: []string{"one", "2", "3", "4", "4.5", "5", "6"},
		},
		{
			name:     "empty context text",
			original: []string{"x", "", "y"},
			patch:    patchOf(hunkAt(0, ctx("x"), ctx(""), del("y"))),
			want:     []string{"x", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.patch, tt.original)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyDoesNotAliasInput(t *testing.T) {
	original := []string{"a", "b"}
	got, err := Apply(patchOf(), original)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	got[0] = "changed"
	if original[0] != "a" {
		t.Errorf("original was modified through the result: %v", original)
	}
}

func TestApplyErrors(t *testing.T) {
	abcd := []string{"a", "b", "c", "d"}

	tests := []struct {
		name     string
		patch    *model.Patch
		mismatch bool
		index    int
	}{
		{"context mismatch", patchOf(hunkAt(1, ctx("Z"))), true, 1},
		{"delete mismatch", patchOf(hunkAt(0, ctx("a"), del("B"))), true, 1},
		{"mismatch in second hunk", patchOf(hunkAt(0, ctx("a")), hunkAt(3, del("x"))), true, 3},
		{"start past end", patchOf(hunkAt(6, ins("x"))), false, 4},
		{"context runs off end", patchOf(hunkAt(3, ctx("d"), ctx("e"))), false, 4},
		{"delete at end", patchOf(hunkAt(4, del("e"))), false, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.patch, abcd)
			if err == nil {
				t.Fatalf("expected error, got %v", got)
			}
			if got != nil {
				t.Errorf("expected no partial result, got %v", got)
			}
			if !errors.Is(err, model.ErrApply) {
				t.Errorf("expected error to match model.ErrApply: %v", err)
			}
			if tt.mismatch {
				var e *model.PatchInputMismatchError
				if !errors.As(err, &e) {
					t.Fatalf("expected PatchInputMismatchError, got %v", err)
				}
				if e.Index != tt.index {
					t.Errorf("index = %d, want %d", e.Index, tt.index)
				}
			} else {
				var e *model.AbruptInputError
				if !errors.As(err, &e) {
					t.Fatalf("expected AbruptInputError, got %v", err)
				}
				if e.Index != tt.index {
					t.Errorf("index = %d, want %d", e.Index, tt.index)
				}
			}
			if idx, ok := model.ErrorIndex(err); !ok || idx != tt.index {
				t.Errorf("ErrorIndex = %d, %v; want %d", idx, ok, tt.index)
			}
		})
	}
}

// Hunks are not sorted: a hunk that starts behind the cursor rewinds it
// and replays original lines that were already emitted.
func TestApplyOutOfOrderHunks(t *testing.T) {
	abcd := []string{"a", "b", "c", "d"}

	got, err := Apply(patchOf(hunkAt(2, ctx("c")), hunkAt(1, ctx("b"), ins("X"))), abcd)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	want := []string{"a", "b", "c", "b", "X", "c", "d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}

	_, err = Apply(patchOf(hunkAt(2, del("c")), hunkAt(1, del("c"))), abcd)
	var mismatch *model.PatchInputMismatchError
	if !errors.As(err, &mismatch) || mismatch.Index != 1 {
		t.Errorf("expected mismatch at 1 after rewinding, got %v", err)
	}
}
