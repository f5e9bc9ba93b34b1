package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIndex(t *testing.T) {
	tests := []struct {
		err   error
		index int
		ok    bool
	}{
		{&AbruptInputError{Index: 4}, 4, true},
		{fmt.Errorf("wrapped: %w", &PatchInputMismatchError{Index: 1}), 1, true},
		{&NotFoundError{What: "patch"}, 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		index, ok := ErrorIndex(tt.err)
		if index != tt.index || ok != tt.ok {
			t.Errorf("ErrorIndex(%v) = %d, %v; want %d, %v", tt.err, index, ok, tt.index, tt.ok)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	patchErrs := []error{
		&NotFoundError{What: "hunk_header"},
		&MalformedPatchError{Reason: "x"},
		&IntegerParseError{Field: "file1_l", Text: "x", Err: errors.New("bad")},
		&HunkLengthError{},
		&HunkOrderError{},
	}
	for _, err := range patchErrs {
		if !errors.Is(err, ErrPatch) || errors.Is(err, ErrApply) {
			t.Errorf("%T should match only ErrPatch", err)
		}
	}
	for _, err := range []error{&AbruptInputError{}, &PatchInputMismatchError{}} {
		if !errors.Is(err, ErrApply) || errors.Is(err, ErrPatch) {
			t.Errorf("%T should match only ErrApply", err)
		}
	}
}

func TestMessagesUseOneBasedLines(t *testing.T) {
	if got := (&PatchInputMismatchError{Index: 0}).Error(); got != "original line 1 does not match patch" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&AbruptInputError{Index: 4}).Error(); got != "original input ends before line 5" {
		t.Errorf("Error() = %q", got)
	}
}

func TestHunkCounts(t *testing.T) {
	h := Hunk{Lines: []Line{{Kind: Context}, {Kind: Delete}, {Kind: Insert}, {Kind: Insert}}}
	if h.OldLines() != 2 || h.NewLines() != 3 {
		t.Errorf("OldLines/NewLines = %d/%d, want 2/3", h.OldLines(), h.NewLines())
	}
	if Insert.String() != "insert" || LineKind(9).String() != "unknown" {
		t.Errorf("unexpected LineKind strings")
	}
}
