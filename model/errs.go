package model

import (
	"errors"
	"fmt"
)

var (
	// ErrPatch is matched by every error describing a bad patch.
	ErrPatch = errors.New("invalid patch")
	// ErrApply is matched by every error raised while applying a patch.
	ErrApply = errors.New("patch does not apply")
)

// NotFoundError reports a required element missing from the parse tree.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.What)
}

func (e *NotFoundError) Unwrap() error { return ErrPatch }

// MalformedPatchError reports an element present in the wrong place.
type MalformedPatchError struct {
	Reason string
}

func (e *MalformedPatchError) Error() string {
	return "malformed patch: " + e.Reason
}

func (e *MalformedPatchError) Unwrap() error { return ErrPatch }

// IntegerParseError reports a hunk header field that is not a non-negative integer.
type IntegerParseError struct {
	Field string
	Text  string
	Err   error
}

func (e *IntegerParseError) Error() string {
	return fmt.Sprintf("hunk header field %s: cannot parse %q: %v", e.Field, e.Text, e.Err)
}

func (e *IntegerParseError) Unwrap() []error { return []error{ErrPatch, e.Err} }

// HunkLengthError reports a header length that disagrees with the hunk body.
// Only raised in strict mode.
type HunkLengthError struct {
	Hunk     int
	Field    string
	Declared int
	Actual   int
}

func (e *HunkLengthError) Error() string {
	return fmt.Sprintf("hunk %d: header declares %s=%d but body has %d lines", e.Hunk+1, e.Field, e.Declared, e.Actual)
}

func (e *HunkLengthError) Unwrap() error { return ErrPatch }

// HunkOrderError reports a hunk starting inside or before the previous one.
// Only raised in strict mode.
type HunkOrderError struct {
	Hunk   int
	Start  int
	Cursor int
}

func (e *HunkOrderError) Error() string {
	return fmt.Sprintf("hunk %d starts at line %d, before the end of the previous hunk at line %d", e.Hunk+1, e.Start+1, e.Cursor+1)
}

func (e *HunkOrderError) Unwrap() error { return ErrPatch }

// AbruptInputError means the original ran out at Index (zero-based).
type AbruptInputError struct {
	Index int
}

func (e *AbruptInputError) Error() string {
	return fmt.Sprintf("original input ends before line %d", e.Index+1)
}

func (e *AbruptInputError) Unwrap() error { return ErrApply }

// PatchInputMismatchError means the original differs from the patch at Index (zero-based).
type PatchInputMismatchError struct {
	Index int
}

func (e *PatchInputMismatchError) Error() string {
	return fmt.Sprintf("original line %d does not match patch", e.Index+1)
}

func (e *PatchInputMismatchError) Unwrap() error { return ErrApply }

// ErrorIndex returns the zero-based original line an apply error refers to.
func ErrorIndex(err error) (int, bool) {
	var abrupt *AbruptInputError
	if errors.As(err, &abrupt) {
		return abrupt.Index, true
	}
	var mismatch *PatchInputMismatchError
	if errors.As(err, &mismatch) {
		return mismatch.Index, true
	}
	return 0, false
}
