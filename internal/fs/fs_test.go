package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(dir, "src", "main.go")
	if err := os.WriteFile(existing, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewPathResolver([]string{dir})
	if err != nil {
		t.Fatalf("NewPathResolver failed: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"src/main.go", existing},
		{"a/src/main.go", existing},
		{"b/src/main.go", existing},
		{"b/src/new.go", filepath.Join(dir, "src", "new.go")},
		{"pkg/new.go", filepath.Join(dir, "pkg", "new.go")},
		{existing, existing},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.path); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if got := r.ResolveExisting("a/src/missing.go"); got != "" {
		t.Errorf("ResolveExisting of a missing file = %q, want empty", got)
	}
}

func TestReadWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")

	if err := WriteLines(path, []string{"a", "", "b"}, true); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "a\n\nb\n" {
		t.Errorf("file content = %q", content)
	}

	lines, trailing, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "", "b"}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if !trailing {
		t.Errorf("expected trailing newline to be reported")
	}
}

func TestReadLinesDevNull(t *testing.T) {
	lines, trailing, err := ReadLines(DevNull)
	if err != nil || lines != nil || trailing {
		t.Errorf("ReadLines(/dev/null) = %v, %v, %v", lines, trailing, err)
	}
}
