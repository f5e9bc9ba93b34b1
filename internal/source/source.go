package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/sokinpui/pegpatch/cli"
	"github.com/sokinpui/pegpatch/internal/ui"
)

// SourceProvider determines and retrieves the patch text.
type SourceProvider struct {
	cfg   *cli.Config
	stdin io.Reader
	piped func() bool
	clip  func() (string, error)
}

// New creates a new SourceProvider.
func New(cfg *cli.Config) *SourceProvider {
	return &SourceProvider{
		cfg:   cfg,
		stdin: os.Stdin,
		piped: stdinIsPiped,
		clip:  clipboard.ReadAll,
	}
}

func stdinIsPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// GetPatch retrieves the patch from a file, stdin (if piped) or the
// clipboard. With --markdown the first diff block of the content is used.
func (sp *SourceProvider) GetPatch() (string, error) {
	content, err := sp.getContent()
	if err != nil || content == "" {
		return content, err
	}
	if !sp.cfg.Markdown {
		return content, nil
	}

	diffs, err := ExtractDiffBlocks([]byte(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse markdown: %w", err)
	}
	if len(diffs) == 0 {
		return "", fmt.Errorf("no diff block found in markdown input")
	}
	if len(diffs) > 1 {
		ui.Warning("Found %d diff blocks, using the first one.", len(diffs))
	}
	return diffs[0], nil
}

func (sp *SourceProvider) getContent() (string, error) {
	if sp.cfg.PatchFile != "" {
		content, err := os.ReadFile(sp.cfg.PatchFile)
		if err != nil {
			return "", fmt.Errorf("failed to read patch file: %w", err)
		}
		return string(content), nil
	}

	if sp.piped() {
		content, err := io.ReadAll(sp.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(content), nil
	}

	content, err := sp.clip()
	if err != nil {
		return "", fmt.Errorf("failed to read from clipboard: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		ui.Warning("Clipboard is empty. Nothing to process.")
		return "", nil
	}
	return content, nil
}
