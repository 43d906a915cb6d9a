package hints

// Notes:
// - ForHookCommand tests replace the package-level ShellAvailable variable
//   and cannot run in parallel.

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join(string(filepath.Separator)+"home", "u", ".config", "txt2html", "site.yaml")

	tests := []struct {
		name     string
		paths    []string
		contains []string
		excludes []string
	}{
		{
			name:     "suggests user config path",
			paths:    []string{"site.yaml", "site.yml", userPath},
			contains: []string{"--config", "or create " + userPath},
		},
		{
			name:     "local paths only",
			paths:    []string{"site.yaml", "site.yml"},
			contains: []string{"--config"},
			excludes: []string{"or create"},
		},
		{
			name:     "no paths",
			paths:    nil,
			contains: []string{"hint: use --config"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q should contain %q", hint, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(hint, bad) {
					t.Errorf("hint %q should not contain %q", hint, bad)
				}
			}
		})
	}
}

func TestForAvailableLists(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound([]string{"paper", "plain"}); got != "\n  hint: available: paper, plain" {
		t.Errorf("ForStyleNotFound() = %q", got)
	}
	if got := ForSnippetNotFound(nil); got != "" {
		t.Errorf("ForSnippetNotFound(nil) = %q, want empty", got)
	}
}

func TestForUnknownHook(t *testing.T) {
	t.Parallel()

	hint := ForUnknownHook([]string{"linkify", "url2img"})
	if !strings.HasPrefix(hint, "\n  hint: available: linkify, url2img; ") {
		t.Errorf("ForUnknownHook() = %q", hint)
	}
	if !strings.Contains(ForUnknownHook(nil), "commands:") {
		t.Error("empty list should still suggest defining a command")
	}
}

func TestForUnknownStage(t *testing.T) {
	t.Parallel()

	hint := ForUnknownStage([]string{"title", "pre"})
	if !strings.Contains(hint, "stages: title, pre") {
		t.Errorf("ForUnknownStage() = %q", hint)
	}
}

func TestForHookCommand_NoShell(t *testing.T) {
	orig := ShellAvailable
	defer func() { ShellAvailable = orig }()
	ShellAvailable = func() bool { return false }

	hint := ForHookCommand()
	if !strings.Contains(hint, "not on PATH") {
		t.Errorf("expected missing shell hint, got %q", hint)
	}
	if !strings.Contains(hint, "stdin") {
		t.Errorf("expected stdin hint, got %q", hint)
	}
}

func TestForHookCommand_WithShell(t *testing.T) {
	orig := ShellAvailable
	defer func() { ShellAvailable = orig }()
	ShellAvailable = func() bool { return true }

	hint := ForHookCommand()
	if strings.Contains(hint, "not on PATH") {
		t.Errorf("unexpected missing shell hint: %q", hint)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"output":   ForOutputDirectory(),
		"timeout":  ForHookTimeout(),
		"encoding": ForEncoding(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint %q lacks prefix", name, hint)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if format("") != "" {
		t.Error("format(\"\") should be empty")
	}
	if formatHints(nil) != "" {
		t.Error("formatHints(nil) should be empty")
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
}
