// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// ShellAvailable reports whether command hooks can find sh.
// Replaceable in tests.
var ShellAvailable = func() bool {
	_, err := exec.LookPath("sh")
	return err == nil
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config location among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	userDir := string(filepath.Separator) + "txt2html" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	return forAvailable(available)
}

// ForSnippetNotFound returns hints for snippet not found errors.
func ForSnippetNotFound(available []string) string {
	return forAvailable(available)
}

// ForUnknownHook lists the hook names that resolve.
func ForUnknownHook(available []string) string {
	if len(available) == 0 {
		return format("define the command under commands: in the config file")
	}
	return formatHints([]string{
		"available: " + strings.Join(available, ", "),
		"or define it under commands: in the config file",
	})
}

// ForUnknownStage lists the valid stage names.
func ForUnknownStage(stages []string) string {
	return format("stages: " + strings.Join(stages, ", ") + "; use --hook stage=name")
}

// ForHookCommand returns hints for a failed command hook.
func ForHookCommand() string {
	var hints []string
	if !ShellAvailable() {
		hints = append(hints, "command hooks run through sh, which is not on PATH")
	}
	hints = append(hints, "the command reads the text on stdin and must write the result to stdout")
	return formatHints(hints)
}

// ForHookTimeout returns a hint about raising the command timeout.
func ForHookTimeout() string {
	return format("raise commandTimeout in the config file (\"0\" disables it)")
}

// ForEncoding returns a hint for an unknown source encoding.
func ForEncoding() string {
	return format("use a WHATWG encoding label such as utf-8, windows-1252 or iso-8859-15")
}

func forAvailable(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
