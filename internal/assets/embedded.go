package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed styles/*.css snippets/*.html
var embedded embed.FS

// EmbeddedLoader loads the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads an embedded style by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(KindStyle, name)
}

// LoadSnippet loads an embedded snippet by name.
func (e *EmbeddedLoader) LoadSnippet(name string) (string, error) {
	return e.load(KindSnippet, name)
}

func (e *EmbeddedLoader) load(kind Kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := embedded.ReadFile(path.Join(kind.dir(), name+kind.ext()))
	if err != nil {
		return "", fmt.Errorf("%w: %q", kind.notFound(), name)
	}
	return string(content), nil
}

// Names lists the embedded assets of a kind, sorted.
func Names(kind Kind) []string {
	entries, err := fs.ReadDir(embedded, kind.dir())
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), kind.ext()); ok && !e.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
