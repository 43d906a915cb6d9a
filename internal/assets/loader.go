package assets

// Kind identifies a category of asset.
type Kind string

// Asset kinds with their directory and file extension.
const (
	KindStyle   Kind = "style"
	KindSnippet Kind = "snippet"
)

func (k Kind) dir() string {
	return string(k) + "s"
}

func (k Kind) ext() string {
	if k == KindStyle {
		return ".css"
	}
	return ".html"
}

func (k Kind) notFound() error {
	if k == KindStyle {
		return ErrStyleNotFound
	}
	return ErrSnippetNotFound
}

// Loader loads named assets.
type Loader interface {
	// LoadStyle returns the CSS of a style (name without .css).
	// Returns ErrStyleNotFound or ErrInvalidAssetName.
	LoadStyle(name string) (string, error)

	// LoadSnippet returns the HTML of a snippet (name without .html).
	// Returns ErrSnippetNotFound or ErrInvalidAssetName.
	LoadSnippet(name string) (string, error)
}
