package assets

// Resolver serves assets from a custom directory when one is configured,
// falling back to the embedded assets for names it does not have.
type Resolver struct {
	custom   Loader // nil without a base path
	embedded Loader
}

// NewResolver creates a Resolver.
// An empty basePath yields a Resolver over embedded assets only.
// Returns ErrInvalidBasePath if basePath is set but unusable.
func NewResolver(basePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if basePath != "" {
		fsLoader, err := NewFilesystemLoader(basePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadStyle loads a style, custom directory first.
func (r *Resolver) LoadStyle(name string) (string, error) {
	return r.loadWithFallback(func(l Loader) (string, error) {
		return l.LoadStyle(name)
	})
}

// LoadSnippet loads a snippet, custom directory first.
func (r *Resolver) LoadSnippet(name string) (string, error) {
	return r.loadWithFallback(func(l Loader) (string, error) {
		return l.LoadSnippet(name)
	})
}

// HasCustomLoader reports whether a base path is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

func (r *Resolver) loadWithFallback(load func(Loader) (string, error)) (string, error) {
	if r.custom == nil {
		return load(r.embedded)
	}
	content, err := load(r.custom)
	if err == nil {
		return content, nil
	}
	// Validation and I/O errors are not masked by the fallback.
	if !IsNotFound(err) {
		return "", err
	}
	return load(r.embedded)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
