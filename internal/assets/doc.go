// Package assets provides CSS styles and HTML snippets injected by hooks.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in assets compiled into the binary
//	    ├── FilesystemLoader  - assets from a directory on disk
//	    └── Resolver          - filesystem first, embedded as fallback
//
// A Resolver with an empty base path serves embedded assets only. With a
// base path, a file on disk overrides the embedded asset of the same name.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css    # referenced as style:{name}
//	└── snippets/
//	    └── {name}.html   # referenced as snippet:{name}
//
// # Security
//
// Asset names may not contain separators or dots. FilesystemLoader
// resolves symlinks and refuses paths outside its base directory.
package assets
