// Package assets provides page templates and CSS styles for site generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in "default" template and style.
//
// FilesystemLoader allows users to provide custom assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the CLI. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is
// not found. A site can override the default template and keep the style.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css      # CSS injected into every page
//	└── templates/
//	    └── {name}.html     # Page template with {{ Title }} and {{ Content }}
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
