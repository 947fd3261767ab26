package autojson

import "github.com/spf13/afero"

// Option configures a Store.
type Option func(*Store)

// WithFs swaps the filesystem backend, e.g. afero.NewMemMapFs() in tests.
func WithFs(fsys afero.Fs) Option {
	return func(s *Store) { s.fs = afero.Afero{Fs: fsys} }
}

type writeConfig struct {
	indent         int
	escapeNonASCII bool
	createDirs     bool
}

func defaultWriteConfig() writeConfig {
	return writeConfig{indent: 4, createDirs: true}
}

// WriteOption adjusts how Write and Create serialize a document.
type WriteOption func(*writeConfig)

// WithIndent sets the indentation width in spaces. The default is 4; zero or
// negative emits compact single-line output.
func WithIndent(spaces int) WriteOption {
	return func(c *writeConfig) { c.indent = spaces }
}

// WithEscapeNonASCII escapes characters outside the ASCII range to \uXXXX
// sequences instead of emitting them literally.
func WithEscapeNonASCII() WriteOption {
	return func(c *writeConfig) { c.escapeNonASCII = true }
}

// WithoutDirCreation disables the default creation of missing parent
// directories before writing.
func WithoutDirCreation() WriteOption {
	return func(c *writeConfig) { c.createDirs = false }
}
