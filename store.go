package autojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Store performs JSON file operations against a single filesystem backend.
// It holds no other state: paths are resolved fresh on every call, nothing is
// cached and no handle outlives a call.
type Store struct {
	fs afero.Afero
}

// New returns a Store over the host filesystem unless WithFs says otherwise.
func New(opts ...Option) *Store {
	s := &Store{fs: afero.Afero{Fs: afero.NewOsFs()}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read parses the JSON file at path into a generic value: objects decode to
// map[string]any, arrays to []any, numbers to float64.
func (s *Store) Read(path string) (any, error) {
	var doc any
	if err := s.ReadInto(path, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadInto parses the JSON file at path into out, which must be a pointer.
func (s *Store) ReadInto(path string, out any) error {
	b, err := s.fs.ReadFile(path)
	if err != nil {
		return fileError("read", path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return decodeError("decode", path, err)
	}
	return nil
}

// Write serializes data as JSON and writes it to path, replacing any existing
// content. Missing parent directories are created unless WithoutDirCreation
// is given. Non-serializable data (cycles, non-finite numbers, unsupported
// types) yields a KindJSON error.
func (s *Store) Write(path string, data any, opts ...WriteOption) error {
	cfg := defaultWriteConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return s.write(path, data, cfg)
}

func (s *Store) write(path string, data any, cfg writeConfig) error {
	b, err := encode(data, cfg)
	if err != nil {
		return jsonError("encode", path, err)
	}
	if cfg.createDirs {
		dir := filepath.Dir(path)
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fileError("mkdir", dir, err)
		}
	}
	if err := s.fs.WriteFile(path, b, 0o644); err != nil {
		return fileError("write", path, err)
	}
	return nil
}

// Update shallow-merges updates into the object stored at path and writes the
// result back with default formatting. Existing content that is valid JSON
// but not an object is discarded and the merge starts from an empty object.
// A missing file is an error unless createMissing is set.
func (s *Store) Update(path string, updates map[string]any, createMissing bool) (map[string]any, error) {
	found, err := s.fs.Exists(path)
	if err != nil {
		return nil, fileError("stat", path, err)
	}

	doc := make(map[string]any, len(updates))
	switch {
	case found:
		current, err := s.Read(path)
		if err != nil {
			return nil, err
		}
		if m, ok := current.(map[string]any); ok {
			doc = m
		}
	case !createMissing:
		return nil, fileError("update", path, fs.ErrNotExist)
	}

	for k, v := range updates {
		doc[k] = v
	}
	if err := s.Write(path, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the file at path. A missing file is not an error; it simply
// reports false.
func (s *Store) Delete(path string) (bool, error) {
	found, err := s.fs.Exists(path)
	if err != nil {
		return false, fileError("stat", path, err)
	}
	if !found {
		return false, nil
	}
	if err := s.fs.Remove(path); err != nil {
		return false, fileError("remove", path, err)
	}
	return true, nil
}

// Create writes a new JSON file at path. An existing file is left untouched
// and reported as false unless overwrite is set. Nil data writes an empty
// object. Parent directories are always created.
func (s *Store) Create(path string, data any, overwrite bool, opts ...WriteOption) (bool, error) {
	found, err := s.fs.Exists(path)
	if err != nil {
		return false, fileError("stat", path, err)
	}
	if found && !overwrite {
		return false, nil
	}
	if data == nil {
		data = map[string]any{}
	}

	cfg := defaultWriteConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.createDirs = true
	if err := s.write(path, data, cfg); err != nil {
		return false, err
	}
	return true, nil
}

// Exists reports whether path holds syntactically valid JSON. It never
// fails: not-found, permission-denied and parse failures all collapse to
// false.
func (s *Store) Exists(path string) bool {
	b, err := s.fs.ReadFile(path)
	if err != nil {
		return false
	}
	var doc any
	return json.Unmarshal(b, &doc) == nil
}

// Marshal serializes data with the same formatting rules Write uses, without
// touching the filesystem. Non-serializable data yields a KindJSON error.
func Marshal(data any, opts ...WriteOption) ([]byte, error) {
	cfg := defaultWriteConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	b, err := encode(data, cfg)
	if err != nil {
		return nil, jsonError("encode", "", err)
	}
	return b, nil
}

func encode(data any, cfg writeConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if cfg.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", cfg.indent))
	}
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	if cfg.escapeNonASCII {
		return escapeNonASCII(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// escapeNonASCII rewrites serialized JSON so that every rune outside the
// ASCII range becomes a \uXXXX sequence. Non-ASCII runes can only occur
// inside string literals, so a byte-level rewrite of the whole document is
// safe. Runes above the BMP become a surrogate pair.
func escapeNonASCII(b []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(b))
	for _, r := range string(b) {
		switch {
		case r < utf8.RuneSelf:
			out.WriteByte(byte(r))
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&out, `\u%04x`, r)
		}
	}
	return out.Bytes()
}
